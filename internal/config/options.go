package config

import "github.com/spf13/viper"

type Option struct {
	Key     string `json:"key"`
	Default any    `json:"default"`
	Comment string `json:"comment"`
}

// Options lists every configuration key with its default and meaning.
func Options() []Option {
	return []Option{
		{Key: "output", Default: "text", Comment: "Command output format: text or json"},
		{Key: "color", Default: "auto", Comment: "Terminal colour: auto, always or never"},

		{Key: "tokens.mode", Default: "fields", Comment: "Word splitting: fields (drop empty words) or raw (keep edge empty words)"},
		{Key: "tokens.fold", Default: false, Comment: "Compare words case-insensitively"},

		{Key: "sections.delimiter", Default: "**Section", Comment: "Literal token that starts each section of a comparison report"},

		{Key: "render.placeholder", Default: "No content", Comment: "Text shown when a rendered result is empty"},
		{Key: "render.style", Default: "monokai", Comment: "Chroma style used to highlight HTML output"},
		{Key: "render.glamour_style", Default: "dark", Comment: "Glamour style used to render comparison sections"},
		{Key: "render.width", Default: 100, Comment: "Word-wrap width for terminal rendering"},

		{Key: "server.addr", Default: "127.0.0.1:8088", Comment: "Listen address for redline serve"},
		{Key: "server.token", Default: "", Comment: "Bearer token required by redline serve; empty disables auth"},
		{Key: "server.max_body", Default: int64(4 << 20), Comment: "Maximum request body size in bytes"},

		{Key: "log.level", Default: "warn", Comment: "Log level: debug, info, warn or error"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}
}
