package clipboard

import (
	"context"
	"errors"
	"os"
	"runtime"

	"redline/internal/util"
)

var ErrUnsupported = errors.New("clipboard not supported on this platform")

// CopyText places text on the system clipboard.
func CopyText(ctx context.Context, text string) error {
	name, args, err := command(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "")
	if err != nil {
		return err
	}
	_, err = util.RunWithStdin(ctx, "", text, name, args...)
	return err
}

func command(goos string, wayland bool) (string, []string, error) {
	switch goos {
	case "darwin":
		return "pbcopy", nil, nil
	case "linux":
		if wayland {
			return "wl-copy", nil, nil
		}
		return "xclip", []string{"-selection", "clipboard"}, nil
	case "windows":
		return "clip", nil, nil
	}
	return "", nil, ErrUnsupported
}
