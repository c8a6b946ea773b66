package sections

import (
	"fmt"
	"strings"
)

// ChangeKind labels an item by the marker that introduced its description.
type ChangeKind int

const (
	KindNone ChangeKind = iota
	KindAddition
	KindChange
	KindShift
)

var kindLabels = [...]string{
	KindNone:     "",
	KindAddition: "Addition",
	KindChange:   "Change",
	KindShift:    "Shift",
}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
	return kindLabels[k]
}

func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ChangeKind) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	for i, label := range kindLabels {
		if strings.EqualFold(label, s) {
			*k = ChangeKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown change kind %q", s)
}

// Item is one original/revised pair reported for a section.
type Item struct {
	Original    string     `json:"original,omitempty"`
	Revised     string     `json:"revised,omitempty"`
	Kind        ChangeKind `json:"type"`
	Description string     `json:"description,omitempty"`
}

// Section groups the items found under one section heading.
type Section struct {
	Name  string `json:"section"`
	Items []Item `json:"items"`
}

// Comparison is the parsed form of a comparison report.
type Comparison struct {
	Sections      []Section `json:"sections"`
	TotalSections int       `json:"totalSections"`
}

// Dropped records a line that could not be attached to any item.
type Dropped struct {
	Section string `json:"section"`
	Line    string `json:"line"`
	Reason  string `json:"reason"`
}

const (
	reasonNoItem       = "no open item"
	reasonUnrecognized = "unrecognized line"
	reasonPreamble     = "outside any section"
)
