package model

import (
	"fmt"
	"strings"
)

// RenderMode selects how a model is drawn. It is cycled by input only.
type RenderMode uint8

const (
	ModeTexturedLit RenderMode = iota
	ModeTextured
	ModeFlatLit
	ModeGradient
	ModeIndexed
	ModeWireframe
	ModePoints

	ModeCount
)

var modeNames = [ModeCount]string{
	ModeTexturedLit: "textured-lit",
	ModeTextured:    "textured",
	ModeFlatLit:     "flat-lit",
	ModeGradient:    "gradient",
	ModeIndexed:     "indexed",
	ModeWireframe:   "wireframe",
	ModePoints:      "points",
}

// Next returns the following mode, wrapping after the last one.
func (m RenderMode) Next() RenderMode {
	return (m + 1) % ModeCount
}

func (m RenderMode) String() string {
	if m >= ModeCount {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode accepts a mode name as printed by String.
func ParseMode(s string) (RenderMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return RenderMode(i), nil
		}
	}
	return 0, fmt.Errorf("model: unknown render mode %q", s)
}

// Set implements flag.Value.
func (m *RenderMode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
