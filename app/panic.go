package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"fixgl/engine/gl"
	"fixgl/engine/hud"
)

// panicked logs a recovered panic with its stack, draws it on screen and
// converts it into an error.
func (v *viewer) panicked(r any) error {
	stack := string(debug.Stack())
	v.log.Error("app: panic", "panic", r)
	if l := v.h.Logger(); l != nil {
		for _, line := range strings.Split(stack, "\n") {
			if line != "" {
				l.WriteLineString(line)
			}
		}
	}

	lines := []string{"fixgl panic:", fmt.Sprint(r), "stack:"}
	lines = append(lines, strings.Split(stack, "\n")...)
	v.drawPanic(lines)
	return fmt.Errorf("app: panic: %v", r)
}

func (v *viewer) drawPanic(lines []string) {
	if v.sink == nil {
		return
	}
	// The screen is best effort; a second panic here must not escape.
	defer func() { _ = recover() }()

	v.sink.Clear(gl.White)
	o := hud.New()
	o.X, o.Y = 0, 0
	w, h := v.sink.Size()
	cw := o.Width("0")
	if cw <= 0 || o.LineHeight() <= 0 {
		_ = v.sink.Present()
		return
	}
	cols, rows := max(w/cw, 1), h/o.LineHeight()

	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		for len(line) > 0 && len(out) < rows {
			chunk, rest := takeRunes(line, cols)
			out = append(out, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}
	o.Draw(v.sink, out...)
	_ = v.sink.Present()
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
