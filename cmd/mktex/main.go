// Command mktex converts a PNG, JPEG or BMP image into the binary texture
// format.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"

	"fixgl/engine/model"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (.png, .jpg or .bmp).")
		outPath = flag.String("out", "", "Output texture file.")
		width   = flag.Int("width", 0, "Output width (0 keeps the aspect ratio).")
		height  = flag.Int("height", 0, "Output height (0 keeps the aspect ratio).")
		filter  = flag.String("filter", "bilinear", "nearest|bilinear|catmull.")
		order   = flag.String("order", "little", "little|big.")
		bg      = flag.String("bg", "ffffff", "Background for transparent pixels, as RRGGBB.")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: mktex -in image.png -out tex.bin [-width 64] [-height 64] [-filter bilinear] [-order little|big]")
	}

	s, err := scalerFor(*filter)
	if err != nil {
		fatalf("%v", err)
	}
	bo, err := byteOrder(*order)
	if err != nil {
		fatalf("%v", err)
	}
	bgc, err := parseHexColor(*bg)
	if err != nil {
		fatalf("%v", err)
	}

	in, err := os.Open(*inPath)
	if err != nil {
		fatalf("%v", err)
	}
	tex, err := convert(in, *width, *height, s, bgc)
	in.Close()
	if err != nil {
		fatalf("%s: %v", *inPath, err)
	}

	var buf bytes.Buffer
	if err := model.EncodeTexture(&buf, bo, tex); err != nil {
		fatalf("%v", err)
	}
	if err := os.WriteFile(*outPath, buf.Bytes(), 0o644); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("%s: %dx%d texels\n", *outPath, tex.Width, tex.Height)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func byteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order: %s", s)
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
