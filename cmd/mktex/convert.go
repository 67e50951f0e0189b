package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	// Registered decoders.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"fixgl/engine/model"
)

var errSize = errors.New("mktex: bad size")

// maxSide keeps converted textures within what the device can hold.
const maxSide = 1024

func scalerFor(name string) (xdraw.Scaler, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return xdraw.NearestNeighbor, nil
	case "bilinear":
		return xdraw.ApproxBiLinear, nil
	case "catmull", "catmullrom":
		return xdraw.CatmullRom, nil
	}
	return nil, fmt.Errorf("mktex: unknown filter %q", name)
}

// targetSize resolves the output size. A zero side keeps the source aspect
// ratio; both zero keep the source size.
func targetSize(src image.Rectangle, w, h int) (int, int, error) {
	sw, sh := src.Dx(), src.Dy()
	switch {
	case w == 0 && h == 0:
		w, h = sw, sh
	case w == 0:
		w = max(1, sw*h/sh)
	case h == 0:
		h = max(1, sh*w/sw)
	}
	if w <= 0 || h <= 0 || w > maxSide || h > maxSide {
		return 0, 0, fmt.Errorf("%w: %dx%d", errSize, w, h)
	}
	return w, h, nil
}

// convert decodes a PNG, JPEG or BMP image and resamples it into a texture.
// Alpha is composited over bg.
func convert(r io.Reader, w, h int, s xdraw.Scaler, bg color.RGBA) (*model.Texture, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("mktex: decode: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty %s image", errSize, format)
	}
	w, h, err = targetSize(src.Bounds(), w, h)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	t := &model.Texture{Width: w, Height: h, Texels: make([]uint32, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := dst.RGBAAt(x, y)
			t.Texels[y*w+x] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return t, nil
}
