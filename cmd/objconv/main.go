// Command objconv converts a Wavefront OBJ file into the binary model format.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fixgl/engine/model"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input .obj file.")
		outPath = flag.String("out", "", "Output model file.")
		order   = flag.String("order", "little", "little|big|both (both writes <name>_le and <name>_be).")
		scale   = flag.Float64("scale", 1, "Multiply vertex coordinates.")
		flipV   = flag.Bool("flip-v", true, "Flip texture V so the first texture row is v=0.")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: objconv -in model.obj -out model.bin [-order little|big|both] [-scale 1] [-flip-v=true]")
	}

	outs, err := outputs(*outPath, *order)
	if err != nil {
		fatalf("%v", err)
	}

	in, err := os.Open(*inPath)
	if err != nil {
		fatalf("%v", err)
	}
	m, err := parseOBJ(in, objOptions{Scale: *scale, FlipV: *flipV})
	in.Close()
	if err != nil {
		fatalf("%s: %v", *inPath, err)
	}

	for _, o := range outs {
		if err := writeModel(o.path, o.order, m); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("%s: %d vertices, %d faces, %d uvs\n", o.path, len(m.Vertices), len(m.Faces), len(m.UVs))
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type output struct {
	path  string
	order binary.ByteOrder
}

func outputs(path, order string) ([]output, error) {
	switch strings.ToLower(order) {
	case "little", "le":
		return []output{{path, binary.LittleEndian}}, nil
	case "big", "be":
		return []output{{path, binary.BigEndian}}, nil
	case "both":
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		return []output{
			{base + "_le" + ext, binary.LittleEndian},
			{base + "_be" + ext, binary.BigEndian},
		}, nil
	}
	return nil, fmt.Errorf("unknown byte order: %s", order)
}

func writeModel(path string, order binary.ByteOrder, m *model.Mesh) error {
	var buf bytes.Buffer
	if err := model.Encode(&buf, order, m); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
