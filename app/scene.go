package app

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fixgl/engine/fix"
	"fixgl/engine/gl"
	"fixgl/engine/model"
)

const maxModels = 4

var (
	defaultLight = fix.V3(fix.Int(-4), fix.Int(-6), fix.Int(-3))

	checkerLight = uint32(0xE8E8E8)
	checkerDark  = uint32(0x3050A0)
)

// buildScene loads the configured model, or the built-in cube and torus when
// there is none or it fails to load.
func buildScene(log *slog.Logger, cfg Config) (*gl.Scene, []int) {
	sc := gl.NewScene(maxModels)
	sc.Light.Position = defaultLight

	var models []*model.Model
	if cfg.ModelPath != "" {
		m, err := loadModel(cfg)
		if err != nil {
			log.Warn("app: model load failed, using built-ins", "path", cfg.ModelPath, "err", err)
		} else {
			models = append(models, m)
		}
	}
	if len(models) == 0 {
		models = builtinModels()
	}

	var ids []int
	for _, m := range models {
		m.Mode = cfg.Mode
		if id := sc.AddModel(m); id >= 0 {
			ids = append(ids, id)
		}
	}
	return sc, ids
}

func builtinModels() []*model.Model {
	cube := model.Cube(fix.One)
	cube.Texture = model.Checker(32, 4, checkerLight, checkerDark)

	torus := model.NewModel("torus", model.Torus(fix.One, fix.Half.Sub(fix.One.DivInt(10)), 16, 8))
	torus.Position = fix.V3(fix.Int(3), 0, fix.Int(2))
	torus.Rotation = fix.V2(0, fix.HalfPi)

	return []*model.Model{model.NewModel("cube", cube), torus}
}

func loadModel(cfg Config) (*model.Model, error) {
	read := cfg.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	order, err := parseOrder(cfg.Order)
	if err != nil {
		return nil, err
	}

	b, err := read(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	mesh, err := decodeMesh(b, order)
	if err != nil {
		return nil, err
	}

	if cfg.TexturePath != "" {
		tb, err := read(cfg.TexturePath)
		if err != nil {
			return nil, err
		}
		var tex *model.Texture
		if order == nil {
			tex, _, err = model.DecodeTextureBytes(tb)
		} else {
			tex, err = model.DecodeTexture(bytes.NewReader(tb), order)
		}
		if err != nil {
			return nil, fmt.Errorf("texture %s: %w", cfg.TexturePath, err)
		}
		mesh.Texture = tex
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(cfg.ModelPath), filepath.Ext(cfg.ModelPath))
	return model.NewModel(name, mesh), nil
}

func decodeMesh(b []byte, order binary.ByteOrder) (*model.Mesh, error) {
	if order == nil {
		m, _, err := model.DecodeBytes(b)
		return m, err
	}
	return model.Decode(bytes.NewReader(b), order)
}

func parseOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return nil, nil
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("app: unknown byte order %q", s)
}
