package gl

import (
	"fixgl/engine/fix"
	"fixgl/engine/model"
)

// Scene holds the camera, the light and a fixed number of model slots.
type Scene struct {
	Camera Camera
	Light  Light

	models []*model.Model
}

// NewScene allocates a scene with room for maxModels models.
func NewScene(maxModels int) *Scene {
	if maxModels < 0 {
		maxModels = 0
	}
	return &Scene{
		Camera: DefaultCamera(),
		Light:  Light{Intensity: fix.One},
		models: make([]*model.Model, maxModels),
	}
}

// AddModel stores m in the first free slot and returns its id, or -1 if the
// scene is full.
func (s *Scene) AddModel(m *model.Model) int {
	if s == nil || m == nil {
		return -1
	}
	for i := range s.models {
		if s.models[i] != nil {
			continue
		}
		s.models[i] = m
		Logger().Info("scene: model added", "id", i, "name", m.Name)
		return i
	}
	return -1
}

func (s *Scene) RemoveModel(id int) {
	if s == nil || id < 0 || id >= len(s.models) {
		return
	}
	s.models[id] = nil
}

// Model returns the model in slot id, or nil.
func (s *Scene) Model(id int) *model.Model {
	if s == nil || id < 0 || id >= len(s.models) {
		return nil
	}
	return s.models[id]
}

// Each calls fn for every live model in slot order.
func (s *Scene) Each(fn func(id int, m *model.Model)) {
	if s == nil {
		return
	}
	for i, m := range s.models {
		if m != nil {
			fn(i, m)
		}
	}
}

// Len returns the number of live models.
func (s *Scene) Len() int {
	n := 0
	s.Each(func(int, *model.Model) { n++ })
	return n
}

// Cap returns the number of slots.
func (s *Scene) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.models)
}
