package gl

import (
	"fixgl/engine/fix"
	"fixgl/engine/model"
)

// DepthIndex pairs a face or model index with its sort depth.
type DepthIndex struct {
	Index int
	Depth fix.Scalar
}

var three = fix.Int(3)

// FaceDepth averages the camera-space depth of a face's vertices.
func FaceDepth(f model.Face, depths []fix.Scalar) fix.Scalar {
	return depths[f.First].Div(three).
		Add(depths[f.Second].Div(three)).
		Add(depths[f.Third].Div(three))
}

// OrderFaces returns the faces back to front, reusing dst. Faces that index
// past depths are left out.
func OrderFaces(faces []model.Face, depths []fix.Scalar, dst []DepthIndex) []DepthIndex {
	dst = dst[:0]
	n := uint32(len(depths))
	for i, f := range faces {
		if f.First >= n || f.Second >= n || f.Third >= n {
			continue
		}
		dst = append(dst, DepthIndex{Index: i, Depth: FaceDepth(f, depths)})
	}
	sortDescending(dst)
	return dst
}

// OrderModels returns the indices of the non-nil models, farthest from the
// camera first, reusing dst.
func OrderModels(cam Camera, models []*model.Model, dst []DepthIndex) []DepthIndex {
	dst = dst[:0]
	for i, m := range models {
		if m == nil {
			continue
		}
		dst = append(dst, DepthIndex{Index: i, Depth: fix.Distance(cam.Position, m.Position)})
	}
	sortDescending(dst)
	return dst
}

// sortDescending is an exchange sort. Equal depths keep their order.
func sortDescending(a []DepthIndex) {
	for j := len(a); j > 1; j-- {
		for i := 1; i < j; i++ {
			if a[i-1].Depth < a[i].Depth {
				a[i-1], a[i] = a[i], a[i-1]
			}
		}
	}
}
