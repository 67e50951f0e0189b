package fix

// Vec2 is a pair of scalars: a texture coordinate, or a rotation given as two
// planar angles (X turns the XZ plane, Y turns the YZ plane).
type Vec2 struct {
	X, Y Scalar
}

// Vec3 is a point, direction or per-axis scale.
type Vec3 struct {
	X, Y, Z Scalar
}

func V2(x, y Scalar) Vec2    { return Vec2{X: x, Y: y} }
func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X.Sub(o.X), v.Y.Sub(o.Y)} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)} }
func (v Vec3) Neg() Vec3         { return Vec3{v.X.Neg(), v.Y.Neg(), v.Z.Neg()} }

// Scale multiplies component-wise.
func (v Vec3) Scale(o Vec3) Vec3 { return Vec3{v.X.Mul(o.X), v.Y.Mul(o.Y), v.Z.Mul(o.Z)} }

func Dot(a, b Vec3) Scalar {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y.Mul(b.Z).Sub(a.Z.Mul(b.Y)),
		Y: a.Z.Mul(b.X).Sub(a.X.Mul(b.Z)),
		Z: a.X.Mul(b.Y).Sub(a.Y.Mul(b.X)),
	}
}

// Length accumulates the squares at full Q32 precision, so it stays exact for
// vectors whose squared length would overflow a Scalar.
func Length(v Vec3) Scalar { return sat(length64(v)) }

// length64 is the unsaturated raw length; it fits an int64 for any Vec3.
func length64(v Vec3) int64 {
	sq := func(s Scalar) uint64 {
		x := int64(s)
		return uint64(x * x)
	}
	return int64(isqrt(sq(v.X) + sq(v.Y) + sq(v.Z)))
}

// Normalize returns v with unit length. A zero vector returns ok=false.
// Long vectors divide by the unsaturated length.
func Normalize(v Vec3) (n Vec3, ok bool) {
	l := length64(v)
	if l == 0 {
		return Vec3{}, false
	}
	div := func(s Scalar) Scalar {
		n := int64(s) << shift
		if n >= 0 {
			n += l / 2
		} else {
			n -= l / 2
		}
		return sat(n / l)
	}
	return Vec3{div(v.X), div(v.Y), div(v.Z)}, true
}

func Distance(a, b Vec3) Scalar { return Length(b.Sub(a)) }

// Normal returns the unnormalized face normal (b-a) x (c-a).
func Normal(a, b, c Vec3) Vec3 { return Cross(b.Sub(a), c.Sub(a)) }

// RotateOnPlane rotates the (a, b) pair by angle radians.
func RotateOnPlane(a, b, angle Scalar) (Scalar, Scalar) {
	sin, cos := angle.Sin(), angle.Cos()
	return a.Mul(cos).Sub(b.Mul(sin)), b.Mul(cos).Add(a.Mul(sin))
}

// Rotate applies r.X on the XZ plane, then r.Y on the YZ plane.
func (v Vec3) Rotate(r Vec2) Vec3 {
	v.X, v.Z = RotateOnPlane(v.X, v.Z, r.X)
	v.Y, v.Z = RotateOnPlane(v.Y, v.Z, r.Y)
	return v
}
