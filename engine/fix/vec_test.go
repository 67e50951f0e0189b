package fix

import "testing"

func closeTo(a, b Scalar, tol Scalar) bool {
	return a.Sub(b).Abs() <= tol
}

func TestRotateOnPlaneRoundTrip(t *testing.T) {
	tol := Float(0.01)
	points := []Vec2{
		V2(Int(1), 0),
		V2(Float(-3.5), Float(2.25)),
		V2(Int(5), Int(-5)),
		V2(Float(0.1), Float(0.2)),
	}
	for _, p := range points {
		for deg := -360; deg <= 360; deg += 15 {
			theta := Float(float64(deg) * 3.141592653589793 / 180)
			a, b := RotateOnPlane(p.X, p.Y, theta)
			a, b = RotateOnPlane(a, b, theta.Neg())
			if !closeTo(a, p.X, tol) || !closeTo(b, p.Y, tol) {
				t.Fatalf("rotate %v by %d deg and back = (%v, %v)", p, deg, a, b)
			}
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	a, b := RotateOnPlane(One, 0, HalfPi)
	if !closeTo(a, 0, 4) || !closeTo(b, One, 4) {
		t.Fatalf("quarter turn of (1,0) = (%v, %v)", a, b)
	}
}

func TestNormalize(t *testing.T) {
	tol := Scalar(16)
	vecs := []Vec3{
		V3(Int(3), Int(4), Int(12)),
		V3(Float(-0.2), Float(0.05), Float(0.7)),
		V3(Int(250), Int(-300), Int(90)),
		V3(0, 0, Scalar(3)),
		V3(Int(30000), Int(30000), 0),
		V3(Int(20000), Int(20000), Int(20000)),
		V3(Max, Min, Max),
	}
	for _, v := range vecs {
		n, ok := Normalize(v)
		if !ok {
			t.Fatalf("Normalize(%v) not ok", v)
		}
		if l := Length(n); !closeTo(l, One, tol) {
			t.Fatalf("|Normalize(%v)| = %v", v, l)
		}
		n2, ok := Normalize(n)
		if !ok {
			t.Fatalf("Normalize twice not ok")
		}
		if !closeTo(n.X, n2.X, tol) || !closeTo(n.Y, n2.Y, tol) || !closeTo(n.Z, n2.Z, tol) {
			t.Fatalf("Normalize not idempotent: %v vs %v", n, n2)
		}
	}
}

func TestNormalizeLongVectorDirection(t *testing.T) {
	n, ok := Normalize(V3(Int(30000), Int(30000), 0))
	if !ok {
		t.Fatalf("not ok")
	}
	want := Float(0.70710678)
	if !closeTo(n.X, want, 4) || !closeTo(n.Y, want, 4) || n.Z != 0 {
		t.Fatalf("Normalize = %v", n)
	}
}

func TestNormalizeZero(t *testing.T) {
	if n, ok := Normalize(Vec3{}); ok || n != (Vec3{}) {
		t.Fatalf("Normalize(0) = %v, %v", n, ok)
	}
}

func TestLengthLargeVector(t *testing.T) {
	// The squared length (~6.75e8) does not fit a Scalar.
	v := V3(Int(15000), Int(-15000), Int(15000))
	got := Length(v)
	if !closeTo(got, Float(25980.762), Float(0.01)) {
		t.Fatalf("Length = %v", got)
	}
}

func TestCrossAndNormal(t *testing.T) {
	x := V3(One, 0, 0)
	y := V3(0, One, 0)
	if got := Cross(x, y); got != V3(0, 0, One) {
		t.Fatalf("x cross y = %v", got)
	}
	n := Normal(V3(0, 0, 0), V3(Int(2), 0, 0), V3(0, Int(3), 0))
	if n != V3(0, 0, Int(6)) {
		t.Fatalf("Normal = %v", n)
	}
}

func TestDistance(t *testing.T) {
	d := Distance(V3(Int(1), Int(2), Int(3)), V3(Int(4), Int(6), Int(3)))
	if d != Int(5) {
		t.Fatalf("Distance = %v, want 5", d)
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	v := V3(Int(1), Int(-2), Float(0.5))
	if got := v.Rotate(Vec2{}); got != v {
		t.Fatalf("Rotate(0) = %v", got)
	}
}
