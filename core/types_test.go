package core

import (
	"math"
	"testing"
)

func TestVector3Ops(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: -2}
	b := Vector3{X: -1, Y: 0.5, Z: 4}

	if got := a.Add(b); got != (Vector3{X: 0, Y: 2.5, Z: 2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Scale(-2); got != (Vector3{X: -2, Y: -4, Z: 4}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Length(); got != 3 {
		t.Errorf("Length = %v, want 3", got)
	}

	n := a.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize length = %v, want 1", n.Length())
	}
	if (Vector3{}).Normalize() != (Vector3{}) {
		t.Error("normalizing the zero vector must return zero")
	}
}
