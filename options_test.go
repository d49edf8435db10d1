package rast

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.cull != CullClockwise {
		t.Errorf("default cull = %v, want CullClockwise", o.cull)
	}
	if o.nearEps != 1e-5 {
		t.Errorf("default near epsilon = %v, want 1e-5", o.nearEps)
	}
}

func TestWithCull(t *testing.T) {
	o := defaultOptions()
	WithCull(CullNone)(&o)
	if o.cull != CullNone {
		t.Errorf("cull = %v, want CullNone", o.cull)
	}
}

func TestWithNearEpsilon(t *testing.T) {
	o := defaultOptions()
	WithNearEpsilon(0.01)(&o)
	if o.nearEps != 0.01 {
		t.Errorf("near epsilon = %v, want 0.01", o.nearEps)
	}

	// Non-positive values are ignored.
	WithNearEpsilon(0)(&o)
	WithNearEpsilon(-1)(&o)
	if o.nearEps != 0.01 {
		t.Errorf("near epsilon = %v after invalid values, want 0.01", o.nearEps)
	}
}
