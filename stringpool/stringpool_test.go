package stringpool

import "testing"

func TestInternReturnsSameHandleForEqualStrings(t *testing.T) {
	p := New()
	a := p.Intern("diffuseColor")
	b := p.Intern("diffuseColor")
	if a != b {
		t.Fatalf("expected equal handles, got %v and %v", a, b)
	}
}

func TestInternDistinctStringsGetDistinctHandles(t *testing.T) {
	p := New()
	a := p.Intern("foo")
	b := p.Intern("bar")
	if a == b {
		t.Fatalf("expected distinct handles, got %v for both", a)
	}
}

func TestContains(t *testing.T) {
	p := New()
	if p.Contains("mod") {
		t.Fatalf("empty pool should not contain anything")
	}
	p.Intern("mod")
	if !p.Contains("mod") {
		t.Fatalf("expected pool to contain interned string")
	}
}

func TestStringRoundTrips(t *testing.T) {
	p := New()
	h := p.Intern("worldViewProj")
	if got := p.String(h); got != "worldViewProj" {
		t.Fatalf("String(%v) = %q, want %q", h, got, "worldViewProj")
	}
}

func TestLen(t *testing.T) {
	p := New()
	p.Intern("a")
	p.Intern("b")
	p.Intern("a")
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
}
