package graph

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestReverseComplementWindow(t *testing.T) {
	window := []Handle{NewHandle(1, false), NewHandle(2, false), NewHandle(3, true)}
	want := []Handle{NewHandle(3, false), NewHandle(2, true), NewHandle(1, true)}
	if got := ReverseComplementWindow(window); !slices.Equal(got, want) {
		t.Errorf("wrong reverse complement: got %v, want %v", got, want)
	}
}

func TestCompareWindows(t *testing.T) {
	a := []Handle{NewHandle(1, false), NewHandle(2, false)}
	b := []Handle{NewHandle(1, false), NewHandle(2, true)}
	if CompareWindows(a, b) >= 0 {
		t.Errorf("forward orientation does not order before reverse")
	}
	if CompareWindows(b, a) <= 0 {
		t.Errorf("comparison is not antisymmetric")
	}
	if CompareWindows(a, a) != 0 {
		t.Errorf("window does not compare equal to itself")
	}
	if CompareWindows(a, a[:1]) <= 0 {
		t.Errorf("longer window does not order after its prefix")
	}
}

func TestCanonicalWindowIsOrientationSymmetric(t *testing.T) {
	window := []Handle{NewHandle(5, false), NewHandle(2, true), NewHandle(7, false)}
	reverse := ReverseComplementWindow(window)
	a := CanonicalWindow(window)
	b := CanonicalWindow(reverse)
	if !slices.Equal(a, b) {
		t.Errorf("canonical forms differ: %v vs %v", a, b)
	}
	if CompareWindows(a, window) > 0 || CompareWindows(a, reverse) > 0 {
		t.Errorf("canonical form is not the smaller orientation")
	}
}

func TestForwardAndBackwardWindowsAgree(t *testing.T) {
	// Extending [1, 2] forward by 3 and [2, 3] backward by 1 both describe
	// the window 1-2-3.
	path := []Handle{NewHandle(1, false), NewHandle(2, false)}
	forward := ForwardWindow(path, NewHandle(3, false), 3)

	path = []Handle{NewHandle(2, false), NewHandle(3, false)}
	backward := BackwardWindow(path, NewHandle(1, false), 3)

	if !slices.Equal(forward, backward) {
		t.Errorf("windows disagree: %v vs %v", forward, backward)
	}
}

func TestWindowsDoNotModifyThePath(t *testing.T) {
	path := []Handle{NewHandle(1, false), NewHandle(2, false), NewHandle(3, false)}
	backup := slices.Clone(path)
	ForwardWindow(path, NewHandle(4, true), 3)
	BackwardWindow(path, NewHandle(4, true), 3)
	if !slices.Equal(path, backup) {
		t.Errorf("window construction modified the path: %v", path)
	}
}
