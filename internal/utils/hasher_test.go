package utils

import "testing"

func TestHashDeterministic(t *testing.T) {
	a := Hash("same input")
	b := Hash("same input")
	if a != b {
		t.Errorf("Expected stable hash, got %q and %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(a))
	}
	if Hash("other input") == a {
		t.Error("Expected different inputs to hash differently")
	}
}

func TestShortHash(t *testing.T) {
	if got := ShortHash("input", 16); len(got) != 16 {
		t.Errorf("Expected 16 chars, got %d", len(got))
	}
	if got := ShortHash("input", 100); len(got) != 64 {
		t.Errorf("Expected full digest when n exceeds length, got %d chars", len(got))
	}
}
