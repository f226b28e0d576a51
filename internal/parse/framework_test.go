package parse

import "testing"

func TestStripFrameworkLine(t *testing.T) {
	raw := "Framework Used: AIDA\n\nThe actual post starts here.\nAnd continues."

	clean, framework := StripFrameworkLine(raw)
	if framework != "AIDA" {
		t.Errorf("Unexpected framework: %q", framework)
	}
	if clean != "The actual post starts here.\nAnd continues." {
		t.Errorf("Unexpected content: %q", clean)
	}
}

func TestStripFrameworkLineRemovesPlaceholder(t *testing.T) {
	raw := "[LinkedIn Post Content]\nFramework Used: PAS\nBody line."

	clean, framework := StripFrameworkLine(raw)
	if framework != "PAS" {
		t.Errorf("Unexpected framework: %q", framework)
	}
	if clean != "Body line." {
		t.Errorf("Unexpected content: %q", clean)
	}
}

func TestStripFrameworkLineAbsent(t *testing.T) {
	raw := "Just a post about frameworks in general."

	clean, framework := StripFrameworkLine(raw)
	if framework != "" {
		t.Errorf("Expected no framework, got %q", framework)
	}
	if clean != raw {
		t.Errorf("Expected content unchanged, got %q", clean)
	}
}
