package parse

import (
	"testing"

	"github.com/artflaneur/contentfactory/internal/models"
)

func TestPressReleaseLocationFromReleaseDate(t *testing.T) {
	sections := map[string]string{
		SectionHeadline:    "Studio Ships Major Release",
		SectionReleaseDate: "Berlin, Germany - March 3, 2026",
		SectionBody:        "The release went live this morning.",
	}

	pr := PressRelease(sections, nil)
	if pr == nil {
		t.Fatal("Expected press release, got nil")
	}
	if pr.Location != "Berlin, Germany" {
		t.Errorf("Unexpected location: %q", pr.Location)
	}
	if pr.ReleaseDate != "Berlin, Germany - March 3, 2026" {
		t.Errorf("Unexpected release date: %q", pr.ReleaseDate)
	}
}

func TestPressReleaseLocationFallsBackToContext(t *testing.T) {
	sections := map[string]string{
		SectionReleaseDate: "March 3, 2026",
		SectionBody:        "Body text.",
	}
	userCtx := &models.UserContext{City: "Vienna", Country: "Austria"}

	pr := PressRelease(sections, userCtx)
	if pr == nil {
		t.Fatal("Expected press release, got nil")
	}
	if pr.Location != "Vienna, Austria" {
		t.Errorf("Unexpected location: %q", pr.Location)
	}
}

func TestPressReleaseLocationSentinel(t *testing.T) {
	sections := map[string]string{
		SectionReleaseDate: "March 3, 2026",
		SectionBody:        "Body text.",
	}

	pr := PressRelease(sections, nil)
	if pr == nil {
		t.Fatal("Expected press release, got nil")
	}
	if pr.Location != LocationNotSpecified {
		t.Errorf("Unexpected location: %q", pr.Location)
	}
}

func TestPressReleaseEmpty(t *testing.T) {
	if pr := PressRelease(nil, nil); pr != nil {
		t.Errorf("Expected nil for no sections, got %+v", pr)
	}
	if pr := PressRelease(map[string]string{}, nil); pr != nil {
		t.Errorf("Expected nil for empty sections, got %+v", pr)
	}
}

func TestMediaContact(t *testing.T) {
	contact := MediaContact("Name: Ada Example\nEmail: press@studio.example\nPhone: +49 30 1234567")

	if contact.Name != "Ada Example" {
		t.Errorf("Unexpected name: %q", contact.Name)
	}
	if contact.Email != "press@studio.example" {
		t.Errorf("Unexpected email: %q", contact.Email)
	}
	if contact.Phone != "+49 30 1234567" {
		t.Errorf("Unexpected phone: %q", contact.Phone)
	}
}

func TestMediaContactPartial(t *testing.T) {
	contact := MediaContact("Name: Ada Example")

	if contact.Name != "Ada Example" {
		t.Errorf("Unexpected name: %q", contact.Name)
	}
	if contact.Email != "" || contact.Phone != "" {
		t.Errorf("Expected missing fields empty, got %+v", contact)
	}
}
