package review

import (
	"errors"
	"testing"

	"turismo-api/internal/domain/entity"
)

func TestEncodeText(t *testing.T) {
	got, err := EncodeText("Great food", "the chivito was huge")
	if err != nil {
		t.Fatalf("EncodeText err=%v", err)
	}
	if got != "Great food: the chivito was huge" {
		t.Fatalf("encoded = %q", got)
	}
}

func TestEncodeText_titleWithSeparatorRejected(t *testing.T) {
	_, err := EncodeText("Note: important", "body")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Field != "title" {
		t.Errorf("field = %q, want title", verr.Field)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		title, body string
	}{
		{"round trip", "Great food: the chivito was huge", "Great food", "the chivito was huge"},
		{"body keeps its colons", "Tip: open 10:00 to 22:00", "Tip", "open 10:00 to 22:00"},
		{"legacy body-only row", "just some text", "", "just some text"},
		{"empty body", "Title: ", "Title", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := DecodeText(tt.text)
			if title != tt.title || body != tt.body {
				t.Errorf("DecodeText(%q) = (%q, %q), want (%q, %q)",
					tt.text, title, body, tt.title, tt.body)
			}
		})
	}
}

func TestEncodeDecode_roundTrip(t *testing.T) {
	text, err := EncodeText("Worth it", "queue moves fast: go early")
	if err != nil {
		t.Fatalf("EncodeText err=%v", err)
	}
	title, body := DecodeText(text)
	if title != "Worth it" || body != "queue moves fast: go early" {
		t.Fatalf("round trip lost data: (%q, %q)", title, body)
	}
}
