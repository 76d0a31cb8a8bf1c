package review

import (
	"strings"

	"turismo-api/internal/domain/entity"
)

// Stored review text packs the submitted title and body into one column as
// "title: body". Existing rows already use this layout, so the separator
// cannot change without a data migration.
const textSeparator = ": "

// EncodeText packs a title and body into the stored text representation.
// Titles containing the separator are rejected: they cannot round-trip, the
// decoder would hand part of the title back as body.
func EncodeText(title, body string) (string, error) {
	if strings.Contains(title, textSeparator) {
		return "", &entity.ValidationError{Field: "title", Message: "must not contain \": \""}
	}
	return title + textSeparator + body, nil
}

// DecodeText recovers the title and body from the stored text. The split is
// at the first separator only, so a body containing ": " survives intact.
// Text without a separator decodes as body-only with an empty title; some
// early rows were written that way.
func DecodeText(text string) (title, body string) {
	if i := strings.Index(text, textSeparator); i >= 0 {
		return text[:i], text[i+len(textSeparator):]
	}
	return "", text
}
