package errors

import "unicode"

// maxIDLength bounds node identifiers to keep error output and layout
// bookkeeping sane for hand-written workflow documents.
const maxIDLength = 256

// ValidateNodeID validates a node identifier from a workflow document.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters (tabs, newlines, null bytes)
//   - Maximum length of 256 characters
//
// Display concerns (icons, labels) are validated separately; the ID is a
// pure key and never drawn on the canvas.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeMissingField, "node id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidID, "node id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "node id %q contains control characters", id)
		}
	}

	return nil
}

// ValidateLabel validates a node label. Labels are drawn inside boxes, so a
// label must be non-empty and single-line; multi-line content belongs in the
// description, which is word-wrapped by the box renderer.
func ValidateLabel(id, label string) error {
	if label == "" {
		return New(ErrCodeMissingField, "node %q has no label", id)
	}

	for _, r := range label {
		if r == '\n' || r == '\r' {
			return New(ErrCodeInvalidID, "node %q label contains line breaks", id)
		}
	}

	return nil
}
