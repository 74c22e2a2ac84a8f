package entry

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDLength is the number of hex digits in an entry identifier.
const IDLength = 32

// generateID returns a random (version 4) UUID as 32 uppercase hex digits.
func generateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating entry id: %w", err)
	}
	return formatID(id), nil
}

// normalizeID validates a caller-supplied identifier and returns it in
// uppercase. Only the 32-digit form without hyphens is accepted.
func normalizeID(raw string) (string, error) {
	if len(raw) != IDLength {
		return "", &ValidationError{
			Message: fmt.Sprintf("id must be %d characters long, got %d", IDLength, len(raw)),
		}
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", &ValidationError{Message: "id must be hexadecimal: " + raw}
	}
	return formatID(id), nil
}

func formatID(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
}
