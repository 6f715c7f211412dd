package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/freshmart/supermarket-inventory/internal/errors"
)

// parseID turns a raw path value into a positive integer id. label names the
// entity for the error message ("category" or "item").
func parseID(raw, label string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.InvalidInputError(fmt.Sprintf("Invalid %s ID", label))
	}

	return id, nil
}

// imageOrPlaceholder substitutes the placeholder path when no image URL was
// supplied.
func imageOrPlaceholder(imageURL, placeholder string) string {
	if strings.TrimSpace(imageURL) == "" {
		return placeholder
	}

	return strings.TrimSpace(imageURL)
}
