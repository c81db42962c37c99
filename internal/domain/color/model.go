package color

import (
	"fmt"
	"strings"
)

// FavoriteColor is a color submitted through the home page, keyed by its hex value.
type FavoriteColor struct {
	HexValue string
	Name     string
	Message  string
}

// NormalizeHex trims surrounding whitespace. Case is kept as submitted since
// hex_value is compared verbatim.
func NormalizeHex(value string) string {
	return strings.TrimSpace(value)
}

func (c FavoriteColor) Validate() error {
	if c.HexValue == "" {
		return fmt.Errorf("color hex value is required")
	}
	if c.Name == "" {
		return fmt.Errorf("color name is required")
	}

	return nil
}
