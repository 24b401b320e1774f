package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/stromschlag/pkg/errors"
)

var hexRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// EnsureHex returns a canonical #rrggbb string for the given color,
// or an INVALID_COLOR error when the input is not a 6-digit hex color.
func EnsureHex(color string) (string, error) {
	match := hexRe.FindStringSubmatch(strings.TrimSpace(color))
	if match == nil {
		return "", errors.Newf(errors.ErrInvalidColor, "invalid hex color: %s", color).
			WithDetail("color", color)
	}
	return "#" + strings.ToLower(match[1]), nil
}

// HexToRGBA converts a #RRGGBB color to r, g, b components plus the
// given alpha. The color must pass EnsureHex.
func HexToRGBA(color string, alpha uint8) (r, g, b, a uint8, err error) {
	normalized, err := EnsureHex(color)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	// Parse cannot fail past EnsureHex
	rv, _ := strconv.ParseUint(normalized[1:3], 16, 8)
	gv, _ := strconv.ParseUint(normalized[3:5], 16, 8)
	bv, _ := strconv.ParseUint(normalized[5:7], 16, 8)
	return uint8(rv), uint8(gv), uint8(bv), alpha, nil
}
