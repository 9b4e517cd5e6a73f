package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color value.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses a hex color notation: "#rgb", "#rrggbb" or "#rrggbbaa".
// The leading "#" is required; hex digits are case-insensitive.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q must start with '#'", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		r, err1 := nibble(hex[0])
		g, err2 := nibble(hex[1])
		b, err3 := nibble(hex[2])
		if err := firstError(err1, err2, err3); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color{R: r*16 + r, G: g*16 + g, B: b*16 + b, A: 0xff}, nil
	case 6, 8:
		n, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if len(hex) == 6 {
			n = n<<8 | 0xff
		}
		return Color{
			R: uint8(n >> 24),
			G: uint8(n >> 16),
			B: uint8(n >> 8),
			A: uint8(n),
		}, nil
	default:
		return Color{}, fmt.Errorf("color %q must have 3, 6 or 8 hex digits", s)
	}
}

// String renders the color as "#rrggbb", or "#rrggbbaa" when it carries a
// non-opaque alpha channel.
func (c Color) String() string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the relative luminance in the range [0, 1] using the
// Rec. 709 coefficients.
func (c Color) Luminance() float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

// WithAlpha returns a copy of the color with the given alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

func nibble(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", string(b))
	}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
