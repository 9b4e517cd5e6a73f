package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a span of time with an ISO-8601 text form (a "PnDTnHnMnS"
// subset). It converts losslessly to and from time.Duration.
type Duration time.Duration

// ParseDuration parses the ISO-8601 duration subset "PnDTnHnMnS". Every
// component is optional, but the leading "P" is required and at least one
// component must be present; seconds may carry a fraction.
func ParseDuration(s string) (Duration, error) {
	rest, ok := strings.CutPrefix(s, "P")
	if !ok {
		return 0, fmt.Errorf("duration %q must start with 'P'", s)
	}

	var total time.Duration
	components := 0

	datePart, timePart, hasTime := strings.Cut(rest, "T")
	if hasTime && timePart == "" {
		return 0, fmt.Errorf("duration %q has an empty time part", s)
	}

	datePart, err := parseComponent(datePart, "D", 24*time.Hour, &total, &components)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if datePart != "" {
		return 0, fmt.Errorf("invalid duration %q: unexpected %q", s, datePart)
	}

	for _, unit := range []struct {
		suffix string
		scale  time.Duration
	}{
		{"H", time.Hour},
		{"M", time.Minute},
		{"S", time.Second},
	} {
		timePart, err = parseComponent(timePart, unit.suffix, unit.scale, &total, &components)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
	}
	if timePart != "" {
		return 0, fmt.Errorf("invalid duration %q: unexpected %q", s, timePart)
	}
	if components == 0 {
		return 0, fmt.Errorf("duration %q has no components", s)
	}
	return Duration(total), nil
}

// parseComponent consumes a leading "<number><suffix>" from s if present,
// accumulating number*scale into total.
func parseComponent(s, suffix string, scale time.Duration, total *time.Duration, components *int) (string, error) {
	end := strings.Index(s, suffix)
	if end < 0 {
		return s, nil
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return s, fmt.Errorf("bad %s component: %w", suffix, err)
	}
	if n < 0 {
		return s, fmt.Errorf("negative %s component", suffix)
	}
	*total += time.Duration(n * float64(scale))
	*components++
	return s[end+len(suffix):], nil
}

// String renders the duration in ISO-8601 notation. The zero duration is
// "PT0S".
func (d Duration) String() string {
	rem := time.Duration(d)
	if rem == 0 {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteByte('P')
	if days := rem / (24 * time.Hour); days > 0 {
		fmt.Fprintf(&b, "%dD", days)
		rem -= days * 24 * time.Hour
	}
	if rem > 0 {
		b.WriteByte('T')
		if h := rem / time.Hour; h > 0 {
			fmt.Fprintf(&b, "%dH", h)
			rem -= h * time.Hour
		}
		if m := rem / time.Minute; m > 0 {
			fmt.Fprintf(&b, "%dM", m)
			rem -= m * time.Minute
		}
		if rem > 0 {
			seconds := float64(rem) / float64(time.Second)
			b.WriteString(strconv.FormatFloat(seconds, 'f', -1, 64))
			b.WriteByte('S')
		}
	}
	return b.String()
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
