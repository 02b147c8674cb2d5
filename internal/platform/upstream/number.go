package upstream

import (
	"bytes"
	"strconv"
	"strings"
)

// Number decodes upstream money and score fields, which arrive inconsistently
// as JSON numbers, numeric strings ("150.00") or null.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if strings.TrimSpace(s) == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		// an unparseable value renders as zero, it must not fail the decode
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Bool decodes upstream flags that arrive as booleans, 1/0 integers or
// "1"/"0" strings.
type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}

// Value returns the plain bool value.
func (b Bool) Value() bool { return bool(b) }

// Float returns the plain float64 value.
func (n Number) Float() float64 { return float64(n) }

// FloatPtr returns nil when n itself is nil, otherwise the float64 value.
func (n *Number) FloatPtr() *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}
