// Package codec encodes the fixed-width text frames exchanged between peers.
//
// A frame is Fields values, each formatted to exactly Width bytes and
// concatenated with no delimiter. Numbers are left-padded with the filler
// byte, strings are right-padded with it.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrIncomplete    = errors.New("codec: incomplete frame")
	ErrMalformed     = errors.New("codec: malformed frame")
	ErrFieldOverflow = errors.New("codec: value does not fit field width")
	ErrFieldCount    = errors.New("codec: wrong number of fields")
)

// Layout describes one frame format.
type Layout struct {
	Fields    int
	Width     int
	Precision int  // decimals kept for numbers
	Filler    byte // padding byte
}

var (
	LayoutV1 = Layout{Fields: 4, Width: 10, Precision: 3, Filler: '_'}
	LayoutV2 = Layout{Fields: 4, Width: 8, Precision: 2, Filler: ' '}
)

// LayoutByName returns a built-in layout ("v1" or "v2").
func LayoutByName(name string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "v1":
		return LayoutV1, true
	case "v2", "":
		return LayoutV2, true
	}
	return Layout{}, false
}

// FrameSize is the byte length of one encoded frame.
func (l Layout) FrameSize() int {
	return l.Fields * l.Width
}

// Value is one decoded field. IsNum tells which of Num and Str is set.
type Value struct {
	Num   float64
	Str   string
	IsNum bool
}

// Encode formats values into a single frame. Supported types are float64,
// float32, int and string.
func (l Layout) Encode(values ...any) ([]byte, error) {
	if len(values) != l.Fields {
		return nil, fmt.Errorf("%w: got %d, layout has %d", ErrFieldCount, len(values), l.Fields)
	}

	buf := make([]byte, 0, l.FrameSize())
	for i, v := range values {
		field, err := l.encodeField(v)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		buf = append(buf, field...)
	}
	return buf, nil
}

func (l Layout) encodeField(v any) (string, error) {
	switch x := v.(type) {
	case float64:
		return l.formatNumber(x)
	case float32:
		return l.formatNumber(float64(x))
	case int:
		return l.formatNumber(float64(x))
	case string:
		return l.padString(x), nil
	default:
		return "", fmt.Errorf("codec: unsupported field type %T", v)
	}
}

// formatNumber drops decimals until the number fits the field.
func (l Layout) formatNumber(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrFieldOverflow, f)
	}
	for prec := l.Precision; prec >= 0; prec-- {
		s := strconv.FormatFloat(f, 'f', prec, 64)
		if len(s) <= l.Width {
			return strings.Repeat(string(l.Filler), l.Width-len(s)) + s, nil
		}
	}
	return "", fmt.Errorf("%w: %v in %d bytes", ErrFieldOverflow, f, l.Width)
}

func (l Layout) padString(s string) string {
	if len(s) >= l.Width {
		return s[:l.Width]
	}
	return s + strings.Repeat(string(l.Filler), l.Width-len(s))
}

// Decode splits the first frame of buf into values. It returns
// ErrIncomplete until buf holds at least one full frame.
func (l Layout) Decode(buf []byte) ([]Value, error) {
	if len(buf) < l.FrameSize() {
		return nil, ErrIncomplete
	}

	values := make([]Value, l.Fields)
	for i := range values {
		values[i] = l.parseField(string(buf[i*l.Width : (i+1)*l.Width]))
	}
	return values, nil
}

func (l Layout) parseField(chunk string) Value {
	s := strings.Trim(chunk, string(l.Filler)+" ")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{Num: f, IsNum: true}
	}
	return Value{Str: s}
}
