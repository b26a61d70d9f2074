package codec

import (
	"fmt"
	"math"
	"strings"
)

// WinSentinel is the payload of the frame a peer sends after landing on its
// opponent.
const WinSentinel = "WIN"

// State is the position+velocity tuple a peer streams for its ball.
type State struct {
	X, Y   float64
	VX, VY float64
}

// EncodeState formats s as x, y, vx, vy.
func (l Layout) EncodeState(s State) ([]byte, error) {
	return l.Encode(s.X, s.Y, s.VX, s.VY)
}

// DecodeState parses a state frame. Frames with non-numeric or non-finite
// fields are rejected with ErrMalformed.
func (l Layout) DecodeState(frame []byte) (State, error) {
	if l.Fields != 4 {
		return State{}, fmt.Errorf("%w: state needs 4 fields, layout has %d", ErrFieldCount, l.Fields)
	}
	values, err := l.Decode(frame)
	if err != nil {
		return State{}, err
	}

	var nums [4]float64
	for i, v := range values {
		if !v.IsNum || math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return State{}, fmt.Errorf("%w: field %d is %q", ErrMalformed, i, v.Str)
		}
		nums[i] = v.Num
	}
	return State{X: nums[0], Y: nums[1], VX: nums[2], VY: nums[3]}, nil
}

// WinFrame returns the WIN sentinel padded with spaces to a full frame.
func (l Layout) WinFrame() []byte {
	return []byte(WinSentinel + strings.Repeat(" ", l.FrameSize()-len(WinSentinel)))
}

// IsWin reports whether the first frame of buf is the WIN sentinel.
func (l Layout) IsWin(buf []byte) bool {
	if len(buf) < l.FrameSize() {
		return false
	}
	return strings.TrimRight(string(buf[:l.FrameSize()]), " ") == WinSentinel
}
