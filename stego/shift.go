package stego

// Shift adds shift to a channel byte. Values that would leave 0..255 are
// rejected rather than wrapped.
func Shift(b byte, shift int) (byte, error) {
	v := int(b) + shift
	if v < 0 || v > 0xFF {
		return 0, &ChannelOverflowError{Value: b, Shift: shift}
	}
	return byte(v), nil
}

// Unshift reverses Shift.
func Unshift(b byte, shift int) (byte, error) {
	v := int(b) - shift
	if v < 0 || v > 0xFF {
		return 0, &ChannelOverflowError{Value: b, Shift: -shift}
	}
	return byte(v), nil
}
