package stego

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrCorruptImage      = errors.New("corrupt image")
	ErrCapacityExceeded  = errors.New("message exceeds image capacity")
	ErrFormatValidation  = errors.New("image was not produced by this codec")
	ErrHeaderRange       = errors.New("length does not fit the header")
	ErrChannelOverflow   = errors.New("shifted channel value out of range")
)

// UnsupportedFormatError is returned when the container is not a lossless
// raster format accepted for the operation.
type UnsupportedFormatError struct {
	Format string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unsupported image format %q", e.Format)
	}
	return fmt.Sprintf("unsupported image format %q: %s", e.Format, e.Reason)
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// CorruptImageError is returned when the image cannot be turned into a pixel grid.
type CorruptImageError struct {
	Reason string
	Err    error
}

func (e *CorruptImageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt image: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt image: %s", e.Reason)
}

func (e *CorruptImageError) Is(target error) bool { return target == ErrCorruptImage }
func (e *CorruptImageError) Unwrap() error        { return e.Err }

type CapacityExceededError struct {
	Length   int // message bytes requested
	Capacity int // message bytes available
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("message of %d bytes exceeds image capacity of %d bytes", e.Length, e.Capacity)
}

func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }

// FormatValidationError is returned by decode when the sentinel is missing or
// the stored bytes do not match the shift.
type FormatValidationError struct {
	Reason string
}

func (e *FormatValidationError) Error() string {
	return fmt.Sprintf("format validation failed: %s", e.Reason)
}

func (e *FormatValidationError) Is(target error) bool { return target == ErrFormatValidation }

type HeaderRangeError struct {
	Length int
}

func (e *HeaderRangeError) Error() string {
	return fmt.Sprintf("length %d outside header range 0..%d", e.Length, MaxHeaderLength)
}

func (e *HeaderRangeError) Is(target error) bool { return target == ErrHeaderRange }

type ChannelOverflowError struct {
	Value byte
	Shift int
}

func (e *ChannelOverflowError) Error() string {
	return fmt.Sprintf("channel value %d shifted by %d leaves 0..255", e.Value, e.Shift)
}

func (e *ChannelOverflowError) Is(target error) bool { return target == ErrChannelOverflow }
