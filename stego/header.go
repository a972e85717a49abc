package stego

// MaxHeaderLength is the largest length representable by the 24-bit header.
const MaxHeaderLength = 1<<24 - 1

const headerIndex = 0

// WriteHeader stores length as three little-endian bytes in pixel (0,0).
func WriteHeader(r *Raster, length int) error {
	if length < 0 || length > MaxHeaderLength {
		return &HeaderRangeError{Length: length}
	}

	r.SetPixel(headerIndex, [Channels]uint8{
		uint8(length),
		uint8(length >> 8),
		uint8(length >> 16),
	})
	return nil
}

// ReadHeader reconstructs the message length from pixel (0,0).
func ReadHeader(r *Raster) int {
	p := r.Pixel(headerIndex)
	return int(p[0]) | int(p[1])<<8 | int(p[2])<<16
}
