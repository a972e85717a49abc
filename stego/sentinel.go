package stego

// SentinelValue marks the last pixel of every image produced by Embed.
const SentinelValue = 123

var sentinel = [Channels]uint8{SentinelValue, SentinelValue, SentinelValue}

// Stamp writes the sentinel into the last pixel. It runs after the payload
// is written.
func Stamp(r *Raster) {
	r.SetPixel(r.PixelCount()-1, sentinel)
}

// Verify reports whether the last pixel holds the sentinel.
func Verify(r *Raster) bool {
	if r.PixelCount() == 0 {
		return false
	}
	return r.Pixel(r.PixelCount()-1) == sentinel
}
