package stego

// Addresses returns sampleCount linear pixel indices evenly spaced over the
// half-open interval [1, pixelCount). Index k is 1 + k*(pixelCount-1)/sampleCount
// in integer arithmetic, so the result depends only on the two arguments.
//
// The sequence is strictly increasing while sampleCount <= pixelCount-1, and
// never reaches pixelCount-1 while sampleCount <= pixelCount-2.
func Addresses(pixelCount, sampleCount int) []int {
	if sampleCount <= 0 || pixelCount <= 1 {
		return nil
	}

	span := int64(pixelCount - 1)
	n := int64(sampleCount)
	res := make([]int, sampleCount)
	for k := range res {
		res[k] = int(1 + int64(k)*span/n)
	}
	return res
}

// samplesFor is the number of pixels needed to carry length message bytes.
func samplesFor(length int) int {
	return (length + Channels - 1) / Channels
}

// UsablePixels is the number of pixels available for payload once the header
// and sentinel pixels are reserved.
func UsablePixels(pixelCount int) int {
	return max(pixelCount-2, 0)
}

// Capacity is the largest message length, in bytes, that fits in an image
// with pixelCount pixels.
func Capacity(pixelCount int) int {
	return min(UsablePixels(pixelCount)*Channels, MaxHeaderLength)
}
