package stego

import "fmt"

var white = [Channels]uint8{0xFF, 0xFF, 0xFF}

// MarkColumns hides msg with the column-marker scheme: byte i is stored as a
// white pixel at row i*H/len(msg), column msg[i]. Every other white pixel is
// flattened first so the marks are the only white pixels left.
func MarkColumns(r *Raster, msg string) error {
	if err := r.validate(); err != nil {
		return err
	}
	if len(msg) > r.Height {
		return &CapacityExceededError{Length: len(msg), Capacity: r.Height}
	}
	for i := 0; i < len(msg); i++ {
		if int(msg[i]) >= r.Width {
			return fmt.Errorf("%w: byte %d at offset %d needs an image wider than %d pixels",
				ErrCapacityExceeded, msg[i], i, r.Width)
		}
	}

	FlattenWhite(r)
	for i := 0; i < len(msg); i++ {
		r.Set(i*r.Height/len(msg), int(msg[i]), white)
	}
	return nil
}

// ReadColumns recovers a message written by MarkColumns.
func ReadColumns(r *Raster) (string, error) {
	if err := r.validate(); err != nil {
		return "", err
	}

	var msg []byte
	for idx := range r.PixelCount() {
		if r.Pixel(idx) != white {
			continue
		}
		_, col := r.Coords(idx)
		if col > 0xFF {
			return "", &FormatValidationError{Reason: fmt.Sprintf("white pixel at column %d is not a byte", col)}
		}
		msg = append(msg, byte(col))
	}
	return string(msg), nil
}
