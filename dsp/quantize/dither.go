package quantize

import "fmt"

// DitherType selects the probability distribution of the dither noise
// added before rounding.
type DitherType int

const (
	// DitherNone rounds the input directly.
	DitherNone DitherType = iota
	// DitherRectangular adds uniform noise in [-1/2, 1/2) LSB.
	DitherRectangular
	// DitherTriangular adds triangular noise in (-1, 1) LSB.
	DitherTriangular

	ditherTypeCount
)

var ditherTypeNames = [ditherTypeCount]string{"none", "rectangular", "triangular"}

func (dt DitherType) String() string {
	if dt.Valid() {
		return ditherTypeNames[dt]
	}

	return fmt.Sprintf("DitherType(%d)", dt)
}

// Valid reports whether dt is a known dither type.
func (dt DitherType) Valid() bool {
	return dt >= 0 && dt < ditherTypeCount
}
