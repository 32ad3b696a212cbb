package graphis

import "errors"

// Errors reported by chart generation, color construction and path parsing.
// Callers compare with errors.Is; the returned errors wrap these with context.
var (
	// ErrInvalidData is returned when the data list is empty or a value is
	// not a finite number greater than zero.
	ErrInvalidData = errors.New("graphis: invalid chart data")

	// ErrDegenerateSum is returned when the values do not add up to a
	// finite positive total.
	ErrDegenerateSum = errors.New("graphis: sum of values is not a finite positive number")

	// ErrInvalidConfig is returned for a chart configuration that cannot
	// describe an annular wedge.
	ErrInvalidConfig = errors.New("graphis: invalid chart configuration")

	// ErrColorRange is returned when a color encoding is outside its domain.
	ErrColorRange = errors.New("graphis: color value out of range")

	// ErrPathSyntax is returned for malformed path data.
	ErrPathSyntax = errors.New("graphis: malformed path data")
)
