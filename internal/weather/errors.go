package weather

import "errors"

var (
	// ErrFileAccess is returned when a weather file cannot be opened or read.
	ErrFileAccess = errors.New("weather file cannot be read")

	// ErrNoMatchingFile is returned when no file in the directory matches the
	// requested date fragment.
	ErrNoMatchingFile = errors.New("no weather file matches the requested date")

	// ErrDateParse is returned when a row's day column does not parse as a date.
	ErrDateParse = errors.New("day column does not parse as a date")

	// ErrEmptyRange is returned when a reduction finds no non-empty values for
	// a field across the selected range.
	ErrEmptyRange = errors.New("no values in range")

	// ErrNumericCoercion is returned when a numeric column holds non-numeric,
	// non-empty text.
	ErrNumericCoercion = errors.New("numeric column holds non-numeric text")
)
