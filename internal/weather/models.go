package weather

import "sort"

// DayKey is the canonical name given to the first column of every weather
// file, whatever the header actually calls it (PKT, PKST, GST, ...).
const DayKey = "PKT"

// EventsKey is the one data column that carries free text instead of numbers.
const EventsKey = "Events"

// Field names the reductions care about.
const (
	FieldMaxTemp      = "Max TemperatureC"
	FieldMinTemp      = "Min TemperatureC"
	FieldMaxHumidity  = "Max Humidity"
	FieldMeanHumidity = "Mean Humidity"
)

// FieldKind says which variant of a Field is populated.
type FieldKind int

const (
	KindEmpty FieldKind = iota
	KindString
	KindNumber
)

// Field is one typed cell of a daily reading: exactly one of a string, a
// floating-point number, or empty. Empty raw values are preserved as empty
// rather than coerced to zero.
type Field struct {
	kind FieldKind
	str  string
	num  float64
}

// StringField wraps a string value. An empty string yields an empty Field,
// mirroring how empty cells survive parsing untouched.
func StringField(s string) Field {
	if s == "" {
		return Field{}
	}
	return Field{kind: KindString, str: s}
}

// NumberField wraps a numeric value.
func NumberField(f float64) Field {
	return Field{kind: KindNumber, num: f}
}

// Kind reports which variant this field holds.
func (f Field) Kind() FieldKind { return f.kind }

// IsEmpty reports whether the underlying cell was empty.
func (f Field) IsEmpty() bool { return f.kind == KindEmpty }

// Number returns the numeric value and whether the field is numeric.
func (f Field) Number() (float64, bool) {
	return f.num, f.kind == KindNumber
}

// String returns the string form of the field; empty and numeric fields
// render as "".
func (f Field) String() string {
	if f.kind == KindString {
		return f.str
	}
	return ""
}

// DailyReading maps field names to typed values for one calendar day. Every
// column present in the raw row appears here with exactly one kind.
type DailyReading map[string]Field

// MonthlyReadings maps day-of-month (1-31) to that day's reading.
type MonthlyReadings map[int]DailyReading

// Days returns the day keys in ascending numeric order. Consumers must not
// rely on map iteration order.
func (m MonthlyReadings) Days() []int {
	days := make([]int, 0, len(m))
	for d := range m {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// YearlyReadings holds one month of readings per discovered file, keyed by
// long month name ("July"). Month order is file-discovery order, preserved so
// that tie-breaking in the extremes reduction stays deterministic for a given
// directory listing.
type YearlyReadings struct {
	order  []string
	months map[string]MonthlyReadings
}

// NewYearlyReadings creates an empty YearlyReadings.
func NewYearlyReadings() *YearlyReadings {
	return &YearlyReadings{months: make(map[string]MonthlyReadings)}
}

// Add registers a month's readings. Re-adding a month overwrites its content
// but keeps its original position in the order.
func (y *YearlyReadings) Add(month string, readings MonthlyReadings) {
	if _, ok := y.months[month]; !ok {
		y.order = append(y.order, month)
	}
	y.months[month] = readings
}

// Month returns the readings for one month.
func (y *YearlyReadings) Month(name string) (MonthlyReadings, bool) {
	m, ok := y.months[name]
	return m, ok
}

// Months returns month names in file-discovery order.
func (y *YearlyReadings) Months() []string { return y.order }

// Len reports how many months were discovered.
func (y *YearlyReadings) Len() int { return len(y.order) }
