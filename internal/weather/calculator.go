package weather

import (
	"fmt"
	"math"
	"sort"
)

// Reduction selects which computation a Calculator runs over its readings.
// The caller picks the reduction to match the readings shape it built; the
// shape is never inferred from the data.
type Reduction int

const (
	// ReduceExtremes finds the extreme max temperature, min temperature and
	// max humidity across a yearly range. This is the default.
	ReduceExtremes Reduction = iota

	// ReduceMonthlyAverage averages max temperature, min temperature and mean
	// humidity over one month.
	ReduceMonthlyAverage

	// ReduceDailyMinMax collects a max/min temperature pair per day of one
	// month.
	ReduceDailyMinMax
)

// Summary is the Calculator's output. The concrete type depends on the
// active reduction.
type Summary interface {
	summary()
}

// ExtremesSummary holds the extreme values of a range and the "day month"
// labels on which they occurred.
type ExtremesSummary struct {
	MaxTemp      int
	MaxDate      string
	MinTemp      int
	MinDate      string
	MaxHumidity  int
	HumidityDate string
}

func (ExtremesSummary) summary() {}

// AveragesSummary holds one month's rounded averages.
type AveragesSummary struct {
	MaxTempAvg      int
	MinTempAvg      int
	MeanHumidityAvg int
}

func (AveragesSummary) summary() {}

// DayMinMax is one day's truncated temperature pair.
type DayMinMax struct {
	MaxTemp int
	MinTemp int
}

// MinMaxSummary maps day-of-month to its temperature pair. Days missing
// either temperature are absent.
type MinMaxSummary map[int]DayMinMax

func (MinMaxSummary) summary() {}

// Days returns the summary's day keys in ascending numeric order.
func (s MinMaxSummary) Days() []int {
	days := make([]int, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Calculator reduces a readings structure to a Summary using the installed
// reduction.
type Calculator struct {
	yearly    *YearlyReadings
	monthly   MonthlyReadings
	reduction Reduction
}

// NewYearlyCalculator builds a Calculator over a yearly range.
func NewYearlyCalculator(readings *YearlyReadings, reduction Reduction) *Calculator {
	return &Calculator{yearly: readings, reduction: reduction}
}

// NewMonthlyCalculator builds a Calculator over a single month.
func NewMonthlyCalculator(readings MonthlyReadings, reduction Reduction) *Calculator {
	return &Calculator{monthly: readings, reduction: reduction}
}

// Compute runs the installed reduction and returns its Summary.
func (c *Calculator) Compute() (Summary, error) {
	switch c.reduction {
	case ReduceExtremes:
		if c.yearly == nil {
			return nil, fmt.Errorf("extremes reduction needs yearly readings")
		}
		return computeExtremes(c.yearly)
	case ReduceMonthlyAverage:
		if c.monthly == nil {
			return nil, fmt.Errorf("average reduction needs monthly readings")
		}
		return computeMonthlyAverage(c.monthly)
	case ReduceDailyMinMax:
		if c.monthly == nil {
			return nil, fmt.Errorf("min/max reduction needs monthly readings")
		}
		return computeDailyMinMax(c.monthly), nil
	default:
		return nil, fmt.Errorf("unknown reduction %d", c.reduction)
	}
}

// extreme tracks a running best value with its label. First occurrence wins
// on ties: the comparison is strict, so a later equal value never replaces
// an earlier one.
type extreme struct {
	set   bool
	value int
	label string
}

func (e *extreme) take(value int, label string, better func(new, old int) bool) {
	if !e.set || better(value, e.value) {
		*e = extreme{set: true, value: value, label: label}
	}
}

func computeExtremes(readings *YearlyReadings) (Summary, error) {
	gt := func(a, b int) bool { return a > b }
	lt := func(a, b int) bool { return a < b }

	var maxTemp, minTemp, maxHumidity extreme

	for _, month := range readings.Months() {
		monthly, _ := readings.Month(month)
		for _, day := range monthly.Days() {
			reading := monthly[day]
			label := fmt.Sprintf("%d %s", day, month)

			if v, ok := reading[FieldMaxTemp].Number(); ok {
				maxTemp.take(int(v), label, gt)
			}
			if v, ok := reading[FieldMinTemp].Number(); ok {
				minTemp.take(int(v), label, lt)
			}
			if v, ok := reading[FieldMaxHumidity].Number(); ok {
				maxHumidity.take(int(v), label, gt)
			}
		}
	}

	if !maxTemp.set {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRange, FieldMaxTemp)
	}
	if !minTemp.set {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRange, FieldMinTemp)
	}
	if !maxHumidity.set {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRange, FieldMaxHumidity)
	}

	return ExtremesSummary{
		MaxTemp:      maxTemp.value,
		MaxDate:      maxTemp.label,
		MinTemp:      minTemp.value,
		MinDate:      minTemp.label,
		MaxHumidity:  maxHumidity.value,
		HumidityDate: maxHumidity.label,
	}, nil
}

func computeMonthlyAverage(readings MonthlyReadings) (Summary, error) {
	var (
		sums   [3]float64
		counts [3]int
	)
	fields := [3]string{FieldMaxTemp, FieldMinTemp, FieldMeanHumidity}

	for _, day := range readings.Days() {
		reading := readings[day]
		for i, field := range fields {
			if v, ok := reading[field].Number(); ok {
				sums[i] += v
				counts[i]++
			}
		}
	}

	var avgs [3]int
	for i, field := range fields {
		if counts[i] == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyRange, field)
		}
		// Half-to-even rounding, matching the reference behavior.
		avgs[i] = int(math.RoundToEven(sums[i] / float64(counts[i])))
	}

	return AveragesSummary{
		MaxTempAvg:      avgs[0],
		MinTempAvg:      avgs[1],
		MeanHumidityAvg: avgs[2],
	}, nil
}

func computeDailyMinMax(readings MonthlyReadings) Summary {
	result := make(MinMaxSummary)
	for day, reading := range readings {
		maxTemp, okMax := reading[FieldMaxTemp].Number()
		minTemp, okMin := reading[FieldMinTemp].Number()
		if !okMax || !okMin {
			// Days missing either value are left out entirely.
			continue
		}
		result[day] = DayMinMax{MaxTemp: int(maxTemp), MinTemp: int(minTemp)}
	}
	return result
}
