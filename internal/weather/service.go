package weather

import (
	"fmt"
	"io"
	"os"
)

// Strategy pairs a reduction with a render. The zero value selects the
// defaults: yearly extremes computed and printed as the extremes report.
type Strategy struct {
	Reduction Reduction
	Render    Render
}

// The strategy pairs the CLI flags and HTTP routes expose.
var (
	StrategyExtremes  = Strategy{ReduceExtremes, RenderExtremes}
	StrategyAverages  = Strategy{ReduceMonthlyAverage, RenderAverages}
	StrategyDualBar   = Strategy{ReduceDailyMinMax, RenderDualBar}
	StrategySingleBar = Strategy{ReduceDailyMinMax, RenderSingleBar}
)

// Service drives the report pipeline: for each requested date it wires a
// DataReader, a Calculator and a ReportGenerator with the caller's strategy
// pair and collects the structured reports.
type Service struct {
	filesDir string
	out      io.Writer
}

// NewService creates a pipeline service over one weather files directory,
// printing reports to stdout.
func NewService(filesDir string) *Service {
	return &Service{filesDir: filesDir, out: os.Stdout}
}

// SetOutput redirects all printed output, mainly for tests.
func (s *Service) SetOutput(w io.Writer) { s.out = w }

// Run processes dates strictly in order, one synchronous pipeline pass per
// date, numbering printed reports from reportNum. It returns one Report per
// date, in input order. There is no partial-failure isolation: the first
// error aborts the batch and propagates, and no report is produced for any
// later date. Callers wanting per-date tolerance must invoke Run per date.
func (s *Service) Run(dates []string, reportNum int, strat Strategy, yearly bool) ([]Report, error) {
	reports := make([]Report, 0, len(dates))

	for _, date := range dates {
		fmt.Fprintf(s.out, "\nReport # %d\n", reportNum)

		reader := NewDataReader(s.filesDir, date)

		var calc *Calculator
		if yearly {
			readings, err := reader.YearlyReadings()
			if err != nil {
				return nil, err
			}
			calc = NewYearlyCalculator(readings, strat.Reduction)
		} else {
			readings, err := reader.MonthlyReadings()
			if err != nil {
				return nil, err
			}
			calc = NewMonthlyCalculator(readings, strat.Reduction)
		}

		summary, err := calc.Compute()
		if err != nil {
			return nil, err
		}

		gen := NewReportGenerator(summary, date, strat.Render)
		gen.SetOutput(s.out)

		report, err := gen.Generate()
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
		reportNum++
	}

	return reports, nil
}
