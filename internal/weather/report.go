package weather

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Render selects how a ReportGenerator presents its Summary.
type Render int

const (
	// RenderExtremes prints the single-point extremes report. This is the
	// default.
	RenderExtremes Render = iota

	// RenderAverages prints one month's rounded averages.
	RenderAverages

	// RenderDualBar prints two bar lines per day, max then min.
	RenderDualBar

	// RenderSingleBar prints one combined min+max bar per day.
	RenderSingleBar
)

// Report is the structured, machine-consumable echo of a printed report.
// The bar-chart renders return it deliberately empty: their value is the
// printed visualization, not data.
type Report map[string]any

// ValueOnDate pairs a formatted value with the "day month" label it
// occurred on.
type ValueOnDate struct {
	Value string `json:"value"`
	Date  string `json:"date"`
}

var (
	barMax = color.New(color.FgRed)
	barMin = color.New(color.FgBlue)
)

// ReportGenerator renders a Summary with the installed render strategy.
// Every render writes a human-readable report to the generator's output
// (stdout by default) and returns the structured Report.
type ReportGenerator struct {
	summary Summary
	date    string
	render  Render
	out     io.Writer
}

// NewReportGenerator creates a generator for one summary and its
// originating date string, printing to stdout.
func NewReportGenerator(summary Summary, date string, render Render) *ReportGenerator {
	return &ReportGenerator{summary: summary, date: date, render: render, out: os.Stdout}
}

// SetOutput redirects the printed report, mainly for tests.
func (g *ReportGenerator) SetOutput(w io.Writer) { g.out = w }

// Generate writes the report and returns its structured form. Printing and
// building the Report are independent steps over the same summary; the
// returned structure never depends on the print succeeding cosmetically.
func (g *ReportGenerator) Generate() (Report, error) {
	switch g.render {
	case RenderExtremes:
		s, ok := g.summary.(ExtremesSummary)
		if !ok {
			return nil, fmt.Errorf("extremes render needs an extremes summary, got %T", g.summary)
		}
		g.writeExtremes(s)
		return g.extremesReport(s), nil

	case RenderAverages:
		s, ok := g.summary.(AveragesSummary)
		if !ok {
			return nil, fmt.Errorf("averages render needs an averages summary, got %T", g.summary)
		}
		g.writeAverages(s)
		return g.averagesReport(s), nil

	case RenderDualBar, RenderSingleBar:
		s, ok := g.summary.(MinMaxSummary)
		if !ok {
			return nil, fmt.Errorf("bar render needs a min/max summary, got %T", g.summary)
		}
		if err := g.writeBars(s, g.render == RenderSingleBar); err != nil {
			return nil, err
		}
		return Report{}, nil

	default:
		return nil, fmt.Errorf("unknown render %d", g.render)
	}
}

func (g *ReportGenerator) writeExtremes(s ExtremesSummary) {
	fmt.Fprintf(g.out, "Highest: %dC on %s\n", s.MaxTemp, s.MaxDate)
	fmt.Fprintf(g.out, "Lowest: %dC on %s\n", s.MinTemp, s.MinDate)
	fmt.Fprintf(g.out, "Humidity: %d%% on %s\n", s.MaxHumidity, s.HumidityDate)
}

func (g *ReportGenerator) extremesReport(s ExtremesSummary) Report {
	return Report{
		"date": g.date,
		"highest_temp": ValueOnDate{
			Value: fmt.Sprintf("%dC", s.MaxTemp),
			Date:  s.MaxDate,
		},
		"lowest_temp": ValueOnDate{
			Value: fmt.Sprintf("%dC", s.MinTemp),
			Date:  s.MinDate,
		},
		"max_humidity": ValueOnDate{
			Value: fmt.Sprintf("%d%%", s.MaxHumidity),
			Date:  s.HumidityDate,
		},
	}
}

func (g *ReportGenerator) writeAverages(s AveragesSummary) {
	fmt.Fprintf(g.out, "Highest Average: %dC\n", s.MaxTempAvg)
	fmt.Fprintf(g.out, "Lowest Average: %dC\n", s.MinTempAvg)
	fmt.Fprintf(g.out, "Average Mean Humidity: %d%%\n", s.MeanHumidityAvg)
}

func (g *ReportGenerator) averagesReport(s AveragesSummary) Report {
	return Report{
		"date":              g.date,
		"highest_avg_temp":  fmt.Sprintf("%dC", s.MaxTempAvg),
		"lowest_avg_temp":   fmt.Sprintf("%dC", s.MinTempAvg),
		"avg_mean_humidity": fmt.Sprintf("%d%%", s.MeanHumidityAvg),
	}
}

// writeBars prints the "January 2011" header followed by one or two bar
// lines per day, days ascending.
func (g *ReportGenerator) writeBars(s MinMaxSummary, single bool) error {
	t, err := time.Parse(queryLayout, g.date)
	if err != nil {
		return fmt.Errorf("%w: report date %q: %v", ErrDateParse, g.date, err)
	}
	fmt.Fprintln(g.out, t.Format("January 2006"))

	for _, day := range s.Days() {
		pair := s[day]
		if single {
			fmt.Fprintf(g.out, "%02d %s%s %dC - %dC\n",
				day,
				barMin.Sprint(markers(pair.MinTemp)),
				barMax.Sprint(markers(pair.MaxTemp)),
				pair.MinTemp, pair.MaxTemp)
			continue
		}
		fmt.Fprintf(g.out, "%02d %s %dC\n", day, barMax.Sprint(markers(pair.MaxTemp)), pair.MaxTemp)
		fmt.Fprintf(g.out, "%02d %s %dC\n", day, barMin.Sprint(markers(pair.MinTemp)), pair.MinTemp)
	}
	return nil
}

// markers draws a bar of n plus signs; sub-zero values draw nothing.
func markers(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("+", n)
}
