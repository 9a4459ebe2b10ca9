package weather

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateExtremesReport(t *testing.T) {
	summary := ExtremesSummary{
		MaxTemp: 32, MaxDate: "2 July",
		MinTemp: 11, MinDate: "5 July",
		MaxHumidity: 80, HumidityDate: "2 July",
	}

	var out bytes.Buffer
	gen := NewReportGenerator(summary, "2011", RenderExtremes)
	gen.SetOutput(&out)

	report, err := gen.Generate()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Highest: 32C on 2 July", lines[0])
	assert.Equal(t, "Lowest: 11C on 5 July", lines[1])
	assert.Equal(t, "Humidity: 80% on 2 July", lines[2])

	assert.Equal(t, "2011", report["date"])

	highest, ok := report["highest_temp"].(ValueOnDate)
	require.True(t, ok)
	assert.Equal(t, "2 July", highest.Date)

	// Round-trip: the formatted value recovers the number that produced it.
	n, err := strconv.Atoi(strings.TrimSuffix(highest.Value, "C"))
	require.NoError(t, err)
	assert.Equal(t, summary.MaxTemp, n)
}

func TestGenerateAveragesReport(t *testing.T) {
	summary := AveragesSummary{MaxTempAvg: 31, MinTempAvg: 13, MeanHumidityAvg: 51}

	var out bytes.Buffer
	gen := NewReportGenerator(summary, "2011/7", RenderAverages)
	gen.SetOutput(&out)

	report, err := gen.Generate()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Highest Average: 31C")
	assert.Contains(t, out.String(), "Lowest Average: 13C")
	assert.Contains(t, out.String(), "Average Mean Humidity: 51%")

	assert.Equal(t, Report{
		"date":              "2011/7",
		"highest_avg_temp":  "31C",
		"lowest_avg_temp":   "13C",
		"avg_mean_humidity": "51%",
	}, report)
}

func TestGenerateDualBarReport(t *testing.T) {
	summary := MinMaxSummary{
		3: {MaxTemp: 4, MinTemp: 2},
		1: {MaxTemp: 5, MinTemp: 3},
	}

	var out bytes.Buffer
	gen := NewReportGenerator(summary, "2011/7", RenderDualBar)
	gen.SetOutput(&out)

	report, err := gen.Generate()
	require.NoError(t, err)
	assert.Empty(t, report, "bar renders return an empty structured result")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "July 2011", lines[0])

	// Days ascending, max line then min line, one marker per degree.
	assert.True(t, strings.HasPrefix(lines[1], "01 "))
	assert.Equal(t, 5, strings.Count(lines[1], "+"))
	assert.True(t, strings.HasSuffix(lines[1], "5C"))

	assert.True(t, strings.HasPrefix(lines[2], "01 "))
	assert.Equal(t, 3, strings.Count(lines[2], "+"))

	assert.True(t, strings.HasPrefix(lines[3], "03 "))
	assert.Equal(t, 4, strings.Count(lines[3], "+"))
	assert.True(t, strings.HasPrefix(lines[4], "03 "))
	assert.Equal(t, 2, strings.Count(lines[4], "+"))
}

func TestGenerateSingleBarReport(t *testing.T) {
	summary := MinMaxSummary{
		2: {MaxTemp: 6, MinTemp: -1},
		1: {MaxTemp: 4, MinTemp: 2},
	}

	var out bytes.Buffer
	gen := NewReportGenerator(summary, "2011/7", RenderSingleBar)
	gen.SetOutput(&out)

	report, err := gen.Generate()
	require.NoError(t, err)
	assert.Empty(t, report)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "July 2011", lines[0])

	// One combined line per day: min markers then max markers then the range.
	assert.True(t, strings.HasPrefix(lines[1], "01 "))
	assert.Equal(t, 6, strings.Count(lines[1], "+"))
	assert.True(t, strings.HasSuffix(lines[1], "2C - 4C"))

	// Negative values draw no markers.
	assert.True(t, strings.HasPrefix(lines[2], "02 "))
	assert.Equal(t, 6, strings.Count(lines[2], "+"))
	assert.True(t, strings.HasSuffix(lines[2], "-1C - 6C"))
}

func TestGenerateBarReportBadDate(t *testing.T) {
	gen := NewReportGenerator(MinMaxSummary{}, "not-a-date", RenderDualBar)
	gen.SetOutput(&bytes.Buffer{})

	_, err := gen.Generate()
	assert.Error(t, err)
}

func TestGenerateShapeMismatch(t *testing.T) {
	gen := NewReportGenerator(AveragesSummary{}, "2011", RenderExtremes)
	gen.SetOutput(&bytes.Buffer{})

	_, err := gen.Generate()
	assert.Error(t, err)
}
