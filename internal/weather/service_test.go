package weather

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceMonthlyAverageEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loc_2011_Jul.txt", julyFixture())

	svc := NewService(dir)
	var out bytes.Buffer
	svc.SetOutput(&out)

	reports, err := svc.Run([]string{"2011/7"}, 1, StrategyAverages, false)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Equal(t, "2011/7", reports[0]["date"])
	// Max temps 30,32,31,29,32 -> mean 30.8 -> 31.
	assert.Equal(t, "31C", reports[0]["highest_avg_temp"])

	assert.Contains(t, out.String(), "Report # 1")
	assert.Contains(t, out.String(), "Highest Average: 31C")
}

func TestServiceYearlyDefaultStrategy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loc_2011_Jul.txt", julyFixture())
	writeFile(t, dir, "loc_2011_Dec.txt",
		fixtureHeader+"\n2011-12-1,10,2,95,40,Snow\n")

	svc := NewService(dir)
	svc.SetOutput(io.Discard)

	reports, err := svc.Run([]string{"2011"}, 1, Strategy{}, true)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Equal(t, "2011", reports[0]["date"])
	assert.Equal(t, ValueOnDate{Value: "2C", Date: "1 December"}, reports[0]["lowest_temp"])
	assert.Equal(t, ValueOnDate{Value: "95%", Date: "1 December"}, reports[0]["max_humidity"])
}

func TestServiceBatchAbortsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loc_2011_Jul.txt", julyFixture())
	writeFile(t, dir, "loc_2011_Dec.txt",
		fixtureHeader+"\n2011-12-1,10,2,95,40,Snow\n")

	svc := NewService(dir)
	svc.SetOutput(io.Discard)

	// The second date has no matching file; the third must never be reached.
	reports, err := svc.Run([]string{"2011/7", "2013/7", "2011/12"}, 1, StrategyAverages, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatchingFile))
	assert.Nil(t, reports, "no partial results survive a batch failure")
}

func TestServiceNumbersReportsSequentially(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loc_2011_Jul.txt", julyFixture())
	writeFile(t, dir, "loc_2011_Dec.txt",
		fixtureHeader+"\n2011-12-1,10,2,95,40,Snow\n")

	svc := NewService(dir)
	var out bytes.Buffer
	svc.SetOutput(&out)

	reports, err := svc.Run([]string{"2011/7", "2011/12"}, 4, StrategyAverages, false)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Contains(t, out.String(), "Report # 4")
	assert.Contains(t, out.String(), "Report # 5")
}

func TestServiceRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loc_2011_Jul.txt", julyFixture())

	svc := NewService(dir)
	svc.SetOutput(io.Discard)

	first, err := svc.Run([]string{"2011/7"}, 1, StrategyAverages, false)
	require.NoError(t, err)
	second, err := svc.Run([]string{"2011/7"}, 1, StrategyAverages, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
