package weather

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// fileExt is the extension weather files are expected to carry.
const fileExt = ".txt"

// dayLayout parses the first column of a data row ("2011-7-1", "2011-07-01").
const dayLayout = "2006-1-2"

// queryLayout parses a monthly report date ("2011/7", "2011/07").
const queryLayout = "2006/1"

// DataReader locates weather files for one report date and assembles their
// rows into day-indexed readings.
type DataReader struct {
	filesDir   string
	reportDate string
}

// NewDataReader creates a reader scoped to one files directory and one
// report date. Monthly lookups expect "YYYY/M"; yearly lookups take a bare
// year (or any substring of the target filenames).
func NewDataReader(filesDir, reportDate string) *DataReader {
	return &DataReader{filesDir: filesDir, reportDate: reportDate}
}

// findFiles returns paths of weather files whose names contain fragment, in
// directory order. The order is whatever the filesystem yields, like the
// original directory listing; callers must not assume it is chronological.
func (r *DataReader) findFiles(fragment string) ([]string, error) {
	dir, err := os.Open(r.filesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, r.filesDir, err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, r.filesDir, err)
	}

	var paths []string
	for _, name := range names {
		if strings.Contains(name, fragment) && strings.HasSuffix(name, fileExt) {
			paths = append(paths, filepath.Join(r.filesDir, name))
		}
	}
	return paths, nil
}

// MonthlyReadings finds the single file for the reader's "YYYY/M" date and
// returns its rows keyed by day of month. If several files match, the first
// directory entry wins (a documented ambiguity, not an error).
func (r *DataReader) MonthlyReadings() (MonthlyReadings, error) {
	t, err := time.Parse(queryLayout, r.reportDate)
	if err != nil {
		return nil, fmt.Errorf("%w: report date %q: %v", ErrDateParse, r.reportDate, err)
	}

	fragment := fmt.Sprintf("%d_%s", t.Year(), t.Format("Jan"))
	files, err := r.findFiles(fragment)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: fragment %q in %s", ErrNoMatchingFile, fragment, r.filesDir)
	}

	rows, err := ParseRecords(files[0])
	if err != nil {
		return nil, err
	}
	return r.monthlyFromRows(rows)
}

// YearlyReadings finds every file matching the reader's date fragment and
// returns one month of readings per file, keyed by the long month name taken
// from the file's first row (not from the filename). Rows are parsed once and
// reused; files are never read twice.
func (r *DataReader) YearlyReadings() (*YearlyReadings, error) {
	files, err := r.findFiles(r.reportDate)
	if err != nil {
		return nil, err
	}

	yearly := NewYearlyReadings()
	for _, path := range files {
		rows, err := ParseRecords(path)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: %s has no data rows", ErrFileAccess, path)
		}

		first, err := time.Parse(dayLayout, strings.TrimSpace(rows[0][DayKey]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %s: %v", ErrDateParse, rows[0][DayKey], path, err)
		}

		monthly, err := r.monthlyFromRows(rows)
		if err != nil {
			return nil, err
		}
		yearly.Add(first.Month().String(), monthly)
	}

	return yearly, nil
}

// monthlyFromRows maps already-parsed rows to day-indexed readings.
func (r *DataReader) monthlyFromRows(rows []map[string]string) (MonthlyReadings, error) {
	monthly := make(MonthlyReadings, len(rows))
	for _, row := range rows {
		t, err := time.Parse(dayLayout, strings.TrimSpace(row[DayKey]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrDateParse, row[DayKey], err)
		}

		reading, err := dailyReading(row)
		if err != nil {
			return nil, err
		}
		monthly[t.Day()] = reading
	}
	return monthly, nil
}

// dailyReading types one raw row: the day key and the events column stay
// strings, empty cells stay empty, everything else must parse as a number.
func dailyReading(row map[string]string) (DailyReading, error) {
	reading := make(DailyReading, len(row))
	for name, raw := range row {
		if name == DayKey || name == EventsKey || raw == "" {
			reading[name] = StringField(raw)
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q value %q", ErrNumericCoercion, name, raw)
		}
		reading[name] = NumberField(v)
	}
	return reading, nil
}
