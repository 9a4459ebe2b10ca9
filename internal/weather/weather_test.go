package weather

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// The first column is deliberately not named PKT so the rename is exercised.
const fixtureHeader = "GST,Max TemperatureC,Min TemperatureC,Max Humidity,Mean Humidity,Events"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// julyFixture is five days of July 2011 with a deliberate tie: days 2 and 5
// both hit 32C.
func julyFixture() string {
	return fixtureHeader + "\n" +
		"2011-7-1,30,14,77,52,\n" +
		"2011-7-2,32,15,80,55,Rain\n" +
		"2011-7-3,31,13,75,50,\n" +
		"2011-7-4,29,12,70,48,\n" +
		"2011-7-5,32,11,79,51,\n"
}
