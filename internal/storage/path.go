package storage

import (
	"fmt"
	"path"
	"regexp"
	"time"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,127}$`)

// BuildSnapshotPath returns the object key for a parquet snapshot of one
// dataset table, partitioned by capture date.
func BuildSnapshotPath(tableName string, capturedAt time.Time) (string, error) {
	if !tableNamePattern.MatchString(tableName) {
		return "", fmt.Errorf("invalid table name: %q", tableName)
	}
	ts := capturedAt.UTC()
	return path.Join(
		"snapshots",
		tableName,
		fmt.Sprintf("date=%04d-%02d-%02d", ts.Year(), ts.Month(), ts.Day()),
		fmt.Sprintf("%s-%d.parquet", tableName, ts.Unix()),
	), nil
}
