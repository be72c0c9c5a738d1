package snapshots

import (
	"fmt"
	"path/filepath"
)

// MatchSnapshotPath builds the path to a fixtures snapshot for a given date.
func MatchSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "matches", fmt.Sprintf("%s.json", date))
}
