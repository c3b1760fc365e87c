package snapshots

import (
	"fmt"
	"path/filepath"
)

// ScoresSnapshotPath builds the path to a sport's scoreboard snapshot for a given date.
func ScoresSnapshotPath(basePath, sport, date string) string {
	return filepath.Join(basePath, "scores", sport, fmt.Sprintf("%s.json", date))
}
