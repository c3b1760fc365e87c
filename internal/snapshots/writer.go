package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// Manifest records which snapshot dates exist per sport and the retention window.
type Manifest struct {
	Scores        map[string][]string `json:"scores"`
	RetentionDays int                 `json:"retentionDays"`
	LastRefreshed time.Time           `json:"lastRefreshed"`
}

// Writer persists scoreboard snapshots and the manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteScoresSnapshot writes a sport's scoreboard snapshot and prunes old snapshots.
func (w *Writer) WriteScoresSnapshot(sport string, snapshot domain.ScoresResponse) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if sport == "" {
		return fmt.Errorf("sport required")
	}
	if snapshot.Date == "" {
		return fmt.Errorf("snapshot date required")
	}

	sort.Slice(snapshot.Games, func(i, j int) bool {
		return snapshot.Games[i].ID < snapshot.Games[j].ID
	})

	target := ScoresSnapshotPath(w.basePath, sport, snapshot.Date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(sport)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(sport)
}

func (w *Writer) updateManifest(sport string) error {
	m := w.readManifest()
	if m.Scores == nil {
		m.Scores = make(map[string][]string)
	}

	dates, err := w.listDates(sport)
	if err != nil {
		return err
	}
	pruned, err := w.pruneOldSnapshots(sport, dates)
	if err != nil {
		return err
	}

	m.Scores[sport] = pruned
	m.RetentionDays = w.retentionDays
	m.LastRefreshed = time.Now().UTC()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.basePath, "manifest.json"), data, 0o644)
}

func (w *Writer) readManifest() Manifest {
	var m Manifest
	data, err := os.ReadFile(filepath.Join(w.basePath, "manifest.json"))
	if err != nil {
		return m
	}
	_ = json.Unmarshal(data, &m)
	return m
}

func (w *Writer) listDates(sport string) ([]string, error) {
	dir := filepath.Join(w.basePath, "scores", sport)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(sport string, dates []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := timeutil.Midnight(now).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(ScoresSnapshotPath(w.basePath, sport, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
