package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/pbertain/wnbapuff/internal/domain"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadScores(sport, date string) (domain.ScoresResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadScores reads a sport's scoreboard snapshot for the given date (YYYY-MM-DD)
// from {basePath}/scores/{sport}/{date}.json.
func (s *FSStore) LoadScores(sport, date string) (domain.ScoresResponse, error) {
	var payload domain.ScoresResponse
	if s == nil {
		return payload, errors.New("snapshot store not configured")
	}
	if sport == "" {
		return payload, errors.New("snapshot sport required")
	}
	if date == "" {
		return payload, errors.New("snapshot date required")
	}

	if err := s.decodeFile(ScoresSnapshotPath(s.basePath, sport, date), &payload); err != nil {
		return domain.ScoresResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
