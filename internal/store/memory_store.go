package store

import (
	"sort"
	"sync"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
)

// Scoreboard is one sport's cached slate of games.
type Scoreboard struct {
	Date      string
	Games     []domain.Game
	FetchedAt time.Time
}

// MemoryStore keeps thread-safe per-sport snapshots of scoreboards and
// standings in memory.
type MemoryStore struct {
	mu        sync.RWMutex
	scores    map[string]Scoreboard
	standings map[string][]domain.StandingsRow
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scores:    make(map[string]Scoreboard),
		standings: make(map[string][]domain.StandingsRow),
	}
}

// Scoreboard returns a copy of the cached scoreboard for a sport.
func (s *MemoryStore) Scoreboard(sport string) (Scoreboard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, ok := s.scores[sport]
	if !ok {
		return Scoreboard{}, false
	}
	out := board
	out.Games = append([]domain.Game(nil), board.Games...)
	return out, true
}

// GetGame retrieves a game by ID from a sport's scoreboard.
func (s *MemoryStore) GetGame(sport, id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, ok := s.scores[sport]
	if !ok {
		return domain.Game{}, false
	}
	for _, g := range board.Games {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Game{}, false
}

// SetScoreboard replaces a sport's scoreboard with a new snapshot.
func (s *MemoryStore) SetScoreboard(sport string, board Scoreboard) {
	copied := board
	copied.Games = append([]domain.Game(nil), board.Games...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[sport] = copied
}

// Standings returns a copy of the cached standings for a sport.
func (s *MemoryStore) Standings(sport string) ([]domain.StandingsRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.standings[sport]
	if !ok {
		return nil, false
	}
	return append([]domain.StandingsRow(nil), rows...), true
}

// SetStandings replaces a sport's standings with a new snapshot.
func (s *MemoryStore) SetStandings(sport string, rows []domain.StandingsRow) {
	copied := append([]domain.StandingsRow(nil), rows...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.standings[sport] = copied
}

// Sports lists the sports with a cached scoreboard, sorted.
func (s *MemoryStore) Sports() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sports := make([]string, 0, len(s.scores))
	for sport := range s.scores {
		sports = append(sports, sport)
	}
	sort.Strings(sports)
	return sports
}
