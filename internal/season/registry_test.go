package season

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2025(t))

	def, err := reg.Get("wnba", 2025)
	if err != nil {
		t.Fatalf("expected lookup to succeed, got %v", err)
	}
	if def.Year() != 2025 {
		t.Fatalf("expected 2025, got %d", def.Year())
	}
}

func TestRegistryGetNormalizesSport(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2025(t))

	if _, err := reg.Get("WNBA", 2025); err != nil {
		t.Fatalf("expected case-insensitive lookup, got %v", err)
	}
	if _, err := reg.Get(" wnba ", 2025); err != nil {
		t.Fatalf("expected trimmed lookup, got %v", err)
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2025(t))

	if _, err := reg.Get("wnba", 1999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := reg.Get("nba", 2025); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown sport, got %v", err)
	}
}

func TestRegistryYearsAndNext(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2026(t))
	reg.Register(wnba2025(t))

	years := reg.Years("wnba")
	if len(years) != 2 || years[0] != 2025 || years[1] != 2026 {
		t.Fatalf("expected ascending years, got %v", years)
	}

	next, ok := reg.Next("wnba", 2025)
	if !ok || next.Year() != 2026 {
		t.Fatalf("expected 2026 as next season, got %v ok=%v", next.Year(), ok)
	}
	if _, ok := reg.Next("wnba", 2026); ok {
		t.Fatal("expected no season after the latest year")
	}
}

func TestRegistrySports(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2025(t))
	nba, err := NewDefinition("nba", 2025, "NBA 2025-26", []Interval{
		{Phase: PhaseRegularSeason, Start: timeutil.Date(2025, time.October, 21), End: timeutil.Date(2026, time.April, 13), WeekNumbered: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reg.Register(nba)

	sports := reg.Sports()
	if len(sports) != 2 || sports[0] != "nba" || sports[1] != "wnba" {
		t.Fatalf("expected [nba wnba], got %v", sports)
	}
}

func TestRegistryReplaceAllSwapsSnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2025(t))

	reg.ReplaceAll([]Definition{wnba2026(t)})

	if _, err := reg.Get("wnba", 2025); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected old snapshot to be gone, got %v", err)
	}
	if _, err := reg.Get("wnba", 2026); err != nil {
		t.Fatalf("expected new snapshot to be present, got %v", err)
	}
}

func TestRegistryConcurrentReadsDuringReload(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2025(t))
	reg.Register(wnba2026(t))
	snapshot := []Definition{wnba2025(t), wnba2026(t)}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				// Every snapshot generation contains both years, so reads
				// must always succeed regardless of reload timing.
				if _, err := reg.Get("wnba", 2025); err != nil {
					t.Errorf("read failed during reload: %v", err)
					return
				}
			}
		}()
	}
	for i := 0; i < 50; i++ {
		reg.ReplaceAll(snapshot)
	}
	wg.Wait()
}
