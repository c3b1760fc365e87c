package seasonconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

func TestParseEmbeddedDefaults(t *testing.T) {
	defs, err := Parse(defaultSeasons)
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	bySport := map[string]int{}
	for _, def := range defs {
		bySport[def.Sport()]++
	}
	for _, sport := range []string{"wnba", "nba", "nhl", "mlb", "nfl"} {
		assert.Equal(t, 2, bySport[sport], "expected two seasons for %s", sport)
	}
}

func TestParseWNBACalendar(t *testing.T) {
	defs, err := Parse(defaultSeasons)
	require.NoError(t, err)

	var wnba season.Definition
	for _, def := range defs {
		if def.Sport() == "wnba" && def.Year() == 2025 {
			wnba = def
		}
	}
	require.Equal(t, "WNBA 2025", wnba.Name())

	res := wnba.Resolve(timeutil.Date(2025, time.May, 16))
	assert.Equal(t, season.PhaseRegularSeason, res.Phase)
	assert.Equal(t, 1, res.Week)

	res = wnba.Resolve(timeutil.Date(2025, time.July, 19))
	assert.Equal(t, season.PhaseAllStarBreak, res.Phase)
	assert.False(t, res.HasWeek())
}

func TestParseRejectsOverlappingPhases(t *testing.T) {
	raw := []byte(`
seasons:
  wnba:
    - year: 2025
      phases:
        - phase: regular-season
          start: 2025-05-16
          end: 2025-09-11
        - phase: all-star-break
          start: 2025-07-17
          end: 2025-07-21
`)
	_, err := Parse(raw)
	require.ErrorIs(t, err, season.ErrInvalidConfig)
}

func TestParseRejectsBadDate(t *testing.T) {
	raw := []byte(`
seasons:
  wnba:
    - year: 2025
      phases:
        - phase: playoffs
          start: 09/14/2025
          end: 2025-10-19
`)
	_, err := Parse(raw)
	require.Error(t, err)
}

func TestParseRejectsUnknownPhaseLabel(t *testing.T) {
	raw := []byte(`
seasons:
  wnba:
    - year: 2025
      phases:
        - phase: bye-week
          start: 2025-09-14
          end: 2025-10-19
`)
	_, err := Parse(raw)
	require.ErrorIs(t, err, season.ErrInvalidConfig)
}

func TestParseRejectsMissingFields(t *testing.T) {
	raw := []byte(`
seasons:
  wnba:
    - year: 2025
      phases:
        - phase: playoffs
          start: 2025-09-14
`)
	_, err := Parse(raw)
	require.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("seasons: [whoops"))
	require.Error(t, err)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	defs, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, defs)
}

func TestLoadCustomFile(t *testing.T) {
	raw := `
seasons:
  wnba:
    - year: 2030
      name: WNBA 2030
      phases:
        - phase: regular-season
          start: 2030-05-16
          end: 2030-09-11
          weeks: true
`
	path := filepath.Join(t.TempDir(), "seasons.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	defs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, 2030, defs[0].Year())
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	defs, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, defs)
}
