// Package seasonconfig loads season calendars from YAML into validated
// season definitions. The file format and loading mechanism live here so the
// season core only ever sees constructed definitions.
package seasonconfig

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

//go:embed seasons.yaml
var defaultSeasons []byte

// File is the on-disk shape of a seasons file.
type File struct {
	Seasons map[string][]SeasonRecord `yaml:"seasons" validate:"required,min=1"`
}

// SeasonRecord describes one sport-year calendar.
type SeasonRecord struct {
	Year   int           `yaml:"year" validate:"required,gte=1900,lte=2200"`
	Name   string        `yaml:"name"`
	Phases []PhaseRecord `yaml:"phases" validate:"required,min=1,dive"`
}

// PhaseRecord describes one dated interval within a season.
type PhaseRecord struct {
	Phase string `yaml:"phase" validate:"required"`
	Start string `yaml:"start" validate:"required,datetime=2006-01-02"`
	End   string `yaml:"end" validate:"required,datetime=2006-01-02"`
	Weeks bool   `yaml:"weeks"`
}

// Load reads season definitions from path. An empty path, or a missing file,
// falls back to the embedded defaults so the service can always boot.
func Load(path string) ([]season.Definition, error) {
	if path == "" {
		return Parse(defaultSeasons)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Parse(defaultSeasons)
		}
		return nil, fmt.Errorf("read seasons file: %w", err)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seasons file %s: %w", path, err)
	}
	return defs, nil
}

// Parse decodes and validates raw YAML season data.
func Parse(data []byte) ([]season.Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode seasons: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("validate seasons: %w", err)
	}

	sports := make([]string, 0, len(file.Seasons))
	for sport := range file.Seasons {
		sports = append(sports, sport)
	}
	sort.Strings(sports)

	var defs []season.Definition
	for _, sport := range sports {
		for _, rec := range file.Seasons[sport] {
			if err := validate.Struct(rec); err != nil {
				return nil, fmt.Errorf("validate %s %d: %w", sport, rec.Year, err)
			}
			def, err := buildDefinition(sport, rec)
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
		}
	}
	return defs, nil
}

func buildDefinition(sport string, rec SeasonRecord) (season.Definition, error) {
	intervals := make([]season.Interval, 0, len(rec.Phases))
	for _, ph := range rec.Phases {
		start, err := timeutil.ParseDate(ph.Start)
		if err != nil {
			return season.Definition{}, fmt.Errorf("%s %d: parse start %q: %w", sport, rec.Year, ph.Start, err)
		}
		end, err := timeutil.ParseDate(ph.End)
		if err != nil {
			return season.Definition{}, fmt.Errorf("%s %d: parse end %q: %w", sport, rec.Year, ph.End, err)
		}
		intervals = append(intervals, season.Interval{
			Phase:        season.Phase(ph.Phase),
			Start:        start,
			End:          end,
			WeekNumbered: ph.Weeks,
		})
	}
	return season.NewDefinition(sport, rec.Year, rec.Name, intervals)
}
