// Package seasonctx builds the season context block attached to every payload
// the relay serves.
package seasonctx

import (
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/season"
)

// Build resolves the date against the sport's current season and returns the
// context block plus the definition it was computed from.
func Build(svc *season.Service, sport string, date time.Time) (domain.SeasonContext, season.Definition, error) {
	def, err := svc.CurrentSeason(sport, date)
	if err != nil {
		return domain.SeasonContext{}, season.Definition{}, err
	}
	return fromDefinition(def, date), def, nil
}

// BuildYear resolves the date against a specific season year instead of the
// current one.
func BuildYear(svc *season.Service, sport string, year int, date time.Time) (domain.SeasonContext, season.Definition, error) {
	def, err := svc.Registry().Get(sport, year)
	if err != nil {
		return domain.SeasonContext{}, season.Definition{}, err
	}
	return fromDefinition(def, date), def, nil
}

func fromDefinition(def season.Definition, date time.Time) domain.SeasonContext {
	res := def.Resolve(date)
	ctx := domain.SeasonContext{
		Sport:      def.Sport(),
		SeasonYear: def.Year(),
		SeasonName: def.Name(),
		Phase:      res.Phase.String(),
		PrevPhase:  res.Prev.String(),
		NextPhase:  res.Next.String(),
		DaysInto:   res.DaysInto,
		DaysLeft:   res.DaysRemaining,
	}
	if res.HasWeek() {
		week := res.Week
		ctx.WeekNumber = &week
	}
	return ctx
}
