package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/logging"
	"github.com/pbertain/wnbapuff/internal/metrics"
	"github.com/pbertain/wnbapuff/internal/providers"
	"github.com/pbertain/wnbapuff/internal/store"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

const defaultInterval = 30 * time.Second

// SnapshotWriter persists scoreboard snapshots to disk.
type SnapshotWriter interface {
	WriteScoresSnapshot(sport string, snapshot domain.ScoresResponse) error
}

// Poller refreshes each configured sport's scoreboard on an interval and
// publishes the results to the store.
type Poller struct {
	provider providers.ScoreProvider
	sports   []string
	store    *store.MemoryStore
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.ScoreProvider, sports []string, memStore *store.MemoryStore, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if len(sports) == 0 {
		sports = []string{"wnba"}
	}
	return &Poller{
		provider: provider,
		sports:   sports,
		store:    memStore,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.refreshAll(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.refreshAll(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshAll(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	today := timeutil.FormatDate(p.now().UTC())

	var firstErr error
	for _, sport := range p.sports {
		if err := p.refreshSport(ctx, sport, today); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), firstErr)
	}
	if firstErr != nil {
		p.recordFailure(firstErr, start)
		return
	}
	p.recordSuccess(start)
}

func (p *Poller) refreshSport(ctx context.Context, sport, today string) error {
	start := time.Now()
	games, err := p.provider.FetchScores(ctx, sport, today)
	if err != nil {
		p.logError("poller fetch failed", err,
			slog.String(logging.FieldSport, sport),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return err
	}

	if p.store != nil {
		p.store.SetScoreboard(sport, store.Scoreboard{
			Date:      today,
			Games:     games,
			FetchedAt: p.now().UTC(),
		})
	}
	if p.writer != nil {
		snap := domain.NewScoresResponse(today, games, domain.SeasonContext{Sport: sport})
		if writeErr := p.writer.WriteScoresSnapshot(sport, snap); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr, slog.String(logging.FieldSport, sport))
		}
	}

	p.logInfo("poller refreshed scoreboard",
		logging.FieldSport, sport,
		logging.FieldCount, len(games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.ScoreProvider {
	return p.provider
}
