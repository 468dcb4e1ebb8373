package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"wellness/internal/modules/analytics/domain"
	analyticsout "wellness/internal/modules/analytics/port/out"
	"wellness/internal/platform/clock"
	apperrors "wellness/internal/platform/errors"
	"wellness/internal/platform/logging"
	"wellness/internal/platform/notice"
)

type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateReady    State = "ready"
	StateDegraded State = "error-degraded"
)

const (
	DefaultFetchLimit = 90
	fetchParallelism  = 3
)

// Orchestrator owns the cached snapshot of one user's logs and the view derived
// from it. Fetches run outside the lock; their result is applied only if no
// newer fetch or identity change happened in between.
type Orchestrator struct {
	reader   analyticsout.LogReader
	clock    clock.Clock
	notifier notice.Notifier
	logger   hclog.Logger
	limit    int
	loc      *time.Location

	mu         sync.Mutex
	userID     string
	generation uint64
	state      State
	window     domain.Window
	snapshot   domain.Snapshot
	view       domain.View
	lastErr    error
}

type Options struct {
	FetchLimit int
	Window     domain.Window
	Location   *time.Location
}

func NewOrchestrator(reader analyticsout.LogReader, clk clock.Clock, notifier notice.Notifier, logger hclog.Logger, opts Options) *Orchestrator {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.FetchLimit <= 0 {
		opts.FetchLimit = DefaultFetchLimit
	}
	if opts.Window.Validate() != nil {
		opts.Window = domain.DefaultWindow
	}
	o := &Orchestrator{
		reader:   reader,
		clock:    clk,
		notifier: notifier,
		logger:   logger,
		limit:    opts.FetchLimit,
		loc:      opts.Location,
		state:    StateIdle,
		window:   opts.Window,
	}
	o.view = domain.Recompute(o.snapshot, o.window, o.now())
	return o
}

// SetIdentity switches the orchestrator to userID and fetches its logs.
// Selecting the current user again only refetches when nothing usable is loaded.
func (o *Orchestrator) SetIdentity(ctx context.Context, userID string) (domain.View, error) {
	o.mu.Lock()
	if userID == o.userID && (o.state == StateReady || o.state == StateFetching) {
		view := o.view
		o.mu.Unlock()
		return view, nil
	}
	if userID != o.userID {
		o.userID = userID
		o.snapshot = domain.Snapshot{UserID: userID}
		o.view = domain.Recompute(o.snapshot, o.window, o.now())
		o.lastErr = nil
		o.state = StateIdle
		o.logger.Info("identity changed", "user", userID)
	}
	o.mu.Unlock()
	return o.Refresh(ctx)
}

// Refresh refetches all three categories for the current user. A failed read
// leaves the previous snapshot in place and moves to error-degraded.
func (o *Orchestrator) Refresh(ctx context.Context) (domain.View, error) {
	o.mu.Lock()
	if o.userID == "" {
		view := o.view
		o.mu.Unlock()
		return view, apperrors.ErrNoActiveUser
	}
	o.generation++
	gen, userID := o.generation, o.userID
	o.state = StateFetching
	o.mu.Unlock()

	o.logger.Debug("fetch started", "user", userID, "generation", gen)
	raw, err := o.fetch(ctx, userID)

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.generation || userID != o.userID {
		o.logger.Debug("fetch discarded", "user", userID, "generation", gen, "current_generation", o.generation)
		return o.view, apperrors.ErrStaleFetch
	}
	if err != nil {
		o.state = StateDegraded
		o.lastErr = err
		o.logger.Error("fetch failed", "user", userID, "generation", gen, "state", o.state, "error", err)
		o.notify("Could not load your logs", "Showing the last loaded data. Try refreshing later.")
		return o.view, err
	}

	now := o.now()
	snap, drops := domain.Normalize(raw, o.location())
	snap.UserID = userID
	snap.FetchedAt = now
	if drops.Total() > 0 {
		o.logger.Debug("malformed records dropped", "user", userID, "mood", drops.Mood, "sleep", drops.Sleep, "exercise", drops.Exercise)
	}
	o.snapshot = snap
	o.view = domain.Recompute(snap, o.window, now)
	o.state = StateReady
	o.lastErr = nil
	o.logger.Info("fetch applied", "user", userID, "generation", gen, "state", o.state,
		"mood", len(snap.Mood), "sleep", len(snap.Sleep), "exercise", len(snap.Exercise))
	return o.view, nil
}

// SetWindow re-derives the window-dependent parts from the cached snapshot. It never fetches.
func (o *Orchestrator) SetWindow(w domain.Window) (domain.View, error) {
	if err := w.Validate(); err != nil {
		return o.View(), err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.window = w
	o.view = domain.RecomputeWindowed(o.view, o.snapshot, w, o.now())
	return o.view, nil
}

func (o *Orchestrator) View() domain.View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) UserID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.userID
}

func (o *Orchestrator) Window() domain.Window {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.window
}

// LastError is the failure that moved the orchestrator to error-degraded, if any.
func (o *Orchestrator) LastError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

func (o *Orchestrator) fetch(ctx context.Context, userID string) (domain.RawSnapshot, error) {
	results := make([][]domain.RawDocument, len(domain.Categories))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchParallelism)
	for i, category := range domain.Categories {
		i, category := i, category
		g.Go(func() error {
			docs, err := o.reader.Fetch(gctx, category, userID, o.limit)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", category, err)
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if !errors.Is(err, apperrors.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
		return domain.RawSnapshot{}, err
	}
	return domain.RawSnapshot{Mood: results[0], Sleep: results[1], Exercise: results[2]}, nil
}

func (o *Orchestrator) notify(title, message string) {
	if o.notifier == nil {
		return
	}
	if err := o.notifier.Notify(title, message); err != nil {
		o.logger.Debug("notice delivery failed", "error", err)
	}
}

func (o *Orchestrator) now() time.Time {
	now := o.clock.Now()
	if o.loc != nil {
		return now.In(o.loc)
	}
	return now
}

func (o *Orchestrator) location() *time.Location {
	if o.loc != nil {
		return o.loc
	}
	return o.now().Location()
}
