package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/metrics"
	"github.com/beka-birhanu/vinom-planner/planner"
	"github.com/beka-birhanu/vinom-planner/service/i"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	ErrMissingDependency = errors.New("missing dependency")
)

// PlanningConfig wires a Planning service.
type PlanningConfig struct {
	Solver  planner.Solver
	Repo    i.PlanRepo
	Cache   i.PlanCache // optional
	Logger  i.Logger
	Horizon int
	Bounds  grid.BoundsMode
}

// Planning parses submitted maps, plans them and keeps the results.
// Identical maps are solved once; later requests reuse the cached result.
type Planning struct {
	solver  planner.Solver
	repo    i.PlanRepo
	cache   i.PlanCache
	logger  i.Logger
	horizon int
	bounds  grid.BoundsMode
}

// NewPlanning validates cfg and returns the service.
func NewPlanning(cfg PlanningConfig) (*Planning, error) {
	if cfg.Solver == nil || cfg.Repo == nil || cfg.Logger == nil {
		return nil, fmt.Errorf("%w: planning needs a solver, a repository and a logger", ErrMissingDependency)
	}
	return &Planning{
		solver:  cfg.Solver,
		repo:    cfg.Repo,
		cache:   cfg.Cache,
		logger:  cfg.Logger,
		horizon: cfg.Horizon,
		bounds:  cfg.Bounds,
	}, nil
}

// Plan solves mapText for owner and stores the result.
// A map with no route to the goal is not an error: the record has Found false.
func (p *Planning) Plan(ctx context.Context, owner uuid.UUID, mapText string) (*dmn.PlanRecord, error) {
	digest := p.digest(mapText)

	if cached := p.lookup(ctx, digest); cached != nil {
		return p.store(ctx, owner, cached)
	}

	if p.cache != nil {
		unlock, err := p.cache.Lock(ctx, digest)
		if err != nil {
			p.logger.Warning(fmt.Sprintf("Solving %s without lock: %v", shortDigest(digest), err))
		} else {
			defer unlock()
			// Another worker may have finished while we waited.
			if cached := p.lookup(ctx, digest); cached != nil {
				return p.store(ctx, owner, cached)
			}
		}
	}

	template, err := p.solve(ctx, digest, mapText)
	if err != nil {
		return nil, err
	}

	record, err := p.store(ctx, owner, template)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, digest, template); err != nil {
			p.logger.Warning(fmt.Sprintf("Caching plan %s: %v", shortDigest(digest), err))
		}
	}
	return record, nil
}

// ByID returns a stored record.
func (p *Planning) ByID(ctx context.Context, id uuid.UUID) (*dmn.PlanRecord, error) {
	return p.repo.ByID(ctx, id)
}

// History returns owner's newest records.
func (p *Planning) History(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.PlanRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	return p.repo.ByOwner(ctx, owner, limit)
}

func (p *Planning) solve(ctx context.Context, digest, mapText string) (*dmn.PlanRecord, error) {
	layout, err := grid.ParseString(mapText)
	if err != nil {
		metrics.PlanOutcomes.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}
	layout.Map = layout.Map.WithBounds(p.bounds)

	started := time.Now()
	outcome, err := planner.Run(ctx, p.solver, layout, p.horizon)
	metrics.SolveDuration.Observe(time.Since(started).Seconds())

	switch {
	case err == nil:
		metrics.PlanOutcomes.WithLabelValues(metrics.OutcomeFound).Inc()
	case errors.Is(err, planner.ErrPlanningFailure):
		metrics.PlanOutcomes.WithLabelValues(metrics.OutcomeNoPlan).Inc()
		p.logger.Info(fmt.Sprintf("No plan for %s: %v", shortDigest(digest), err))
	default:
		if errors.Is(err, planner.ErrInvalidTopology) {
			metrics.PlanOutcomes.WithLabelValues(metrics.OutcomeInvalid).Inc()
		}
		return nil, err
	}

	built := outcome.Build
	metrics.ModelsBuilt.Inc()
	metrics.ModelStates.Observe(float64(built.Model.Len()))
	p.logger.Info(fmt.Sprintf("Built %s: states=%d visited=%d start_found=%t found=%t",
		shortDigest(digest), built.Model.Len(), built.Visited, built.StartFound, outcome.Found))

	return &dmn.PlanRecord{
		Digest:     digest,
		Map:        mapText,
		Start:      layout.Start,
		Goal:       layout.Goal,
		Found:      outcome.Found,
		Path:       outcome.Path,
		States:     built.Model.Len(),
		StartFound: built.StartFound,
	}, nil
}

// store saves a copy of template as a new record owned by owner.
func (p *Planning) store(ctx context.Context, owner uuid.UUID, template *dmn.PlanRecord) (*dmn.PlanRecord, error) {
	record := *template
	record.ID = uuid.New()
	record.Owner = owner
	record.CreatedAt = time.Now().UTC()

	if err := p.repo.Save(ctx, &record); err != nil {
		p.logger.Error(fmt.Sprintf("Saving plan %s: %v", record.ID, err))
		return nil, err
	}
	return &record, nil
}

func (p *Planning) lookup(ctx context.Context, digest string) *dmn.PlanRecord {
	if p.cache == nil {
		return nil
	}
	record, ok, err := p.cache.Get(ctx, digest)
	if err != nil {
		p.logger.Warning(fmt.Sprintf("Reading plan cache %s: %v", shortDigest(digest), err))
		return nil
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	p.logger.Info(fmt.Sprintf("Plan cache hit %s", shortDigest(digest)))
	return record
}

// digest identifies a map under the service's planning settings.
func (p *Planning) digest(mapText string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s", p.bounds, p.horizon, mapText)))
	return hex.EncodeToString(sum[:])
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}

var _ i.Planner = (*Planning)(nil)
