package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
	"github.com/beka-birhanu/vinom-planner/planner"
	"github.com/google/uuid"
)

var errUserNotFound = errors.New("user not found")

type memoryLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *memoryLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *memoryLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *memoryLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type memoryPlanRepo struct {
	records map[uuid.UUID]*dmn.PlanRecord
	saveErr error
}

func newMemoryPlanRepo() *memoryPlanRepo {
	return &memoryPlanRepo{records: make(map[uuid.UUID]*dmn.PlanRecord)}
}

func (r *memoryPlanRepo) Save(_ context.Context, record *dmn.PlanRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *memoryPlanRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.PlanRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrPlanNotFound
	}
	return record, nil
}

func (r *memoryPlanRepo) ByOwner(_ context.Context, owner uuid.UUID, limit int64) ([]*dmn.PlanRecord, error) {
	var out []*dmn.PlanRecord
	for _, record := range r.records {
		if record.Owner == owner {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memoryPlanCache struct {
	records map[string]*dmn.PlanRecord
	getErr  error
	putErr  error
	lockErr error
	locks   int
	unlocks int
}

func newMemoryPlanCache() *memoryPlanCache {
	return &memoryPlanCache{records: make(map[string]*dmn.PlanRecord)}
}

func (c *memoryPlanCache) Get(_ context.Context, digest string) (*dmn.PlanRecord, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	record, ok := c.records[digest]
	return record, ok, nil
}

func (c *memoryPlanCache) Put(_ context.Context, digest string, record *dmn.PlanRecord) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.records[digest] = record
	return nil
}

func (c *memoryPlanCache) Lock(_ context.Context, _ string) (func(), error) {
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() { c.unlocks++ }, nil
}

// countingSolver wraps a solver and counts Resolve calls.
type countingSolver struct {
	inner planner.Solver
	calls int
}

func (s *countingSolver) Resolve(ctx context.Context, m *mdp.Model, start, goal *grid.State, horizon int) (mdp.Plan, error) {
	s.calls++
	return s.inner.Resolve(ctx, m, start, goal, horizon)
}

type memoryUserRepo struct {
	byName map[string]*dmn.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byName: make(map[string]*dmn.User)}
}

func (r *memoryUserRepo) Save(user *dmn.User) error {
	r.byName[user.Username] = user
	return nil
}

func (r *memoryUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errUserNotFound
}

func (r *memoryUserRepo) ByUsername(username string) (*dmn.User, error) {
	u, ok := r.byName[username]
	if !ok {
		return nil, errUserNotFound
	}
	return u, nil
}
