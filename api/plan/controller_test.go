package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-planner/api/identity"
	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/infrastruture/token"
	"github.com/beka-birhanu/vinom-planner/mdp"
	"github.com/beka-birhanu/vinom-planner/planner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanner struct {
	records map[uuid.UUID]*dmn.PlanRecord
	planErr error
	limit   int64
}

func (f *fakePlanner) Plan(_ context.Context, owner uuid.UUID, mapText string) (*dmn.PlanRecord, error) {
	if f.planErr != nil {
		return nil, f.planErr
	}
	layout, err := grid.ParseString(mapText)
	if err != nil {
		return nil, err
	}
	record := &dmn.PlanRecord{
		ID:         uuid.New(),
		Owner:      owner,
		Map:        mapText,
		Start:      layout.Start,
		Goal:       layout.Goal,
		Found:      mapText == "@.",
		States:     2,
		StartFound: mapText == "@.",
		CreatedAt:  time.Now().UTC(),
	}
	if record.Found {
		record.Path = mdp.Path{Anchor: layout.Start, Directions: []mdp.Action{mdp.East}}
	}
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePlanner) ByID(_ context.Context, id uuid.UUID) (*dmn.PlanRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, dmn.ErrPlanNotFound
	}
	return record, nil
}

func (f *fakePlanner) History(_ context.Context, owner uuid.UUID, limit int64) ([]*dmn.PlanRecord, error) {
	f.limit = limit
	var out []*dmn.PlanRecord
	for _, r := range f.records {
		if r.Owner == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

type fixture struct {
	engine  *gin.Engine
	planner *fakePlanner
	owner   uuid.UUID
	bearer  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenizer := token.NewJwtService("test-secret", "vinom-planner")
	f := &fixture{planner: &fakePlanner{records: make(map[uuid.UUID]*dmn.PlanRecord)}, owner: uuid.New()}

	signed, err := tokenizer.Generate(map[string]interface{}{"userID": f.owner.String(), "username": "walker"}, time.Minute)
	require.NoError(t, err)
	f.bearer = "Bearer " + signed

	controller, err := NewPlanController(f.planner)
	require.NoError(t, err)

	f.engine = gin.New()
	protected := f.engine.Group("/v1")
	protected.Use(identity.Authorize(tokenizer))
	controller.RegisterProtected(protected)
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", f.bearer)

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func TestPlanEndpoint(t *testing.T) {
	f := newFixture(t)

	t.Run("found", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/v1/plans", PlanRequest{Map: "@."})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp PlanResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
		assert.Equal(t, []mdp.Action{mdp.East}, resp.Directions)
		assert.Equal(t, 1, resp.Steps)
		assert.True(t, resp.StartReachable)
		assert.Contains(t, rec.Body.String(), `"directions":["EAST"]`)
	})

	t.Run("no plan is still a success", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/v1/plans", PlanRequest{Map: "@#."})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"found":false`)
		assert.Contains(t, rec.Body.String(), `"directions":[]`)
	})

	t.Run("bad input", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/v1/plans", map[string]string{}).Code)
		assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/v1/plans", PlanRequest{Map: "@  "}).Code)
	})

	t.Run("invalid topology and internal errors", func(t *testing.T) {
		f.planner.planErr = fmt.Errorf("%w: start and goal coincide", planner.ErrInvalidTopology)
		assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/v1/plans", PlanRequest{Map: "@."}).Code)

		f.planner.planErr = fmt.Errorf("mongo down")
		assert.Equal(t, http.StatusInternalServerError, f.do(t, http.MethodPost, "/v1/plans", PlanRequest{Map: "@."}).Code)
		f.planner.planErr = nil
	})
}

func TestPlanByIDEndpoint(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/v1/plans", PlanRequest{Map: "@."})
	require.Equal(t, http.StatusOK, rec.Code)
	var created PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = f.do(t, http.MethodGet, "/v1/plans/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/v1/plans/"+uuid.NewString(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/v1/plans/not-a-uuid", nil).Code)

	foreign := uuid.New()
	f.planner.records[foreign] = &dmn.PlanRecord{ID: foreign, Owner: uuid.New()}
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/v1/plans/"+foreign.String(), nil).Code)
}

func TestHistoryEndpoint(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/v1/plans", PlanRequest{Map: "@."}).Code)
	}

	rec := f.do(t, http.MethodGet, "/v1/plans?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Len(t, history, 3)
	assert.Equal(t, int64(2), f.planner.limit)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/v1/plans?limit=lots", nil).Code)
}

func TestPlanEndpointsRequireToken(t *testing.T) {
	f := newFixture(t)

	for _, bearer := range []string{"", "Bearer nonsense", "Basic abc"} {
		f.bearer = bearer
		assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/v1/plans", nil).Code, bearer)
	}
}
