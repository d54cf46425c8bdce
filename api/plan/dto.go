// Package planapi exposes map planning over HTTP.
package planapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
)

// PlanRequest carries a map in the text format.
type PlanRequest struct {
	Map string `json:"map" binding:"required"`
}

// PlanResponse describes one planning result.
type PlanResponse struct {
	ID             string          `json:"id"`
	Found          bool            `json:"found"`
	Start          grid.Coordinate `json:"start"`
	Goal           grid.Coordinate `json:"goal"`
	Anchor         grid.Coordinate `json:"anchor"`
	Directions     []mdp.Action    `json:"directions"`
	Steps          int             `json:"steps"`
	States         int             `json:"states"`
	StartReachable bool            `json:"start_reachable"`
	CreatedAt      time.Time       `json:"created_at"`
}

func newPlanResponse(r *dmn.PlanRecord) *PlanResponse {
	directions := r.Path.Directions
	if directions == nil {
		directions = []mdp.Action{}
	}
	return &PlanResponse{
		ID:             r.ID.String(),
		Found:          r.Found,
		Start:          r.Start,
		Goal:           r.Goal,
		Anchor:         r.Path.Anchor,
		Directions:     directions,
		Steps:          len(directions),
		States:         r.States,
		StartReachable: r.StartFound,
		CreatedAt:      r.CreatedAt,
	}
}
