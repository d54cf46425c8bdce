package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
	"github.com/google/uuid"
)

// ErrPlanNotFound is returned by repositories for unknown plan IDs.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRecord is the stored result of one planning request.
type PlanRecord struct {
	ID         uuid.UUID       `bson:"_id" json:"id"`
	Owner      uuid.UUID       `bson:"owner" json:"owner"`
	Digest     string          `bson:"digest" json:"digest"`
	Map        string          `bson:"map" json:"map"`
	Start      grid.Coordinate `bson:"start" json:"start"`
	Goal       grid.Coordinate `bson:"goal" json:"goal"`
	Found      bool            `bson:"found" json:"found"`
	Path       mdp.Path        `bson:"path" json:"path"`
	States     int             `bson:"states" json:"states"`
	StartFound bool            `bson:"startFound" json:"start_reachable"`
	CreatedAt  time.Time       `bson:"createdAt" json:"created_at"`
}
