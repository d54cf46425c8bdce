package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/google/uuid"
)

// Planner plans maps on behalf of users.
type Planner interface {
	Plan(ctx context.Context, owner uuid.UUID, mapText string) (*dmn.PlanRecord, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.PlanRecord, error)
	History(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.PlanRecord, error)
}
