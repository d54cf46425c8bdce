package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
)

// PlanCache keeps recent planning results keyed by map digest.
type PlanCache interface {
	// Get returns the cached record for digest, or false on a miss.
	Get(ctx context.Context, digest string) (*dmn.PlanRecord, bool, error)
	Put(ctx context.Context, digest string, record *dmn.PlanRecord) error
	// Lock serialises work on digest across processes. The returned
	// function releases the lock.
	Lock(ctx context.Context, digest string) (func(), error)
}
