package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// PlanRepo stores planning results.
type PlanRepo interface {
	Save(ctx context.Context, record *dmn.PlanRecord) error
	ByID(ctx context.Context, id uuid.UUID) (*dmn.PlanRecord, error)
	// ByOwner returns the newest records of owner first, at most limit of them.
	ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.PlanRecord, error)
}
