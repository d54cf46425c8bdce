package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlanRepo persists plan records.
type PlanRepo struct {
	collection *mongo.Collection
}

// NewPlanRepo creates a PlanRepo on the given database and collection.
func NewPlanRepo(client *mongo.Client, dbName, collectionName string) *PlanRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &PlanRepo{
		collection: collection,
	}
}

// Save inserts or replaces a plan record.
func (p *PlanRepo) Save(ctx context.Context, record *dmn.PlanRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := p.collection.ReplaceOne(ctx, filter, record, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a plan record by its ID.
func (p *PlanRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.PlanRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var record dmn.PlanRecord
	if err := p.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrPlanNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}

// ByOwner returns the newest records of owner.
func (p *PlanRepo) ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.PlanRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := p.collection.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	records := make([]*dmn.PlanRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
