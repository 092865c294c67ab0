package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// ActivityRepository implements ports.ActivityRepository on the activities
// collection.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(collectionActivities)}
}

type activityDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ActorID     string             `bson:"actor_id"`
	Action      string             `bson:"action"`
	SubjectType string             `bson:"subject_type"`
	SubjectID   string             `bson:"subject_id"`
	At          time.Time          `bson:"at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		ActorID:     activity.ActorID,
		Action:      activity.Action,
		SubjectType: activity.SubjectType,
		SubjectID:   activity.SubjectID,
		At:          activity.At.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]domain.Activity, 0, limit)
	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, domain.Activity{
			ID:          doc.ID.Hex(),
			ActorID:     doc.ActorID,
			Action:      doc.Action,
			SubjectType: doc.SubjectType,
			SubjectID:   doc.SubjectID,
			At:          doc.At,
		})
	}
	return entries, cur.Err()
}
