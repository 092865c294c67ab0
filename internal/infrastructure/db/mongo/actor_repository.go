package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// ActorRepository implements ports.ActorRepository on the actors collection.
type ActorRepository struct {
	coll *mongo.Collection
}

func NewActorRepository(db *mongo.Database) *ActorRepository {
	return &ActorRepository{coll: db.Collection(collectionActors)}
}

type actorDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Born        string             `bson:"born,omitempty"`
	Height      int                `bson:"height,omitempty"`
	Nationality string             `bson:"nationality,omitempty"`
	Photo       string             `bson:"photo,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty"`
}

func (d actorDoc) toDomain() *domain.Actor {
	return &domain.Actor{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Born:        d.Born,
		Height:      d.Height,
		Nationality: d.Nationality,
		Photo:       d.Photo,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ActorRepository) Insert(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := actorDoc{
		Name:        actor.Name,
		Born:        actor.Born,
		Height:      actor.Height,
		Nationality: actor.Nationality,
		Photo:       actor.Photo,
		CreatedAt:   actor.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert actor: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ActorRepository) FindByID(ctx context.Context, id string) (*domain.Actor, error) {
	oid, err := parseID(id, domain.ErrActorNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc actorDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActorRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Actor, error) {
	if len(ids) == 0 {
		return []domain.Actor{}, nil
	}

	// malformed ids cannot match any document; skip them so the caller
	// sees them as missing references
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find actors by ids: %w", err)
	}
	defer cur.Close(ctx)

	actors := make([]domain.Actor, 0, len(oids))
	for cur.Next(ctx) {
		var doc actorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode actor: %w", err)
		}
		actors = append(actors, *doc.toDomain())
	}
	return actors, cur.Err()
}

func (r *ActorRepository) List(ctx context.Context, keyword string) ([]domain.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, keywordFilter("name", keyword),
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	defer cur.Close(ctx)

	actors := make([]domain.Actor, 0)
	for cur.Next(ctx) {
		var doc actorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode actor: %w", err)
		}
		actors = append(actors, *doc.toDomain())
	}
	return actors, cur.Err()
}

func (r *ActorRepository) Update(ctx context.Context, id string, patch ports.ActorPatch) (*domain.Actor, error) {
	oid, err := parseID(id, domain.ErrActorNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Born != nil {
		set["born"] = *patch.Born
	}
	if patch.Height != nil {
		set["height"] = *patch.Height
	}
	if patch.Nationality != nil {
		set["nationality"] = *patch.Nationality
	}
	if patch.Photo != nil {
		set["photo"] = *patch.Photo
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc actorDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("update actor: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActorRepository) Delete(ctx context.Context, id string) (*domain.Actor, error) {
	oid, err := parseID(id, domain.ErrActorNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc actorDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("delete actor: %w", err)
	}
	return doc.toDomain(), nil
}
