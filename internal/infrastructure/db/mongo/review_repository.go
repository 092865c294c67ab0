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

// ReviewRepository implements ports.ReviewRepository on the reviews
// collection. List reads join the reviewer's public fields from the users
// collection.
type ReviewRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		coll:  db.Collection(collectionReviews),
		users: db.Collection(collectionUsers),
	}
}

type reviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FilmID    string             `bson:"film_id"`
	UserID    string             `bson:"user_id"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

func (d reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:        d.ID.Hex(),
		FilmID:    d.FilmID,
		UserID:    d.UserID,
		Rating:    d.Rating,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := reviewDoc{
		FilmID:    review.FilmID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrReviewExists
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, err := parseID(id, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reviewDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReviewRepository) ListByFilm(ctx context.Context, filmID string) ([]ports.ReviewWithUser, error) {
	return r.list(ctx, bson.M{"film_id": filmID})
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]ports.ReviewWithUser, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ReviewRepository) list(ctx context.Context, filter bson.M) ([]ports.ReviewWithUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	docs := make([]reviewDoc, 0)
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	reviewers, err := r.resolveReviewers(ctx, docs)
	if err != nil {
		return nil, err
	}

	out := make([]ports.ReviewWithUser, len(docs))
	for i, doc := range docs {
		out[i] = ports.ReviewWithUser{
			Review: *doc.toDomain(),
			User:   reviewers[doc.UserID],
		}
	}
	return out, nil
}

// resolveReviewers fetches the public fields of every distinct reviewer in
// one query. Reviews whose author was deleted keep their user_id but get an
// empty username.
func (r *ReviewRepository) resolveReviewers(ctx context.Context, docs []reviewDoc) (map[string]domain.Reviewer, error) {
	oids := make([]primitive.ObjectID, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if _, ok := seen[doc.UserID]; ok {
			continue
		}
		seen[doc.UserID] = struct{}{}
		if oid, err := primitive.ObjectIDFromHex(doc.UserID); err == nil {
			oids = append(oids, oid)
		}
	}

	reviewers := make(map[string]domain.Reviewer, len(oids))
	for _, doc := range docs {
		reviewers[doc.UserID] = domain.Reviewer{ID: doc.UserID}
	}
	if len(oids) == 0 {
		return reviewers, nil
	}

	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": oids}},
		options.Find().SetProjection(bson.M{"username": 1}))
	if err != nil {
		return nil, fmt.Errorf("resolve reviewers: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u struct {
			ID       primitive.ObjectID `bson:"_id"`
			Username string             `bson:"username"`
		}
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("decode reviewer: %w", err)
		}
		reviewers[u.ID.Hex()] = domain.Reviewer{ID: u.ID.Hex(), Username: u.Username}
	}
	return reviewers, cur.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, id string, patch ports.ReviewPatch) (*domain.Review, error) {
	oid, err := parseID(id, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Rating != nil {
		set["rating"] = *patch.Rating
	}
	if patch.Comment != nil {
		set["comment"] = *patch.Comment
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc reviewDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (*domain.Review, error) {
	oid, err := parseID(id, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reviewDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("delete review: %w", err)
	}
	return doc.toDomain(), nil
}
