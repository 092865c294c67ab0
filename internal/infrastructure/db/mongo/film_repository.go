package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// FilmRepository implements ports.FilmRepository on the films collection.
type FilmRepository struct {
	coll *mongo.Collection
}

func NewFilmRepository(db *mongo.Database) *FilmRepository {
	return &FilmRepository{coll: db.Collection(collectionFilms)}
}

type filmDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Year      string             `bson:"year"`
	Director  string             `bson:"director"`
	Genre     string             `bson:"genre"`
	ActorIDs  []string           `bson:"actor_ids,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

func (d filmDoc) toDomain() *domain.Film {
	return &domain.Film{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Year:      d.Year,
		Director:  d.Director,
		Genre:     d.Genre,
		ActorIDs:  d.ActorIDs,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// keywordFilter builds a case-insensitive substring match on field. The
// keyword is quoted so regex metacharacters in user input match literally.
func keywordFilter(field, keyword string) bson.M {
	if keyword == "" {
		return bson.M{}
	}
	return bson.M{field: bson.M{
		"$regex":   regexp.QuoteMeta(keyword),
		"$options": "i",
	}}
}

func (r *FilmRepository) Insert(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := filmDoc{
		Title:     film.Title,
		Year:      film.Year,
		Director:  film.Director,
		Genre:     film.Genre,
		ActorIDs:  film.ActorIDs,
		CreatedAt: film.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrFilmExists
		}
		return nil, fmt.Errorf("insert film: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FilmRepository) FindByID(ctx context.Context, id string) (*domain.Film, error) {
	oid, err := parseID(id, domain.ErrFilmNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc filmDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFilmNotFound
		}
		return nil, fmt.Errorf("find film: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FilmRepository) List(ctx context.Context, keyword string) ([]domain.Film, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, keywordFilter("title", keyword),
		options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	defer cur.Close(ctx)

	films := make([]domain.Film, 0)
	for cur.Next(ctx) {
		var doc filmDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode film: %w", err)
		}
		films = append(films, *doc.toDomain())
	}
	return films, cur.Err()
}

func (r *FilmRepository) Update(ctx context.Context, id string, patch ports.FilmPatch) (*domain.Film, error) {
	oid, err := parseID(id, domain.ErrFilmNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}
	if patch.Director != nil {
		set["director"] = *patch.Director
	}
	if patch.Genre != nil {
		set["genre"] = *patch.Genre
	}
	if patch.ActorIDs != nil {
		// replaces the whole cast set
		set["actor_ids"] = *patch.ActorIDs
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc filmDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFilmNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrFilmExists
		}
		return nil, fmt.Errorf("update film: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FilmRepository) Delete(ctx context.Context, id string) (*domain.Film, error) {
	oid, err := parseID(id, domain.ErrFilmNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc filmDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFilmNotFound
		}
		return nil, fmt.Errorf("delete film: %w", err)
	}
	return doc.toDomain(), nil
}
