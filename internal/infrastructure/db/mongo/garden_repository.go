package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esas/tree-species-api/internal/core/domain"
)

const gardensCollection = "gardens"

type GardenRepository struct {
	coll *mongo.Collection
}

func NewGardenRepository(db *mongo.Database) *GardenRepository {
	return &GardenRepository{coll: db.Collection(gardensCollection)}
}

type mongoGarden struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Name           string               `bson:"name"`
	Location       domain.GeoPoint      `bson:"location"`
	Trees          []primitive.ObjectID `bson:"trees"`
	PanoramicImage string               `bson:"panoramicImage,omitempty"`
}

func (mg mongoGarden) toDomain() *domain.Garden {
	return &domain.Garden{
		ID:             mg.ID.Hex(),
		Name:           mg.Name,
		Location:       mg.Location,
		TreeIDs:        hexIDs(mg.Trees),
		PanoramicImage: mg.PanoramicImage,
	}
}

func (r *GardenRepository) List(ctx context.Context) ([]*domain.Garden, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list gardens: %w", err)
	}
	var docs []mongoGarden
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list gardens: decode: %w", err)
	}

	out := make([]*domain.Garden, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *GardenRepository) FindByID(ctx context.Context, id string) (*domain.Garden, error) {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mg mongoGarden
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		return nil, notFound(err, domain.ErrGardenNotFound, "find garden")
	}
	return mg.toDomain(), nil
}

func (r *GardenRepository) Create(ctx context.Context, g *domain.Garden) (*domain.Garden, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGarden{
		ID:             primitive.NewObjectID(),
		Name:           g.Name,
		Location:       g.Location,
		Trees:          parseIDs(g.TreeIDs),
		PanoramicImage: g.PanoramicImage,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert garden: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GardenRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete garden: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGardenNotFound
	}
	return nil
}

// EnsureIndexes creates the geospatial index used for location queries.
func (r *GardenRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	return err
}
