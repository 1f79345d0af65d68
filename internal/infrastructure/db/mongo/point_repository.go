package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esas/tree-species-api/internal/core/domain"
)

// pointsCollection is the collection name mongoose derived for PointOfInterest.
const pointsCollection = "pointofinterests"

type PointRepository struct {
	coll *mongo.Collection
}

func NewPointRepository(db *mongo.Database) *PointRepository {
	return &PointRepository{coll: db.Collection(pointsCollection)}
}

type mongoPoint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Location    domain.GeoPoint    `bson:"location"`
	GardenID    string             `bson:"gardenId,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty"`
}

func (mp mongoPoint) toDomain() *domain.PointOfInterest {
	return &domain.PointOfInterest{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Description: mp.Description,
		Location:    mp.Location,
		GardenID:    mp.GardenID,
		ImageURL:    mp.ImageURL,
	}
}

func (r *PointRepository) List(ctx context.Context) ([]*domain.PointOfInterest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}
	var docs []mongoPoint
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list points: decode: %w", err)
	}

	out := make([]*domain.PointOfInterest, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *PointRepository) FindByID(ctx context.Context, id string) (*domain.PointOfInterest, error) {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPoint
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		return nil, notFound(err, domain.ErrPointNotFound, "find point")
	}
	return mp.toDomain(), nil
}

func (r *PointRepository) Create(ctx context.Context, p *domain.PointOfInterest) (*domain.PointOfInterest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPoint{
		ID:          primitive.NewObjectID(),
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		GardenID:    p.GardenID,
		ImageURL:    p.ImageURL,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert point: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PointRepository) Replace(ctx context.Context, id string, p *domain.PointOfInterest) (*domain.PointOfInterest, error) {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"location":    p.Location,
		"gardenId":    p.GardenID,
		"imageUrl":    p.ImageURL,
	}}

	var mp mongoPoint
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, returnAfter()).Decode(&mp); err != nil {
		return nil, notFound(err, domain.ErrPointNotFound, "update point")
	}
	return mp.toDomain(), nil
}

func (r *PointRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete point: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPointNotFound
	}
	return nil
}
