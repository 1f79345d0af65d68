package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esas/tree-species-api/internal/core/domain"
)

const videosCollection = "videos"

type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{coll: db.Collection(videosCollection)}
}

type mongoVideo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	URL         string             `bson:"url"`
	Description string             `bson:"description,omitempty"`
	SpeciesID   string             `bson:"speciesId,omitempty"`
}

func (mv mongoVideo) toDomain() *domain.Video {
	return &domain.Video{
		ID:          mv.ID.Hex(),
		Title:       mv.Title,
		URL:         mv.URL,
		Description: mv.Description,
		SpeciesID:   mv.SpeciesID,
	}
}

func (r *VideoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	var docs []mongoVideo
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list videos: decode: %w", err)
	}

	out := make([]*domain.Video, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoVideo{
		ID:          primitive.NewObjectID(),
		Title:       v.Title,
		URL:         v.URL,
		Description: v.Description,
		SpeciesID:   v.SpeciesID,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VideoRepository) Replace(ctx context.Context, id string, v *domain.Video) (*domain.Video, error) {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       v.Title,
		"url":         v.URL,
		"description": v.Description,
		"speciesId":   v.SpeciesID,
	}}

	var mv mongoVideo
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, returnAfter()).Decode(&mv); err != nil {
		return nil, notFound(err, domain.ErrVideoNotFound, "update video")
	}
	return mv.toDomain(), nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}
