package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

// speciesCollection is the collection name mongoose derived for TreeSpecies.
const speciesCollection = "treespecies"

type SpeciesRepository struct {
	coll *mongo.Collection
}

func NewSpeciesRepository(db *mongo.Database) *SpeciesRepository {
	return &SpeciesRepository{coll: db.Collection(speciesCollection)}
}

type mongoSpecies struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CommonName     string             `bson:"commonName"`
	ScientificName string             `bson:"scientificName"`
	Family         string             `bson:"family,omitempty"`
	Origin         string             `bson:"origin,omitempty"`
	Description    string             `bson:"description,omitempty"`
	ImageURL       string             `bson:"imageUrl,omitempty"`
}

func (ms mongoSpecies) toDomain() *domain.Species {
	return &domain.Species{
		ID:             ms.ID.Hex(),
		CommonName:     ms.CommonName,
		ScientificName: ms.ScientificName,
		Family:         ms.Family,
		Origin:         ms.Origin,
		Description:    ms.Description,
		ImageURL:       ms.ImageURL,
	}
}

func (r *SpeciesRepository) List(ctx context.Context, page ports.SpeciesPage) ([]*domain.Species, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "commonName", Value: 1}})
	if page.Limit > 0 {
		opts.SetSkip(int64((page.Page - 1) * page.Limit)).SetLimit(int64(page.Limit))
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count species: %w", err)
	}

	items, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SpeciesRepository) FindByID(ctx context.Context, id string) (*domain.Species, error) {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSpecies
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		return nil, notFound(err, domain.ErrSpeciesNotFound, "find species")
	}
	return ms.toDomain(), nil
}

func (r *SpeciesRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Species, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []*domain.Species{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
}

func (r *SpeciesRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Species, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find species: %w", err)
	}
	var docs []mongoSpecies
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find species: decode: %w", err)
	}

	out := make([]*domain.Species, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *SpeciesRepository) Create(ctx context.Context, s *domain.Species) (*domain.Species, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSpecies{
		ID:             primitive.NewObjectID(),
		CommonName:     s.CommonName,
		ScientificName: s.ScientificName,
		Family:         s.Family,
		Origin:         s.Origin,
		Description:    s.Description,
		ImageURL:       s.ImageURL,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert species: %w", err)
	}
	return doc.toDomain(), nil
}

// Update applies only the fields set in patch.
func (r *SpeciesRepository) Update(ctx context.Context, id string, patch domain.SpeciesPatch) (*domain.Species, error) {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for field, v := range map[string]*string{
		"commonName":     patch.CommonName,
		"scientificName": patch.ScientificName,
		"family":         patch.Family,
		"origin":         patch.Origin,
		"description":    patch.Description,
		"imageUrl":       patch.ImageURL,
	} {
		if v != nil {
			set[field] = *v
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSpecies
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, returnAfter()).Decode(&ms)
	if err != nil {
		return nil, notFound(err, domain.ErrSpeciesNotFound, "update species")
	}
	return ms.toDomain(), nil
}

func (r *SpeciesRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, domain.ErrInvalidID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete species: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSpeciesNotFound
	}
	return nil
}
