package service

import (
	"context"
	"errors"
	"testing"

	"github.com/esas/tree-species-api/internal/core/domain"
)

func TestGardenService_Get_PopulatesTrees(t *testing.T) {
	species := seededSpecies(2)
	gardens := &stubGardenRepo{byID: map[string]*domain.Garden{
		"g-1": {ID: "g-1", Name: "Jardim Botânico", TreeIDs: []string{"sp-2", "sp-unknown"}, PanoramicImage: "https://img/pano.jpg"},
	}}
	svc := NewGardenService(gardens, species, nil, discardLogger)

	detail, err := svc.GetGarden(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Trees) != 1 || detail.Trees[0].ID != "sp-2" {
		t.Fatalf("expected only the existing tree to be resolved, got %+v", detail.Trees)
	}
	if detail.PanoramicImage != "https://img/pano.jpg" {
		t.Fatalf("panoramic image not carried over")
	}
}

func TestGardenService_Get_NoTreesIsEmptySlice(t *testing.T) {
	gardens := &stubGardenRepo{byID: map[string]*domain.Garden{"g-1": {ID: "g-1"}}}
	svc := NewGardenService(gardens, seededSpecies(0), nil, discardLogger)

	detail, err := svc.GetGarden(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Trees == nil {
		t.Fatal("trees must encode as [] rather than null")
	}
}

func TestGardenService_Get_NotFound(t *testing.T) {
	svc := NewGardenService(&stubGardenRepo{byID: map[string]*domain.Garden{}}, seededSpecies(0), nil, discardLogger)

	if _, err := svc.GetGarden(context.Background(), "nope"); !errors.Is(err, domain.ErrGardenNotFound) {
		t.Fatalf("expected ErrGardenNotFound, got %v", err)
	}
	if _, err := svc.PanoramicImage(context.Background(), "nope"); !errors.Is(err, domain.ErrGardenNotFound) {
		t.Fatalf("expected ErrGardenNotFound, got %v", err)
	}
}

func TestGardenService_Create_BuildsGeoPoint(t *testing.T) {
	gardens := &stubGardenRepo{byID: map[string]*domain.Garden{}}
	cache := newMemCache()
	svc := NewGardenService(gardens, seededSpecies(0), cache, discardLogger)

	g, err := svc.CreateGarden(context.Background(), "Tapada", -9.18, 38.71)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Location.Type != "Point" || g.Location.Coordinates[0] != -9.18 || g.Location.Coordinates[1] != 38.71 {
		t.Fatalf("expected [lng, lat] point, got %+v", g.Location)
	}
	if cache.generations[gardensNamespace] != 1 {
		t.Fatal("create must invalidate the garden list cache")
	}
}

func TestGardenService_List_Cached(t *testing.T) {
	gardens := &stubGardenRepo{byID: map[string]*domain.Garden{"g-1": {ID: "g-1", Name: "Tapada"}}}
	cache := newMemCache()
	svc := NewGardenService(gardens, seededSpecies(0), cache, discardLogger)

	_, _ = svc.ListGardens(context.Background())
	list, err := svc.ListGardens(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.hits != 1 || len(list) != 1 || list[0].Name != "Tapada" {
		t.Fatalf("expected cached list, hits=%d list=%+v", cache.hits, list)
	}
}
