// ABOUTME: Tests for collection stores (insert, count, index reads, key reads)
// ABOUTME: Covers batch atomicity, duplicate keys, and referential filters
package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/geoatlas/geoatlas/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStoreInMemory()
	if err != nil {
		t.Fatalf("OpenStoreInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRegionInsertAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Regions.Insert(ctx, []models.Region{{ID: 1, Name: "Asia"}}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	regions, err := store.Regions.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(regions) != 1 || regions[0].ID != 1 || regions[0].Name != "Asia" {
		t.Errorf("List() = %+v, want exactly [{1 Asia}]", regions)
	}
}

func TestRegionInsertDuplicateKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Regions.Insert(ctx, []models.Region{{ID: 1, Name: "Asia"}}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	err := store.Regions.Insert(ctx, []models.Region{{ID: 1, Name: "Asia again"}})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Insert() duplicate error = %v, want ErrDuplicateKey", err)
	}
}

func TestRegionInsertIsAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Regions.Insert(ctx, []models.Region{{ID: 2, Name: "Europe"}}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// Second record collides; the whole batch must roll back.
	err := store.Regions.Insert(ctx, []models.Region{
		{ID: 3, Name: "Africa"},
		{ID: 2, Name: "Europe again"},
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Insert() error = %v, want ErrDuplicateKey", err)
	}

	n, err := store.Regions.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() after failed batch = %d, want 1 (batch rolled back)", n)
	}
}

func TestSubregionListByRegion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	subregions := []models.Subregion{
		{ID: 10, Name: "Southern Asia", RegionID: 1},
		{ID: 11, Name: "Eastern Asia", RegionID: 1},
	}
	if err := store.Subregions.Insert(ctx, subregions); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := store.Subregions.ListByRegion(ctx, 1)
	if err != nil {
		t.Fatalf("ListByRegion(1) error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListByRegion(1) returned %d records, want 2", len(got))
	}
	for _, sr := range got {
		if sr.RegionID != 1 {
			t.Errorf("ListByRegion(1) returned subregion with RegionID %d", sr.RegionID)
		}
	}

	empty, err := store.Subregions.ListByRegion(ctx, 2)
	if err != nil {
		t.Fatalf("ListByRegion(2) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListByRegion(2) returned %d records, want 0", len(empty))
	}
}

func TestCountryListBySubregion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	countries := []models.Country{
		{ID: 101, Name: "India", ISO2: "IN", SubregionID: 10, Emoji: "🇮🇳"},
		{ID: 102, Name: "Pakistan", ISO2: "PK", SubregionID: 10, Emoji: "🇵🇰"},
		{ID: 103, Name: "Japan", ISO2: "JP", SubregionID: 11, Emoji: "🇯🇵"},
	}
	if err := store.Countries.Insert(ctx, countries); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := store.Countries.ListBySubregion(ctx, 10)
	if err != nil {
		t.Fatalf("ListBySubregion(10) error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListBySubregion(10) returned %d records, want 2", len(got))
	}
}

func TestStateListByCountry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	states := []models.State{
		{ID: 100, Name: "Maharashtra", StateCode: "MH", CountryID: 101, CountryCode: "IN"},
		{ID: 200, Name: "Karnataka", StateCode: "KA", CountryID: 101, CountryCode: "IN"},
		{ID: 300, Name: "Tokyo", StateCode: "13", CountryID: 103, CountryCode: "JP"},
	}
	if err := store.States.Insert(ctx, states); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := store.States.ListByCountry(ctx, 101)
	if err != nil {
		t.Fatalf("ListByCountry(101) error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListByCountry(101) returned %d records, want 2", len(got))
	}
}

func TestGetByPrimaryKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Countries.Insert(ctx, []models.Country{
		{ID: 101, Name: "India", ISO2: "IN", SubregionID: 10, Emoji: "🇮🇳"},
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	country, err := store.Countries.Get(ctx, 101)
	if err != nil {
		t.Fatalf("Get(101) error = %v", err)
	}
	if country.ISO2 != "IN" || country.Emoji != "🇮🇳" {
		t.Errorf("Get(101) = %+v", country)
	}

	_, err = store.Countries.Get(ctx, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(999) error = %v, want ErrNotFound", err)
	}
}

func TestCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Regions.Insert(ctx, []models.Region{{ID: 1, Name: "Asia"}}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := store.Subregions.Insert(ctx, []models.Subregion{
		{ID: 10, Name: "Southern Asia", RegionID: 1},
		{ID: 11, Name: "Eastern Asia", RegionID: 1},
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	want := CollectionCounts{Regions: 1, Subregions: 2}
	if counts != want {
		t.Errorf("Counts() = %+v, want %+v", counts, want)
	}
}
