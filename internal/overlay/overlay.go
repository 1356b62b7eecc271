// ABOUTME: Session-scoped in-memory city cache keyed by ISO2 country code
// ABOUTME: Trades a per-country fetch for not persisting ~150k city records
package overlay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/geoatlas/geoatlas/internal/models"
	"github.com/geoatlas/geoatlas/internal/snapshot"
)

// ErrNotFound means no cached country holds a city with the requested id.
var ErrNotFound = errors.New("city not found")

// CityFetcher is the slice of the snapshot client the overlay needs.
type CityFetcher interface {
	FetchCities(ctx context.Context, iso2 string) ([]byte, error)
}

// Overlay caches each country's full city list in memory for the lifetime of
// the session. Entries never expire and are never evicted; a session restart
// is the only teardown. It never writes to the persistent store.
type Overlay struct {
	cache   *gocache.Cache
	fetcher CityFetcher
	log     *slog.Logger
}

// New creates an empty overlay.
func New(fetcher CityFetcher, logger *slog.Logger) *Overlay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Overlay{
		cache:   gocache.New(gocache.NoExpiration, 0),
		fetcher: fetcher,
		log:     logger,
	}
}

// CitiesFor returns the cities of stateID within the given country. The first
// request for a country fetches and caches its full city list; a failed fetch
// leaves the key absent so the next call retries. Two concurrent first
// requests may both fetch; both store the same value.
func (o *Overlay) CitiesFor(ctx context.Context, stateID int64, iso2 string) ([]models.City, error) {
	code := strings.ToUpper(iso2)

	if v, ok := o.cache.Get(code); ok {
		return filterByState(v.([]models.City), stateID), nil
	}

	body, err := o.fetcher.FetchCities(ctx, code)
	if err != nil {
		return nil, err
	}
	cities, err := models.DecodeCities(body)
	if err != nil {
		return nil, fmt.Errorf("%w: cities/%s: %v", snapshot.ErrFetchFailed, code, err)
	}

	o.cache.Set(code, cities, gocache.NoExpiration)
	o.log.Debug("city list cached", "country", code, "cities", len(cities))

	return filterByState(cities, stateID), nil
}

// FindCity scans every cached country's list for the given id. Linear in the
// total number of cached cities; detail-lookup path only.
func (o *Overlay) FindCity(id int64) (*models.City, error) {
	for _, item := range o.cache.Items() {
		for _, city := range item.Object.([]models.City) {
			if city.ID == id {
				return &city, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: city %d (only cities of previously browsed countries are searchable)", ErrNotFound, id)
}

func filterByState(cities []models.City, stateID int64) []models.City {
	matched := []models.City{}
	for _, c := range cities {
		if c.StateID == stateID {
			matched = append(matched, c)
		}
	}
	return matched
}
