// ABOUTME: Session owns the store handle, snapshot client, city overlay, and selection state
// ABOUTME: Its methods are the query façade, the only surface presentation layers call
package atlas

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/geoatlas/geoatlas/internal/config"
	"github.com/geoatlas/geoatlas/internal/models"
	"github.com/geoatlas/geoatlas/internal/overlay"
	"github.com/geoatlas/geoatlas/internal/seed"
	"github.com/geoatlas/geoatlas/internal/snapshot"
	"github.com/geoatlas/geoatlas/internal/storage/sqlite"
)

// Selection is the current drill-down position. It only ever narrows
// top-down: selecting a region clears every deeper level.
type Selection struct {
	RegionID    int64 `json:"region_id,omitempty"`
	SubregionID int64 `json:"subregion_id,omitempty"`
	CountryID   int64 `json:"country_id,omitempty"`
	StateID     int64 `json:"state_id,omitempty"`
}

// Navigation levels, ordered top-down.
const (
	levelRegion = iota
	levelSubregion
	levelCountry
	levelState
)

// Session is the explicit context object for one browsing session. Created at
// startup, torn down at Close or rebuilt by Reset; nothing about it is
// process-global.
type Session struct {
	ID string

	cfg     *config.Config
	log     *slog.Logger
	client  *snapshot.Client
	store   *sqlite.Store
	overlay *overlay.Overlay

	mu        sync.Mutex
	selection Selection
	gen       uint64
}

// New opens the persistent store and builds an empty overlay.
func New(cfg *config.Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := sqlite.OpenStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	client := snapshot.New(snapshot.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	})

	s := &Session{
		ID:      uuid.New().String(),
		cfg:     cfg,
		log:     logger,
		client:  client,
		store:   store,
		overlay: overlay.New(client, logger),
	}

	logger.Debug("session opened", "session", s.ID, "db", cfg.DBPath)
	return s, nil
}

// Close releases the store handle.
func (s *Session) Close() error {
	return s.store.Close()
}

// Seed runs the seeding engine against this session's store.
func (s *Session) Seed(ctx context.Context, hooks seed.Hooks) error {
	return seed.New(s.store, s.client, s.log).Run(ctx, hooks)
}

// ListRegions returns every region. It resets the selection to the top.
func (s *Session) ListRegions(ctx context.Context) ([]models.Region, error) {
	gen := s.nextGen()
	regions, err := s.store.Regions.List(ctx)
	if err != nil {
		return nil, err
	}
	s.commit(gen, func(sel *Selection) { *sel = Selection{} })
	return regions, nil
}

// ListSubregions drills into a region.
func (s *Session) ListSubregions(ctx context.Context, regionID int64) ([]models.Subregion, error) {
	gen := s.nextGen()
	subregions, err := s.store.Subregions.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	s.commit(gen, func(sel *Selection) {
		*sel = Selection{RegionID: regionID}
	})
	return subregions, nil
}

// ListCountries drills into a subregion.
func (s *Session) ListCountries(ctx context.Context, subregionID int64) ([]models.Country, error) {
	gen := s.nextGen()
	countries, err := s.store.Countries.ListBySubregion(ctx, subregionID)
	if err != nil {
		return nil, err
	}
	s.commit(gen, func(sel *Selection) {
		sel.SubregionID = subregionID
		sel.CountryID = 0
		sel.StateID = 0
	})
	return countries, nil
}

// ListStates drills into a country.
func (s *Session) ListStates(ctx context.Context, countryID int64) ([]models.State, error) {
	gen := s.nextGen()
	states, err := s.store.States.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	s.commit(gen, func(sel *Selection) {
		sel.CountryID = countryID
		sel.StateID = 0
	})
	return states, nil
}

// ListCities drills into a state. The country's ISO2 code keys the overlay;
// the first request per country fetches its city list from the network.
func (s *Session) ListCities(ctx context.Context, stateID int64, iso2 string) ([]models.City, error) {
	gen := s.nextGen()
	cities, err := s.overlay.CitiesFor(ctx, stateID, iso2)
	if err != nil {
		return nil, err
	}
	s.commit(gen, func(sel *Selection) { sel.StateID = stateID })
	return cities, nil
}

// GetDetail returns the single record of the given kind and id. Persistent
// collections use primary-key reads; cities scan the overlay.
func (s *Session) GetDetail(ctx context.Context, kind string, id int64) (any, error) {
	switch kind {
	case "region":
		return s.store.Regions.Get(ctx, id)
	case "subregion":
		return s.store.Subregions.Get(ctx, id)
	case "country":
		return s.store.Countries.Get(ctx, id)
	case "state":
		return s.store.States.Get(ctx, id)
	case "city":
		return s.overlay.FindCity(id)
	default:
		return nil, fmt.Errorf("unknown detail kind %q (want region, subregion, country, state, or city)", kind)
	}
}

// Selection returns the current drill-down position.
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Counts reports per-collection totals of the persistent store.
func (s *Session) Counts(ctx context.Context) (sqlite.CollectionCounts, error) {
	return s.store.Counts(ctx)
}

// StorePath returns the location of the persistent store.
func (s *Session) StorePath() string {
	return s.store.Path()
}

// Reset destroys the persistent store and reopens it empty at the current
// schema version. The overlay and selection state are discarded with it; the
// session is equivalent to a fresh one afterwards.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.store.Path()
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("%w: closing store for reset: %v", sqlite.ErrStoreUnavailable, err)
	}
	if err := sqlite.Delete(path); err != nil {
		return err
	}

	store, err := sqlite.OpenStore(path)
	if err != nil {
		return err
	}

	s.store = store
	s.overlay = overlay.New(s.client, s.log)
	s.selection = Selection{}
	s.gen++

	s.log.Info("store reset", "session", s.ID, "db", path)
	return nil
}

// nextGen starts a navigation and supersedes every in-flight one.
func (s *Session) nextGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// commit applies a selection change only if the navigation that produced it
// has not been superseded. The caller still receives its result either way;
// only the shared selection state is guarded.
func (s *Session) commit(gen uint64, apply func(*Selection)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.log.Debug("stale navigation result dropped", "gen", gen, "current", s.gen)
		return
	}
	apply(&s.selection)
}
