// ABOUTME: Seeding engine that populates the persistent collections exactly once
// ABOUTME: Seeds in parent-before-child order with per-collection atomicity
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/geoatlas/geoatlas/internal/models"
	"github.com/geoatlas/geoatlas/internal/storage/sqlite"
)

// ApproxCityCount is the documented size of the full city dataset. Cities are
// never materialized locally, so completion reports carry this constant
// instead of an exact count.
const ApproxCityCount = 150000

// Fetcher is the slice of the snapshot client the seeder needs.
type Fetcher interface {
	FetchCollection(ctx context.Context, name string) ([]byte, error)
}

// Hooks are the presentation-layer callbacks invoked during a seeding run.
// Any nil hook is skipped.
type Hooks struct {
	// Progress fires after each collection settles, fetched or already
	// present, with the fraction of collections completed.
	Progress func(fraction float64, collection string)

	// RegionsReady fires as soon as the regions step completes, before later
	// collections seed. Regions are the first user-visible content.
	RegionsReady func(regions []models.Region)

	// Done fires once with the final per-collection counts.
	Done func(report Report)
}

// Report is the completion summary of a seeding run.
type Report struct {
	sqlite.CollectionCounts
	// CitiesApprox is always ApproxCityCount; the city dataset lives upstream.
	CitiesApprox int64 `json:"cities_approx"`
}

// Seeder populates the four persistent collections from the snapshot source.
type Seeder struct {
	store   *sqlite.Store
	fetcher Fetcher
	log     *slog.Logger
}

// New creates a Seeder.
func New(store *sqlite.Store, fetcher Fetcher, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{store: store, fetcher: fetcher, log: logger}
}

type step struct {
	name  string
	count func(context.Context) (int64, error)
	load  func(context.Context, []byte) error
}

// Run seeds every empty collection in order (regions, subregions, countries,
// states). Non-empty collections skip the network entirely. A failure aborts
// the remaining steps and names the failing collection; earlier collections
// stay seeded.
func (s *Seeder) Run(ctx context.Context, hooks Hooks) error {
	steps := []step{
		{
			name:  "regions",
			count: s.store.Regions.Count,
			load: func(ctx context.Context, body []byte) error {
				regions, err := models.DecodeRegions(body)
				if err != nil {
					return err
				}
				return s.store.Regions.Insert(ctx, regions)
			},
		},
		{
			name:  "subregions",
			count: s.store.Subregions.Count,
			load: func(ctx context.Context, body []byte) error {
				subregions, err := models.DecodeSubregions(body)
				if err != nil {
					return err
				}
				return s.store.Subregions.Insert(ctx, subregions)
			},
		},
		{
			name:  "countries",
			count: s.store.Countries.Count,
			load: func(ctx context.Context, body []byte) error {
				countries, err := models.DecodeCountries(body)
				if err != nil {
					return err
				}
				return s.store.Countries.Insert(ctx, countries)
			},
		},
		{
			name:  "states",
			count: s.store.States.Count,
			load: func(ctx context.Context, body []byte) error {
				states, err := models.DecodeStates(body)
				if err != nil {
					return err
				}
				return s.store.States.Insert(ctx, states)
			},
		},
	}

	for i, st := range steps {
		if err := s.runStep(ctx, st); err != nil {
			return fmt.Errorf("seeding %s: %w", st.name, err)
		}

		if st.name == "regions" && hooks.RegionsReady != nil {
			regions, err := s.store.Regions.List(ctx)
			if err != nil {
				return fmt.Errorf("seeding regions: %w", err)
			}
			hooks.RegionsReady(regions)
		}

		if hooks.Progress != nil {
			hooks.Progress(float64(i+1)/float64(len(steps)), st.name)
		}
	}

	if hooks.Done != nil {
		counts, err := s.store.Counts(ctx)
		if err != nil {
			return fmt.Errorf("reading final counts: %w", err)
		}
		hooks.Done(Report{CollectionCounts: counts, CitiesApprox: ApproxCityCount})
	}

	return nil
}

func (s *Seeder) runStep(ctx context.Context, st step) error {
	n, err := st.count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		// Steady-state fast path: already seeded, no network access.
		s.log.Debug("collection already seeded", "collection", st.name, "records", n)
		return nil
	}

	body, err := s.fetcher.FetchCollection(ctx, st.name)
	if err != nil {
		return err
	}
	if err := st.load(ctx, body); err != nil {
		return err
	}

	s.log.Info("collection seeded", "collection", st.name)
	return nil
}
