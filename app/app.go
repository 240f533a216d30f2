package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"cargoline/app/cache"
	"cargoline/app/decoder"
	"cargoline/app/index"
	"cargoline/app/interfaces"
	"cargoline/app/query"
	"cargoline/app/settings"
	"cargoline/app/store"
)

// Package app wires the cargoline core together: the dataset handle, the
// load path (decode, index, atomic publish) and the query engine. The
// serving shell talks to App and nothing below it.

// App is the orchestrator for one active dataset. Multiple independent
// Apps can coexist; each owns its own dataset handle and cache.
type App struct {
	dataset  *store.Dataset
	cache    *cache.Cache
	engine   *query.Engine
	settings settings.Settings
	progress interfaces.ProgressCallback
}

// SetProgress installs a callback reporting row-level progress during
// loads. Must be set before loading; loads in flight are not affected.
func (a *App) SetProgress(cb interfaces.ProgressCallback) {
	a.progress = cb
}

// NewApp creates an App configured from the effective user settings.
func NewApp() *App {
	return NewAppWithSettings(settings.GetEffectiveSettings())
}

// NewAppWithSettings creates an App with explicit settings. Tests use
// this to get isolated instances.
func NewAppWithSettings(s settings.Settings) *App {
	dataset := store.NewDataset()
	a := &App{dataset: dataset, settings: s}
	if s.EnableQueryCache {
		a.cache = cache.New(int64(s.CacheSizeLimitMB) * 1024 * 1024)
		a.engine = query.NewWithCache(dataset, a.cache)
	} else {
		a.engine = query.New(dataset)
	}
	return a
}

// DatasetInfo describes the active dataset.
type DatasetInfo struct {
	ID             string
	Hash           string
	Source         string
	LoadedAt       time.Time
	RecordCount    int
	ConsigneeCount int
}

// Loaded reports whether a dataset has been loaded.
func (a *App) Loaded() bool {
	return a.dataset.Loaded()
}

// Info returns metadata for the active dataset.
func (a *App) Info() (*DatasetInfo, error) {
	snap, err := a.dataset.Snapshot()
	if err != nil {
		return nil, err
	}
	return &DatasetInfo{
		ID:             snap.ID,
		Hash:           snap.Hash,
		Source:         snap.Source,
		LoadedAt:       snap.LoadedAt,
		RecordCount:    snap.Store.Count(),
		ConsigneeCount: snap.Index.Len(),
	}, nil
}

// LoadManifest loads the manifest at path, detecting the format from the
// file extension with a magic-byte fallback. Returns the record count.
func (a *App) LoadManifest(path string) (int, error) {
	return a.LoadManifestAs(path, decoder.DetectFormat(path))
}

// LoadManifestAs loads the manifest at path with an explicit format. The
// previous dataset stays active and queryable if the load fails.
func (a *App) LoadManifestAs(path string, format decoder.Format) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read manifest: %w", err)
	}
	return a.loadBytes(data, format, path)
}

// LoadManifestReader loads a manifest from an already-open byte source.
// name is the logical source name recorded on the snapshot.
func (a *App) LoadManifestReader(r io.Reader, format decoder.Format, name string) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read manifest: %w", err)
	}
	return a.loadBytes(data, format, name)
}

// loadBytes runs the full load: decode, index build, atomic publish.
// Loads are serialized by the dataset handle; queries in flight see
// either the previous snapshot or the new one, never a mix.
func (a *App) loadBytes(data []byte, format decoder.Format, source string) (int, error) {
	snap, err := a.dataset.Load(func() (*store.Snapshot, error) {
		result, err := decoder.DecodeBytes(data, format, decoder.Options{Progress: a.progress})
		if err != nil {
			return nil, err
		}
		return a.newSnapshot(result.Header, result.Records, hashData(data), source), nil
	})
	if err != nil {
		log.Printf("[LOAD_FAIL] %s (%s): %v", source, format, err)
		return 0, err
	}

	if a.cache != nil {
		a.cache.Clear()
	}
	log.Printf("[LOAD] %s: %d records, %d consignees (dataset %s)",
		source, snap.Store.Count(), snap.Index.Len(), snap.ID)
	return snap.Store.Count(), nil
}

func (a *App) newSnapshot(header []string, records []decoder.Record, hash, source string) *store.Snapshot {
	return &store.Snapshot{
		ID:       uuid.NewString(),
		Hash:     hash,
		Source:   source,
		LoadedAt: time.Now(),
		Store:    store.New(header, records),
		Index:    index.Build(records),
	}
}

// Query surface: thin delegation to the engine.

func (a *App) ListConsignees(opts query.ListOptions) (*query.ListResult, error) {
	if opts.PageSize < 1 {
		opts.PageSize = a.settings.DefaultPageSize
	}
	return a.engine.ListConsignees(opts)
}

func (a *App) SearchConsigneeNames(q string, limit int) ([]query.NameMatch, error) {
	if limit < 1 || limit > a.settings.AutocompleteLimit {
		limit = a.settings.AutocompleteLimit
	}
	matches, err := a.engine.SearchConsigneeNames(q, limit)
	if err != nil {
		return nil, err
	}
	// Settings may demand a stricter minimum than the engine's guard.
	if len(q) < a.settings.AutocompleteMinChars {
		return []query.NameMatch{}, nil
	}
	return matches, nil
}

func (a *App) ExportConsignees() ([]byte, error) {
	return a.engine.ExportConsignees()
}

func (a *App) ConsigneeStats() (*query.StatsResult, error) {
	return a.engine.ConsigneeStats()
}

func (a *App) SearchRecords(q string, field string) (*query.RecordSearchResult, error) {
	return a.engine.SearchRecords(q, field)
}

func (a *App) TopConsignees() ([]query.ValueCount, error) {
	return a.engine.TopConsignees()
}

func (a *App) TopTradeLanes() ([]query.ValueCount, error) {
	return a.engine.TopTradeLanes()
}

func (a *App) TopCarriers(lane string) ([]query.ValueCount, error) {
	return a.engine.TopCarriers(lane)
}

func (a *App) TopCommodities() ([]query.ValueCount, error) {
	return a.engine.TopCommodities()
}

func (a *App) ArrivalTimeline(maxBuckets int) (*query.TimelineResult, error) {
	return a.engine.ArrivalTimeline(maxBuckets)
}

func (a *App) ConsigneeDetail(name string) (*query.ConsigneeDetail, error) {
	return a.engine.ConsigneeDetailByName(name)
}

// CacheStats exposes cache counters for diagnostics. Returns zero stats
// when caching is disabled.
func (a *App) CacheStats() cache.Stats {
	if a.cache == nil {
		return cache.Stats{}
	}
	return a.cache.GetStats()
}
