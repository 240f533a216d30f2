package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"cargoline/app/index"
)

// ErrNoDataLoaded is returned by queries issued before the first
// successful load.
var ErrNoDataLoaded = errors.New("no dataset loaded")

// Snapshot is one immutable (store, index) pair plus load metadata. The
// pair is always built from the same source bytes and published together,
// so readers can never observe a store and index from different loads.
type Snapshot struct {
	ID       string // per-load UUID
	Hash     string // content hash of the source bytes
	Source   string // path or logical name of the manifest
	LoadedAt time.Time

	Store *Store
	Index *index.Index
}

// Dataset is the single process-wide handle to the active snapshot.
// Queries read the current snapshot; loads build a replacement in
// isolation and swap it in atomically. Multiple independent handles can
// coexist, which is what the tests do.
type Dataset struct {
	loadMu sync.Mutex
	snap   atomic.Pointer[Snapshot]
}

// NewDataset returns an empty dataset handle.
func NewDataset() *Dataset {
	return &Dataset{}
}

// Snapshot returns the active snapshot, or ErrNoDataLoaded before the
// first successful load.
func (d *Dataset) Snapshot() (*Snapshot, error) {
	snap := d.snap.Load()
	if snap == nil {
		return nil, ErrNoDataLoaded
	}
	return snap, nil
}

// Loaded reports whether a snapshot has been published.
func (d *Dataset) Loaded() bool {
	return d.snap.Load() != nil
}

// Load serializes concurrent loads and atomically publishes the snapshot
// produced by build. When build fails the previous snapshot stays active
// untouched; a half-built store or index is never observable.
func (d *Dataset) Load(build func() (*Snapshot, error)) (*Snapshot, error) {
	d.loadMu.Lock()
	defer d.loadMu.Unlock()

	snap, err := build()
	if err != nil {
		return nil, err
	}
	d.snap.Store(snap)
	return snap, nil
}
