package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"cargoline/app/decoder"
	"cargoline/app/index"
	"cargoline/app/interfaces"
	"cargoline/app/store"
)

// LoadManifestDir loads every manifest under dir matching the glob
// pattern (e.g. "*.csv", "shards/**/*.csv.gz") as one merged dataset.
// Shards are merged in sorted path order; the header is the union of all
// shard headers in first-seen order. The load is all-or-nothing: any
// shard failing to decode aborts it and keeps the previous dataset.
func (a *App) LoadManifestDir(dir, pattern string) (int, error) {
	if pattern == "" {
		return 0, fmt.Errorf("file pattern is required (e.g. *.csv, *.csv.gz)")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve path: %w", err)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(absDir, pattern))
	if err != nil {
		return 0, fmt.Errorf("failed to match pattern: %w", err)
	}
	var paths []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		paths = append(paths, m)
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no manifests matching %q under %s", pattern, absDir)
	}
	sort.Strings(paths)

	snap, err := a.dataset.Load(func() (*store.Snapshot, error) {
		var header []string
		seen := make(map[string]bool)
		var records []interfaces.Record
		var hashes []string

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read shard %s: %w", path, err)
			}
			result, err := decoder.DecodeBytes(data, decoder.DetectFormat(path), decoder.Options{Progress: a.progress})
			if err != nil {
				return nil, fmt.Errorf("shard %s: %w", path, err)
			}
			for _, name := range result.Header {
				if !seen[name] {
					seen[name] = true
					header = append(header, name)
				}
			}
			records = append(records, result.Records...)
			hashes = append(hashes, hashData(data))
		}

		return &store.Snapshot{
			ID:       uuid.NewString(),
			Hash:     hashData([]byte(strings.Join(hashes, "|"))),
			Source:   absDir,
			LoadedAt: time.Now(),
			Store:    store.New(header, records),
			Index:    index.Build(records),
		}, nil
	})
	if err != nil {
		log.Printf("[LOAD_FAIL] directory %s: %v", absDir, err)
		return 0, err
	}

	if a.cache != nil {
		a.cache.Clear()
	}
	log.Printf("[LOAD] directory %s: %d shards, %d records, %d consignees (dataset %s)",
		absDir, len(paths), snap.Store.Count(), snap.Index.Len(), snap.ID)
	return snap.Store.Count(), nil
}
