package i18n

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentReloads caps parallel directory reads during ReloadAll.
const maxConcurrentReloads = 4

// source is a named contributor of translation data. It owns an optional
// bundle directory and the per-locale trees merged from it and from direct
// registrations.
type source struct {
	name string
	path string
	fsys fs.FS
	data map[string]map[string]any // locale -> nested tree
}

// Store holds translation sources and a merged per-locale view.
//
// The merged view is a derived cache: it is invalidated whenever a source is
// added, updated, or removed, and lazily rebuilt on the next read. Sources
// merge in registration order, so on key conflicts the last-registered
// source wins. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	sources map[string]*source
	order   []string // registration order, drives merge determinism
	merged  map[string]map[string]any
	dirty   bool
	log     *slog.Logger
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used for bundle-loading warnings.
func WithStoreLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates an empty translation store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		sources: make(map[string]*source),
		merged:  make(map[string]map[string]any),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sourceConfig collects what a registration call contributes to a source.
type sourceConfig struct {
	path    string
	fsys    fs.FS
	fsysSet bool
	data    map[string]map[string]any
}

// SourceOption configures a source registration.
type SourceOption func(*sourceConfig)

// WithPath sets the bundle directory for a source. Each file named
// {locale}.json, {locale}.yaml, or {locale}.yml directly inside the
// directory is parsed and merged into the source's tree for that locale.
func WithPath(path string) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.path = path
		cfg.fsys = os.DirFS(path)
		cfg.fsysSet = true
	}
}

// WithFS sets the bundle directory for a source as an fs.FS whose root
// contains the per-locale files. Useful with embed.FS and in tests.
func WithFS(fsys fs.FS) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.fsys = fsys
		cfg.fsysSet = true
	}
}

// WithData merges inline translation data (locale -> nested tree) into the
// source at registration time.
func WithData(data map[string]map[string]any) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.data = data
	}
}

// RegisterSource creates or updates a named source. A repeated registration
// with the same name updates the existing source in place: a new bundle
// directory replaces the old one and is loaded immediately, inline data
// merges into the existing trees. Unreadable or malformed bundle files are
// logged as warnings and skipped; registration itself never fails for them.
func (s *Store) RegisterSource(name string, opts ...SourceOption) error {
	if name == "" {
		return ErrEmptySource
	}

	var cfg sourceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.sources[name]
	if !ok {
		src = &source{name: name, data: make(map[string]map[string]any)}
		s.sources[name] = src
		s.order = append(s.order, name)
	}

	if cfg.fsysSet {
		src.path = cfg.path
		src.fsys = cfg.fsys
		loadBundleDir(src.fsys, src.path, src.data, s.log)
	}

	for locale, tree := range cfg.data {
		src.mergeLocale(locale, tree)
	}

	s.dirty = true
	return nil
}

// RegisterTranslations merges a single locale's nested tree directly into a
// source, creating the source if it does not exist yet.
func (s *Store) RegisterTranslations(name, locale string, tree map[string]any) error {
	if name == "" {
		return ErrEmptySource
	}
	if locale == "" {
		return ErrEmptyLocale
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.sources[name]
	if !ok {
		src = &source{name: name, data: make(map[string]map[string]any)}
		s.sources[name] = src
		s.order = append(s.order, name)
	}

	src.mergeLocale(locale, tree)
	s.dirty = true
	return nil
}

// UnregisterSource removes a source. Reports whether it existed.
func (s *Store) UnregisterSource(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sources[name]; !ok {
		return false
	}

	delete(s.sources, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	s.dirty = true
	return true
}

// ReloadSource clears a source's in-memory trees and, if the source has a
// bundle directory, reloads it from there. Reports whether the source
// existed. Inline-registered data does not survive a reload.
func (s *Store) ReloadSource(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.sources[name]
	if !ok {
		return false
	}

	reloadSource(src, s.log)
	s.dirty = true
	return true
}

// ReloadAll reloads every registered source from its bundle directory.
// Directory reads run concurrently; the merged cache is rebuilt on next read.
func (s *Store) ReloadAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var g errgroup.Group
	g.SetLimit(maxConcurrentReloads)

	for _, src := range s.sources {
		src := src
		g.Go(func() error {
			reloadSource(src, s.log)
			return nil
		})
	}
	_ = g.Wait()

	s.dirty = true
}

// reloadSource resets a single source's data and re-reads its bundle dir.
// Callers must hold the store's write lock; concurrent calls from ReloadAll
// are safe because each touches a distinct source.
func reloadSource(src *source, log *slog.Logger) {
	src.data = make(map[string]map[string]any)
	if src.fsys != nil {
		loadBundleDir(src.fsys, src.path, src.data, log)
	}
}

// MergedTranslations returns the merged nested tree for a locale, rebuilding
// the cache first if any source changed since the last read. Unknown locales
// yield an empty tree. The returned map is a shared read-only view; use
// AllMergedTranslations for a mutable copy.
func (s *Store) MergedTranslations(locale string) map[string]any {
	s.mu.RLock()
	if !s.dirty {
		tree := s.merged[locale]
		s.mu.RUnlock()
		if tree == nil {
			return map[string]any{}
		}
		return tree
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty {
		s.rebuildLocked()
	}
	tree := s.merged[locale]
	if tree == nil {
		return map[string]any{}
	}
	return tree
}

// AllMergedTranslations returns every known locale mapped to a deep copy of
// its merged tree. Callers may mutate the result freely.
func (s *Store) AllMergedTranslations() map[string]map[string]any {
	s.rebuildIfDirty()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[string]any, len(s.merged))
	for locale, tree := range s.merged {
		out[locale] = copyTree(tree)
	}
	return out
}

// SourceNames returns registered source names in registration order.
func (s *Store) SourceNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Locales returns every locale present in the merged view, sorted.
func (s *Store) Locales() []string {
	s.rebuildIfDirty()

	s.mu.RLock()
	defer s.mu.RUnlock()

	locales := make([]string, 0, len(s.merged))
	for locale := range s.merged {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

// rebuildIfDirty takes the write lock and rebuilds the merged cache when a
// source changed since the last read.
func (s *Store) rebuildIfDirty() {
	s.mu.RLock()
	dirty := s.dirty
	s.mu.RUnlock()
	if !dirty {
		return
	}

	s.mu.Lock()
	if s.dirty {
		s.rebuildLocked()
	}
	s.mu.Unlock()
}

// rebuildLocked recomputes the merged cache from scratch. Sources merge in
// registration order with a shallow top-level update per locale bucket, so
// the last-registered source wins on conflicting top-level keys. Subtrees
// are copied so issued views stay stable while sources keep changing.
// The caller must hold the write lock.
func (s *Store) rebuildLocked() {
	merged := make(map[string]map[string]any)

	for _, name := range s.order {
		src := s.sources[name]
		for locale, tree := range src.data {
			bucket, ok := merged[locale]
			if !ok {
				bucket = make(map[string]any, len(tree))
				merged[locale] = bucket
			}
			for key, value := range tree {
				if nested, ok := value.(map[string]any); ok {
					bucket[key] = copyTree(nested)
					continue
				}
				bucket[key] = value
			}
		}
	}

	s.merged = merged
	s.dirty = false
}

// mergeLocale deep-merges a nested tree into the source's bucket for a
// locale, last write winning at the leaf.
func (src *source) mergeLocale(locale string, tree map[string]any) {
	bucket, ok := src.data[locale]
	if !ok {
		bucket = make(map[string]any, len(tree))
		src.data[locale] = bucket
	}
	mergeTree(bucket, tree)
}

// mergeTree merges src into dst recursively. When both sides hold a nested
// mapping for the same key the mappings merge; otherwise src overwrites.
func mergeTree(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeTree(dstMap, srcMap)
				continue
			}
			child := make(map[string]any, len(srcMap))
			mergeTree(child, srcMap)
			dst[key] = child
			continue
		}
		dst[key] = value
	}
}

// copyTree returns a deep copy of a nested translation tree.
func copyTree(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for key, value := range tree {
		if nested, ok := value.(map[string]any); ok {
			out[key] = copyTree(nested)
			continue
		}
		out[key] = value
	}
	return out
}
