package category

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/elimpostor/elimpostor/internal/storage"
)

// storageKey is the key the customization blob lives under in the
// external store.
const storageKey = "impostor.customCategories"

// Store holds the in-memory category set and keeps it in sync with the
// persisted customizations. Mutations apply to memory synchronously and
// enqueue an asynchronous save; the save worker re-derives the full
// differential snapshot from current state, so a later mutation's save
// naturally supersedes an earlier pending one (last write wins).
type Store struct {
	kv     storage.Store
	logger *log.Logger

	mu    sync.RWMutex
	cats  map[string]*Category
	order []string // iteration order; mixed is always last

	// saveMu serializes every write under storageKey. Writers snapshot
	// state after acquiring it, so the persisted value always derives
	// from the state current at the time of the last write.
	saveMu  sync.Mutex
	dirty   atomic.Bool
	saveReq chan struct{}
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewStore creates a store pre-populated with the built-in defaults and
// starts the save worker. Call LoadCustom to layer persisted
// customizations on top, and Close to stop the worker.
func NewStore(kv storage.Store, logger *log.Logger) *Store {
	s := &Store{
		kv:      kv,
		logger:  logger.WithPrefix("category-store"),
		saveReq: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
	s.mu.Lock()
	s.resetToDefaultsLocked()
	s.recomputeMixedLocked()
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	return s
}

func (s *Store) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.saveReq:
			s.save()
		case <-s.stop:
			return
		}
	}
}

// Close stops the save worker and flushes any pending customizations.
func (s *Store) Close() {
	close(s.stop)
	s.wg.Wait()
	if s.dirty.Load() {
		s.save()
	}
}

// LoadCustom reads the persisted customization blob and merges it over
// the built-in defaults. A read failure falls back to defaults; a
// malformed blob is deleted best-effort so the store self-heals on the
// next run. It never fails: the store always ends in a usable state with
// mixed recomputed.
func (s *Store) LoadCustom(ctx context.Context) {
	blob, found, err := s.kv.Get(ctx, storageKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetToDefaultsLocked()

	switch {
	case err != nil:
		s.logger.Warn("reading category customizations failed, using defaults", "error", err)
	case !found:
		// Nothing persisted yet.
	default:
		custom, ok := decodeCustomizations(blob)
		if !ok {
			s.logger.Warn("discarding malformed category customizations")
			if err := s.kv.Remove(ctx, storageKey); err != nil {
				s.logger.Warn("deleting malformed customizations failed", "error", err)
			}
		} else {
			s.mergeLocked(custom)
		}
	}
	s.recomputeMixedLocked()
}

// All returns a copy of the current category set.
func (s *Store) All() map[string]Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Category, len(s.cats))
	for key, cat := range s.cats {
		out[key] = *cat.clone()
	}
	return out
}

// Words returns a copy of a category's word list and whether the key
// exists.
func (s *Store) Words(key string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat, ok := s.cats[key]
	if !ok {
		return nil, false
	}
	words := make([]string, len(cat.Words))
	copy(words, cat.Words)
	return words, true
}

// Options returns the display projection of every category, mixed last.
func (s *Store) Options() []Option {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Option, 0, len(s.order))
	for _, key := range s.order {
		cat := s.cats[key]
		out = append(out, Option{
			Key:       key,
			Emoji:     cat.Emoji,
			Name:      cat.Name,
			WordCount: len(cat.Words),
			Custom:    cat.Custom,
			Modified:  s.isModifiedLocked(key),
		})
	}
	return out
}

// AddWord appends a word to a category. No-op for the mixed key, an
// unknown key, an empty word, or an exact duplicate.
func (s *Store) AddWord(key, word string) {
	word = strings.TrimSpace(word)
	if key == MixedKey || word == "" {
		return
	}

	s.mu.Lock()
	cat, ok := s.cats[key]
	if !ok || cat.hasWord(word) {
		s.mu.Unlock()
		return
	}
	cat.Words = append(cat.Words, word)
	s.recomputeMixedLocked()
	s.mu.Unlock()

	s.scheduleSave()
}

// RemoveWord removes a word from a category. No-op for the mixed key, an
// unknown key, or a word not present.
func (s *Store) RemoveWord(key, word string) {
	if key == MixedKey {
		return
	}

	s.mu.Lock()
	cat, ok := s.cats[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	idx := -1
	for i, w := range cat.Words {
		if w == word {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	cat.Words = append(cat.Words[:idx], cat.Words[idx+1:]...)
	s.recomputeMixedLocked()
	s.mu.Unlock()

	s.scheduleSave()
}

// Create adds a new custom category. Returns false when the key is empty
// or already taken (by mixed, a built-in, or another custom category).
func (s *Store) Create(key, name, emoji string, words []string) bool {
	key = strings.TrimSpace(key)
	if key == "" || key == MixedKey {
		return false
	}

	s.mu.Lock()
	if _, exists := s.cats[key]; exists {
		s.mu.Unlock()
		return false
	}
	cat := &Category{
		Emoji:  emoji,
		Name:   name,
		Words:  sanitizeWords(words),
		Custom: true,
	}
	s.cats[key] = cat
	// Keep mixed at the end of the iteration order.
	s.order = append(s.order[:len(s.order)-1], key, MixedKey)
	s.recomputeMixedLocked()
	s.mu.Unlock()

	s.scheduleSave()
	return true
}

// Delete removes a custom category entirely. Built-ins and mixed are
// never deletable; built-ins can only be reset.
func (s *Store) Delete(key string) bool {
	if key == MixedKey {
		return false
	}

	s.mu.Lock()
	cat, ok := s.cats[key]
	if !ok || !cat.Custom {
		s.mu.Unlock()
		return false
	}
	delete(s.cats, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.recomputeMixedLocked()
	s.mu.Unlock()

	s.scheduleSave()
	return true
}

// ResetOne restores the shipped content of a built-in category. No-op for
// mixed or any key that is not a known default.
func (s *Store) ResetOne(key string) {
	def, ok := defaultFor(key)
	if key == MixedKey || !ok {
		return
	}

	s.mu.Lock()
	s.cats[key] = def.clone()
	s.recomputeMixedLocked()
	s.mu.Unlock()

	s.scheduleSave()
}

// ResetAll erases every customization and removes the persisted blob.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	s.resetToDefaultsLocked()
	s.recomputeMixedLocked()
	s.mu.Unlock()

	// Go through the writer path so a save already in flight cannot land
	// its stale snapshot after the removal.
	s.saveWith(ctx)
}

// IsModified reports whether a category differs from its shipped default.
// Mixed is always unmodified; a key absent from the defaults is always
// modified (it is custom).
func (s *Store) IsModified(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isModifiedLocked(key)
}

// Flush runs a save synchronously and reports whether the write
// succeeded. The asynchronous path logs failures instead; this is for
// shutdown and tests.
func (s *Store) Flush() bool {
	return s.save()
}

func (s *Store) isModifiedLocked(key string) bool {
	if key == MixedKey {
		return false
	}
	cat, ok := s.cats[key]
	if !ok {
		return false
	}
	def, isDefault := defaultFor(key)
	if !isDefault {
		return true
	}
	return !categoriesEqual(cat, &def)
}

// categoriesEqual compares content verbatim: word order matters.
func categoriesEqual(a, b *Category) bool {
	if a.Name != b.Name || a.Emoji != b.Emoji || len(a.Words) != len(b.Words) {
		return false
	}
	for i := range a.Words {
		if a.Words[i] != b.Words[i] {
			return false
		}
	}
	return true
}

func (s *Store) resetToDefaultsLocked() {
	defaults := builtinDefaults()
	s.cats = make(map[string]*Category, len(defaults)+1)
	s.order = make([]string, 0, len(defaults)+1)
	for _, entry := range defaults {
		s.cats[entry.key] = entry.cat.clone()
		s.order = append(s.order, entry.key)
	}
	s.cats[MixedKey] = &Category{Emoji: "🎲", Name: "Mezcla"}
	s.order = append(s.order, MixedKey)
}

// recomputeMixedLocked rebuilds the derived category as the concatenation
// of every other category's words, in iteration order.
func (s *Store) recomputeMixedLocked() {
	var words []string
	for _, key := range s.order {
		if key == MixedKey {
			continue
		}
		words = append(words, s.cats[key].Words...)
	}
	s.cats[MixedKey].Words = words
}

// mergeLocked layers decoded customizations over the defaults. Entries
// for built-in keys override content in place; unknown keys become custom
// categories, appended in sorted order for stable iteration.
func (s *Store) mergeLocked(custom map[string]persistedCategory) {
	keys := make([]string, 0, len(custom))
	for key := range custom {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == MixedKey {
			continue
		}
		entry := custom[key]
		if existing, ok := s.cats[key]; ok {
			existing.Emoji = entry.Emoji
			existing.Name = entry.Name
			existing.Words = sanitizeWords(entry.Words)
			continue
		}
		s.cats[key] = &Category{
			Emoji:  entry.Emoji,
			Name:   entry.Name,
			Words:  sanitizeWords(entry.Words),
			Custom: true,
		}
		s.order = append(s.order[:len(s.order)-1], key, MixedKey)
	}
}

func (s *Store) scheduleSave() {
	s.dirty.Store(true)
	select {
	case s.saveReq <- struct{}{}:
	default:
		// A save is already pending; it will pick up this state too.
	}
}

func (s *Store) save() bool {
	return s.saveWith(context.Background())
}

// saveWith writes the differential snapshot: every non-mixed category that
// is custom or differs from its shipped default. An empty snapshot removes
// the blob instead of writing one.
func (s *Store) saveWith(ctx context.Context) bool {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	diff := make(map[string]persistedCategory)
	for _, key := range s.order {
		if key == MixedKey || !s.isModifiedLocked(key) {
			continue
		}
		cat := s.cats[key]
		words := make([]string, len(cat.Words))
		copy(words, cat.Words)
		diff[key] = persistedCategory{Emoji: cat.Emoji, Name: cat.Name, Words: words}
	}
	s.mu.RUnlock()

	if len(diff) == 0 {
		if err := s.kv.Remove(ctx, storageKey); err != nil {
			s.logger.Warn("removing category customizations failed", "error", err)
			return false
		}
		s.dirty.Store(false)
		return true
	}

	data, err := json.Marshal(diff)
	if err != nil {
		s.logger.Error("encoding category customizations failed", "error", err)
		return false
	}
	if err := s.kv.Set(ctx, storageKey, string(data)); err != nil {
		s.logger.Warn("saving category customizations failed", "error", err)
		return false
	}
	s.dirty.Store(false)
	return true
}

// sanitizeWords drops empty strings and exact duplicates while keeping
// first-insertion order.
func sanitizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
