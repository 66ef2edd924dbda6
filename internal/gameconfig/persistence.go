// Package gameconfig persists the durable slice of setup state: the
// roster, the selected category, and the selected variant. In-progress
// round data is deliberately excluded: a restart always returns to setup
// with the remembered roster, never mid-round.
package gameconfig

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/elimpostor/elimpostor/internal/storage"
)

// storageKey is the key the config blob lives under in the external
// store.
const storageKey = "impostor.gameConfig"

// Config is the persistable setup slice. Zero-valued fields mean
// "absent": a nil Players or empty selection is not written over a
// previously saved value.
type Config struct {
	Players          []string `json:"players,omitempty"`
	SelectedCategory string   `json:"selectedCategory,omitempty"`
	SelectedVariant  string   `json:"selectedVariant,omitempty"`
}

// Persistence reads and writes the config blob. Every operation resolves
// to a boolean or a usable zero value; failures are logged, never
// surfaced as errors.
type Persistence struct {
	kv     storage.Store
	logger *log.Logger
}

// New creates a config persistence over the given store. The store
// should already be wrapped with the persistence deadline.
func New(kv storage.Store, logger *log.Logger) *Persistence {
	return &Persistence{
		kv:     kv,
		logger: logger.WithPrefix("game-config"),
	}
}

// Save merges the set fields of partial over the previously persisted
// config and writes the result. Returns false on any failure; callers
// treat saves as fire-and-forget and never block on the outcome.
func (p *Persistence) Save(ctx context.Context, partial Config) bool {
	merged := p.Load(ctx)
	if partial.Players != nil {
		merged.Players = partial.Players
	}
	if partial.SelectedCategory != "" {
		merged.SelectedCategory = partial.SelectedCategory
	}
	if partial.SelectedVariant != "" {
		merged.SelectedVariant = partial.SelectedVariant
	}

	data, err := json.Marshal(merged)
	if err != nil {
		p.logger.Error("encoding game config failed", "error", err)
		return false
	}
	if err := p.kv.Set(ctx, storageKey, string(data)); err != nil {
		p.logger.Warn("saving game config failed", "error", err)
		return false
	}
	return true
}

// Load reads and shape-validates the persisted config. Malformed data is
// deleted best-effort so the next run starts clean; any failure returns
// an empty config, never partially-typed garbage.
func (p *Persistence) Load(ctx context.Context) Config {
	blob, found, err := p.kv.Get(ctx, storageKey)
	if err != nil {
		p.logger.Warn("reading game config failed", "error", err)
		return Config{}
	}
	if !found {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal([]byte(blob), &cfg); err != nil {
		p.logger.Warn("discarding malformed game config", "error", err)
		if err := p.kv.Remove(ctx, storageKey); err != nil {
			p.logger.Warn("deleting malformed game config failed", "error", err)
		}
		return Config{}
	}
	return cfg
}

// Clear deletes the persisted config.
func (p *Persistence) Clear(ctx context.Context) bool {
	if err := p.kv.Remove(ctx, storageKey); err != nil {
		p.logger.Warn("clearing game config failed", "error", err)
		return false
	}
	return true
}
