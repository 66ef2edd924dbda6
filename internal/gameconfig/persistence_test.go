package gameconfig

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elimpostor/elimpostor/internal/storage"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := New(storage.NewMemory(), testLogger())
	ctx := context.Background()

	require.True(t, p.Save(ctx, Config{
		Players:          []string{"Ana", "Bea", "Cid"},
		SelectedCategory: "animales",
		SelectedVariant:  "classic",
	}))

	loaded := p.Load(ctx)
	assert.Equal(t, []string{"Ana", "Bea", "Cid"}, loaded.Players)
	assert.Equal(t, "animales", loaded.SelectedCategory)
	assert.Equal(t, "classic", loaded.SelectedVariant)
}

func TestSaveMergesOverPrevious(t *testing.T) {
	p := New(storage.NewMemory(), testLogger())
	ctx := context.Background()

	require.True(t, p.Save(ctx, Config{
		Players:          []string{"Ana", "Bea", "Cid"},
		SelectedCategory: "animales",
		SelectedVariant:  "classic",
	}))

	// A partial save must not clobber the other fields.
	require.True(t, p.Save(ctx, Config{SelectedVariant: "chaos"}))

	loaded := p.Load(ctx)
	assert.Equal(t, []string{"Ana", "Bea", "Cid"}, loaded.Players)
	assert.Equal(t, "animales", loaded.SelectedCategory)
	assert.Equal(t, "chaos", loaded.SelectedVariant)
}

func TestLoadEmptyStore(t *testing.T) {
	p := New(storage.NewMemory(), testLogger())
	assert.Equal(t, Config{}, p.Load(context.Background()))
}

func TestLoadDiscardsMalformedBlob(t *testing.T) {
	cases := map[string]string{
		"not json":          "not json{",
		"players not list":  `{"players":"Ana"}`,
		"variant not text":  `{"selectedVariant":7}`,
		"players not texts": `{"players":[1,2,3]}`,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			kv := storage.NewMemory()
			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, storageKey, blob))

			p := New(kv, testLogger())
			assert.Equal(t, Config{}, p.Load(ctx))

			_, found, err := kv.Get(ctx, storageKey)
			require.NoError(t, err)
			assert.False(t, found, "malformed blob must be deleted")
		})
	}
}

func TestClear(t *testing.T) {
	kv := storage.NewMemory()
	p := New(kv, testLogger())
	ctx := context.Background()

	require.True(t, p.Save(ctx, Config{Players: []string{"Ana"}}))
	require.True(t, p.Clear(ctx))
	assert.Equal(t, Config{}, p.Load(ctx))
	assert.True(t, p.Clear(ctx), "clearing an empty store still succeeds")
}

// failingKV errors on every call.
type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store unreachable")
}

func (failingKV) Set(ctx context.Context, key, value string) error {
	return errors.New("store unreachable")
}

func (failingKV) Remove(ctx context.Context, key string) error {
	return errors.New("store unreachable")
}

func TestFailuresResolveToBooleans(t *testing.T) {
	p := New(failingKV{}, testLogger())
	ctx := context.Background()

	assert.False(t, p.Save(ctx, Config{Players: []string{"Ana"}}))
	assert.Equal(t, Config{}, p.Load(ctx))
	assert.False(t, p.Clear(ctx))
}
