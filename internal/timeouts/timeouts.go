// Package timeouts defines the shared deadline constants for the game core.
// Centralizing them keeps the entropy and persistence boundaries from
// drifting apart and makes the durations discoverable.
package timeouts

import "time"

// Entropy caps the wait for a single secure-entropy draw before the
// random source falls back to its pseudo-random provider.
const Entropy = 2 * time.Second

// Persistence caps any single read, write, or delete against the
// key-value store before it is treated as failed.
const Persistence = 5 * time.Second
