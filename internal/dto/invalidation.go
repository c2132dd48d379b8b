package dto

import "time"

// Invalidation announces that the cached listings of a resource went stale,
// e.g. after a mutation. Origin identifies the emitting process so that
// subscribers can skip their own events.
type Invalidation struct {
	Resource string    `json:"resource"`
	Origin   string    `json:"origin"`
	At       time.Time `json:"at"`
}
