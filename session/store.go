// Package session stores per-session shopping carts. Carts are ephemeral:
// they live only as long as the session and are never written to the main
// database.
package session

import (
	"context"
	"time"

	"github.com/storely/storefront-api/models"
)

// DefaultTTL is how long an idle cart survives. Every save refreshes it.
const DefaultTTL = 72 * time.Hour

// Store loads and saves carts keyed by session id. A missing session yields
// an empty cart, not an error.
type Store interface {
	Get(ctx context.Context, sessionID string) (models.Cart, error)
	Save(ctx context.Context, sessionID string, cart models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
