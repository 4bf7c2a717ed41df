package assistant

import (
	"context"
	"sync"

	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/utils/logging"
)

// Locator resolves the current geographic position. The call may block on
// the platform's own permission and timeout semantics.
type Locator interface {
	Locate(ctx context.Context) (*model.Coordinate, error)
}

// LocationCache resolves the position at most once per session. Denial or
// failure is cached as nil just like success, so the platform is never
// re-prompted until Invalidate.
type LocationCache struct {
	mu       sync.Mutex
	locator  Locator
	resolved bool
	coord    *model.Coordinate
}

// NewLocationCache creates a session-scoped cache over the locator
func NewLocationCache(locator Locator) *LocationCache {
	return &LocationCache{locator: locator}
}

// Resolve returns the session coordinate, calling the underlying locator
// only on the first invocation. Returns nil on denial or error; callers
// must treat nil as "skip place lookup", not as a turn failure.
func (c *LocationCache) Resolve(ctx context.Context) *model.Coordinate {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved {
		return c.coord
	}
	c.resolved = true

	if c.locator == nil {
		logging.From(ctx).Warn("no locator configured, location unavailable")
		return nil
	}

	coord, err := c.locator.Locate(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to resolve location", "error", err)
		return nil
	}

	c.coord = coord
	return c.coord
}

// Invalidate clears the cached coordinate so the next Resolve asks the
// platform again. Intended for new sessions.
func (c *LocationCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = false
	c.coord = nil
}
