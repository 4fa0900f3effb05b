package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

// NotificationCenter surfaces unread review notifications for an owner
// identity. Read state is mutated locally and optimistically only: the
// backend is never told, and the local view resets on the next fetch. That
// mirrors the original client and is an accepted gap.
type NotificationCenter struct {
	token string
	api   ports.NotificationAPI
	log   zerolog.Logger

	mu    sync.Mutex
	items []domain.Notification
}

func NewNotificationCenter(token string, api ports.NotificationAPI, log zerolog.Logger) *NotificationCenter {
	return &NotificationCenter{
		token: token,
		api:   api,
		log:   log.With().Str("component", "notifications").Logger(),
	}
}

// Refresh replaces the in-memory list with the backend's. The accessor
// degrades to an empty list on failure, so refresh can never error.
func (c *NotificationCenter) Refresh(ctx context.Context) {
	items := c.api.List(ctx, c.token)
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Items returns a copy of the current list.
func (c *NotificationCenter) Items() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// UnreadCount is the number of entries not yet marked read.
func (c *NotificationCenter) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, item := range c.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// Badge renders the unread count for the bell indicator, capped at "9+".
func (c *NotificationCenter) Badge() string {
	n := c.UnreadCount()
	if n > 9 {
		return "9+"
	}
	return strconv.Itoa(n)
}

// MarkRead flips one notification to read locally and returns the
// restaurant id the click navigates to. Marking an already-read or unknown
// id is a no-op for the unread count.
func (c *NotificationCenter) MarkRead(id domain.ID) (domain.ID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ID == id {
			c.items[i].Read = true
			return item.RestaurantID, true
		}
	}
	return "", false
}

// ClearAll empties the local list without a backend call; the next Refresh
// restores whatever the backend still holds.
func (c *NotificationCenter) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
