package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

func testNotifications() []domain.Notification {
	return []domain.Notification{
		{ID: "n1", Message: "New review on Trattoria Roma", RestaurantID: "1"},
		{ID: "n2", Message: "New review on Pasta Palace", RestaurantID: "3"},
		{ID: "n3", Message: "Older review", RestaurantID: "1", Read: true},
	}
}

func TestNotificationCenter_UnreadCountAndBadge(t *testing.T) {
	c := NewNotificationCenter("tok", &stubNotificationAPI{items: testNotifications()}, zerolog.Nop())
	c.Refresh(context.Background())

	if got := c.UnreadCount(); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}
	if got := c.Badge(); got != "2" {
		t.Fatalf("expected badge 2, got %q", got)
	}
}

func TestNotificationCenter_BadgeCaps(t *testing.T) {
	items := make([]domain.Notification, 12)
	for i := range items {
		items[i] = domain.Notification{ID: domain.ID(string(rune('a' + i)))}
	}
	c := NewNotificationCenter("tok", &stubNotificationAPI{items: items}, zerolog.Nop())
	c.Refresh(context.Background())

	if got := c.Badge(); got != "9+" {
		t.Fatalf("expected capped badge 9+, got %q", got)
	}
}

func TestNotificationCenter_MarkRead(t *testing.T) {
	c := NewNotificationCenter("tok", &stubNotificationAPI{items: testNotifications()}, zerolog.Nop())
	c.Refresh(context.Background())

	restaurantID, ok := c.MarkRead("n1")
	if !ok {
		t.Fatalf("expected n1 to be found")
	}
	if restaurantID != "1" {
		t.Fatalf("expected navigation target 1, got %q", restaurantID)
	}
	if got := c.UnreadCount(); got != 1 {
		t.Fatalf("expected 1 unread after marking, got %d", got)
	}

	// Marking an already-read entry changes nothing.
	if _, ok := c.MarkRead("n3"); !ok {
		t.Fatalf("already-read entry should still resolve")
	}
	if got := c.UnreadCount(); got != 1 {
		t.Fatalf("unread count should be unchanged, got %d", got)
	}

	if _, ok := c.MarkRead("missing"); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestNotificationCenter_ClearAllIsLocal(t *testing.T) {
	api := &stubNotificationAPI{items: testNotifications()}
	c := NewNotificationCenter("tok", api, zerolog.Nop())
	c.Refresh(context.Background())

	c.ClearAll()
	if len(c.Items()) != 0 || c.UnreadCount() != 0 {
		t.Fatalf("clear should empty the local list")
	}

	// The backend was never told; a refresh restores its view.
	c.Refresh(context.Background())
	if got := c.UnreadCount(); got != 2 {
		t.Fatalf("refresh should restore the backend list, got %d unread", got)
	}
}
