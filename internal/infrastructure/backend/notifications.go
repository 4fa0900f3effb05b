package backend

import (
	"context"
	"net/http"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

// Notifications implements ports.NotificationAPI. Unlike the other
// accessors it swallows failures and degrades to an empty list: the bell
// indicator must never take the navigation chrome down with it.
type Notifications struct {
	c *Client
}

func NewNotifications(c *Client) *Notifications {
	return &Notifications{c: c}
}

func (n *Notifications) List(ctx context.Context, token string) []domain.Notification {
	if token == "" {
		return nil
	}

	data, err := n.c.do(ctx, "notifications", http.MethodGet, "/notifications", token, nil)
	if err != nil {
		n.c.log.Warn().Err(err).Msg("failed to fetch notifications")
		return nil
	}

	list, err := decodeList[domain.Notification](data, "notifications")
	if err != nil {
		n.c.log.Warn().Err(err).Msg("notification payload had an unexpected shape")
		return nil
	}
	return list
}
