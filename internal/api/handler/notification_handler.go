package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/api/metrics"
	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/service"
)

// NotificationHandler serves the owner's bell indicator.
type NotificationHandler struct {
	sessions *service.Registry
}

func NewNotificationHandler(sessions *service.Registry) *NotificationHandler {
	return &NotificationHandler{sessions: sessions}
}

type notificationSummary struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
	Badge         string                `json:"badge"`
}

type markReadResponse struct {
	Redirect string `json:"redirect"`
}

// Summary handles GET /notifications: refresh from the backend (a failure
// degrades to an empty list) and report the derived unread count.
func (h *NotificationHandler) Summary(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return err
	}

	center.Refresh(c.Request().Context())
	unread := center.UnreadCount()
	metrics.NotificationsUnread.Set(float64(unread))

	return c.JSON(http.StatusOK, notificationSummary{
		Notifications: center.Items(),
		UnreadCount:   unread,
		Badge:         center.Badge(),
	})
}

// MarkRead handles POST /notifications/:notificationId/read: flip the local
// read flag and hand back the restaurant detail path the click navigates
// to. The backend is deliberately not informed.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return err
	}

	restaurantID, ok := center.MarkRead(domain.ID(c.Param("notificationId")))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown notification")
	}
	return c.JSON(http.StatusOK, markReadResponse{Redirect: "/restaurant/" + restaurantID.String()})
}

// Clear handles POST /notifications/clear: local-only, resets on the next
// fetch.
func (h *NotificationHandler) Clear(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return err
	}
	center.ClearAll()
	metrics.NotificationsUnread.Set(0)
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) center(c echo.Context) (*service.NotificationCenter, error) {
	_, token, err := ctxSession(c)
	if err != nil {
		return nil, err
	}
	sess, err := h.sessions.Resolve(token)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
	}
	return sess.Notifications, nil
}
