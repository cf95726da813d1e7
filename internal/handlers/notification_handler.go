package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucNotification "github.com/BruksfildServices01/service-marketplace/internal/usecase/notification"
)

type NotificationHandler struct {
	list *ucNotification.ListNotifications
}

func NewNotificationHandler(list *ucNotification.ListNotifications) *NotificationHandler {
	return &NotificationHandler{list: list}
}

// List accepts ?since=<RFC 3339>.
func (h *NotificationHandler) List(c *gin.Context) {
	var since time.Time
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_since", "since must be an RFC 3339 timestamp.")
			return
		}
		since = t
	}

	items, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), since)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": items})
}
