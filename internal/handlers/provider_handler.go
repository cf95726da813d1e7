package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/dto"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucProvider "github.com/BruksfildServices01/service-marketplace/internal/usecase/provider"
)

type ProviderHandler struct {
	top       *ucProvider.TopProviders
	profile   *ucProvider.GetProfile
	analytics *ucProvider.GetAnalytics
}

func NewProviderHandler(
	top *ucProvider.TopProviders,
	profile *ucProvider.GetProfile,
	analytics *ucProvider.GetAnalytics,
) *ProviderHandler {
	return &ProviderHandler{top: top, profile: profile, analytics: analytics}
}

func (h *ProviderHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, err := h.top.Execute(c.Request.Context(), limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"providers": dto.FromSummaries(list)})
}

func (h *ProviderHandler) Profile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := h.profile.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProfile(p))
}

func (h *ProviderHandler) Analytics(c *gin.Context) {
	a, err := h.analytics.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": a})
}
