package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/dto"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
)

type ServiceHandler struct {
	list   *ucCatalog.ListServices
	get    *ucCatalog.GetService
	create *ucCatalog.CreateService
	update *ucCatalog.UpdateService
	delete *ucCatalog.DeleteService
}

func NewServiceHandler(
	list *ucCatalog.ListServices,
	get *ucCatalog.GetService,
	create *ucCatalog.CreateService,
	update *ucCatalog.UpdateService,
	del *ucCatalog.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	ProviderID   *uint    `json:"provider_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	PricePerHour *float64 `json:"price_per_hour"`
	Price        *float64 `json:"price"`
	Duration     int      `json:"duration"`
}

type UpdateServiceRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	PricePerHour *float64 `json:"price_per_hour"`
	Price        *float64 `json:"price"`
	Duration     *int     `json:"duration"`
	Available    *bool    `json:"available"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	providerID, ok := queryUint(c, "provider_id")
	if !ok {
		return
	}
	minPrice, ok := queryFloat(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := queryFloat(c, "max_price")
	if !ok {
		return
	}
	minRating, ok := queryFloat(c, "min_rating")
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), catalogdomain.Filter{
		ProviderID:    providerID,
		Query:         c.Query("query"),
		Category:      c.Query("category"),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		MinRating:     minRating,
		AvailableOnly: c.Query("available") == "true",
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": dto.FromServices(list)})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": dto.FromService(s)})
}

// ======================================================
// PROVIDER / ADMIN
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), ucCatalog.CreateServiceInput{
		ProviderID:   req.ProviderID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		PricePerHour: req.PricePerHour,
		Price:        req.Price,
		Duration:     req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Service created successfully",
		"service": dto.FromService(s),
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), id, ucCatalog.UpdateServiceInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		PricePerHour: req.PricePerHour,
		Price:        req.Price,
		Duration:     req.Duration,
		Available:    req.Available,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"service": dto.FromService(s),
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Service deleted successfully")
}
