package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/dto"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucBooking "github.com/BruksfildServices01/service-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateBookingStatus
	rate         *ucBooking.RateBooking
	delete       *ucBooking.DeleteBooking
	list         *ucBooking.ListBookings
	get          *ucBooking.GetBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	rate *ucBooking.RateBooking,
	del *ucBooking.DeleteBooking,
	list *ucBooking.ListBookings,
	get *ucBooking.GetBooking,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		rate:         rate,
		delete:       del,
		list:         list,
		get:          get,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID   *uint    `json:"service_id"`
	ServiceName string   `json:"service_name"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Duration    int      `json:"duration"`
	TotalPrice  *float64 `json:"total_price"`
	Description string   `json:"description"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type RateBookingRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), ucBooking.CreateBookingInput{
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		Category:    req.Category,
		TotalPrice:  req.TotalPrice,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Booking created successfully",
		"booking": dto.FromBooking(b),
	})
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	providerID, ok := queryUint(c, "provider_id")
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), providerID, c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": dto.FromBookings(list)})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": dto.FromBooking(b)})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), middleware.Actor(c), id, req.Status, req.Reason)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": dto.FromBooking(b),
	})
}

// ======================================================
// RATING
// ======================================================

func (h *BookingHandler) Rate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.rate.Execute(c.Request.Context(), middleware.Actor(c), id, req.Rating, req.Review)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating submitted successfully",
		"booking": dto.FromBooking(b),
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Booking deleted successfully")
}
