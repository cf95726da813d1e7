package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	admindomain "github.com/BruksfildServices01/service-marketplace/internal/domain/admin"
	catalogdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/dto"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	"github.com/BruksfildServices01/service-marketplace/internal/timezone"
	ucAdmin "github.com/BruksfildServices01/service-marketplace/internal/usecase/admin"
	ucBooking "github.com/BruksfildServices01/service-marketplace/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
	ucProvider "github.com/BruksfildServices01/service-marketplace/internal/usecase/provider"
)

// ======================================================
// HANDLER
// ======================================================

// AdminUseCases groups what the admin area needs; the catalog and booking
// use cases are shared with the regular routes.
type AdminUseCases struct {
	Dashboard      *ucAdmin.GetDashboard
	ListUsers      *ucAdmin.ListUsers
	GetUser        *ucAdmin.GetUser
	SetBlocked     *ucAdmin.SetBlocked
	DeleteUser     *ucAdmin.DeleteUser
	DeleteProvider *ucAdmin.DeleteProvider
	AuditLogs      *ucAdmin.ListAuditLogs

	Providers     *ucProvider.ListSummaries
	ListServices  *ucCatalog.ListServices
	DeleteService *ucCatalog.DeleteService
	ListBookings  *ucBooking.ListBookings
	DeleteBooking *ucBooking.DeleteBooking
	UpdatePayment *ucBooking.UpdatePaymentStatus
}

type AdminHandler struct {
	uc AdminUseCases
}

func NewAdminHandler(uc AdminUseCases) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateUserRequest struct {
	Blocked *bool  `json:"blocked" binding:"required"`
	Reason  string `json:"reason"`
}

type DeleteProviderRequest struct {
	ProviderID uint `json:"provider_id" binding:"required"`
}

type DeleteServiceRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

type DeleteBookingRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.uc.Dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"stats": d})
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	list, err := h.uc.ListUsers.Execute(c.Request.Context(), c.Query("role"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromUsers(list))
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	u, err := h.uc.GetUser.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": dto.FromUser(u)})
}

// UpdateUser blocks or unblocks.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	if *req.Blocked {
		u, err := h.uc.SetBlocked.Block(ctx, actor, id, req.Reason)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		httpresp.OK(c, gin.H{"message": "User blocked successfully", "user": dto.FromUser(u)})
		return
	}

	u, err := h.uc.SetBlocked.Unblock(ctx, actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"message": "User unblocked successfully", "user": dto.FromUser(u)})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.uc.DeleteUser.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"message": "User deleted successfully", "deleted": res})
}

// ======================================================
// PROVIDERS
// ======================================================

func (h *AdminHandler) ListProviders(c *gin.Context) {
	list, err := h.uc.Providers.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromSummaries(list))
}

func (h *AdminHandler) DeleteProvider(c *gin.Context) {
	var req DeleteProviderRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.uc.DeleteProvider.Execute(c.Request.Context(), middleware.Actor(c), req.ProviderID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Provider deleted successfully", "deleted": res})
}

// ======================================================
// SERVICES
// ======================================================

func (h *AdminHandler) ListServices(c *gin.Context) {
	list, err := h.uc.ListServices.Execute(c.Request.Context(), catalogdomain.Filter{})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromServices(list))
}

func (h *AdminHandler) DeleteService(c *gin.Context) {
	var req DeleteServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.uc.DeleteService.Execute(c.Request.Context(), middleware.Actor(c), req.ServiceID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Service deleted successfully")
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	list, err := h.uc.ListBookings.Execute(c.Request.Context(), middleware.Actor(c), nil, c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromBookings(list))
}

func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	var req DeleteBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.uc.DeleteBooking.Execute(c.Request.Context(), middleware.Actor(c), req.BookingID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Booking deleted successfully")
}

func (h *AdminHandler) UpdatePayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.uc.UpdatePayment.Execute(c.Request.Context(), middleware.Actor(c), id, req.PaymentStatus)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Payment status updated", "booking": dto.FromBooking(b)})
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	f := admindomain.AuditFilter{
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		Page:         atoiOr(c.Query("page"), 1),
		Limit:        atoiOr(c.Query("limit"), 50),
	}

	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(timezone.DateLayout, raw); err == nil {
			f.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(timezone.DateLayout, raw); err == nil {
			f.To = &to
		}
	}

	page, err := h.uc.AuditLogs.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, page)
}
