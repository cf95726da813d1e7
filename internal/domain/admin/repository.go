package admin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Dashboard struct {
	TotalCustomers    int64   `json:"total_customers"`
	TotalProviders    int64   `json:"total_providers"`
	TotalServices     int64   `json:"total_services"`
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type CascadeResult struct {
	ServicesDeleted int64 `json:"services_count"`
	BookingsDeleted int64 `json:"bookings_count"`
}

// AuditFilter narrows the audit log listing. Zero values are ignored.
type AuditFilter struct {
	Action       string
	ResourceType string
	From         *time.Time
	To           *time.Time
	Page         int
	Limit        int
}

type Repository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)

	// DeleteProviderCascade removes the provider's services, the bookings
	// referencing the provider and the user row in one transaction.
	DeleteProviderCascade(ctx context.Context, providerID uint) (*CascadeResult, error)

	// DeleteCustomerCascade removes the customer's bookings and the user row
	// in one transaction.
	DeleteCustomerCascade(ctx context.Context, customerID uint) (*CascadeResult, error)

	ListAuditLogs(ctx context.Context, f AuditFilter) ([]models.AuditLog, int64, error)
}
