package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/admin"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

// Dashboard counts and sums over the full tables on every call.
func (r *AdminGormRepository) Dashboard(ctx context.Context) (*admin.Dashboard, error) {
	db := r.db.WithContext(ctx)
	d := &admin.Dashboard{}

	counts := []struct {
		dst   *int64
		model any
		where string
		arg   any
	}{
		{&d.TotalCustomers, &models.User{}, "role = ?", models.RoleCustomer},
		{&d.TotalProviders, &models.User{}, "role = ?", models.RoleProvider},
		{&d.TotalServices, &models.Service{}, "", nil},
		{&d.TotalBookings, &models.Booking{}, "", nil},
		{&d.CompletedBookings, &models.Booking{}, "status = ?", string(booking.StatusCompleted)},
		{&d.PendingBookings, &models.Booking{}, "status = ?", string(booking.StatusPending)},
	}

	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != "" {
			q = q.Where(c.where, c.arg)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("payment_status = ?", string(booking.PaymentPaid)).
		Scan(&d.TotalRevenue).Error; err != nil {
		return nil, err
	}
	d.TotalRevenue = booking.Round2(d.TotalRevenue)

	return d, nil
}

func (r *AdminGormRepository) DeleteProviderCascade(ctx context.Context, providerID uint) (*admin.CascadeResult, error) {
	res := &admin.CascadeResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.User
		if err := tx.
			Where("id = ? AND role = ?", providerID, models.RoleProvider).
			First(&p).Error; err != nil {
			return notFound(err)
		}

		bookings := tx.Where("provider_id = ?", providerID).Delete(&models.Booking{})
		if bookings.Error != nil {
			return bookings.Error
		}
		res.BookingsDeleted = bookings.RowsAffected

		services := tx.Where("provider_id = ?", providerID).Delete(&models.Service{})
		if services.Error != nil {
			return services.Error
		}
		res.ServicesDeleted = services.RowsAffected

		return deleted(tx.Delete(&models.User{}, providerID))
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *AdminGormRepository) DeleteCustomerCascade(ctx context.Context, customerID uint) (*admin.CascadeResult, error) {
	res := &admin.CascadeResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.
			Where("id = ? AND role = ?", customerID, models.RoleCustomer).
			First(&u).Error; err != nil {
			return notFound(err)
		}

		bookings := tx.Where("customer_id = ?", customerID).Delete(&models.Booking{})
		if bookings.Error != nil {
			return bookings.Error
		}
		res.BookingsDeleted = bookings.RowsAffected

		return deleted(tx.Delete(&models.User{}, customerID))
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *AdminGormRepository) ListAuditLogs(ctx context.Context, f admin.AuditFilter) ([]models.AuditLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.ResourceType != "" {
		q = q.Where("resource_type = ?", f.ResourceType)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		// inclusive of the whole "to" day
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

var _ admin.Repository = (*AdminGormRepository)(nil)
