package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	shared "github.com/BruksfildServices01/service-marketplace/internal/domain"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func withParties(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Customer").
		Preload("Provider").
		Preload("Service")
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := withParties(r.db.WithContext(ctx)).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

// ChangeStatus writes the lifecycle columns of b if the stored status is
// still from.
func (r *BookingGormRepository) ChangeStatus(
	ctx context.Context,
	b *models.Booking,
	from domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, string(from)).
		Updates(map[string]any{
			"status":              b.Status,
			"cancelled_at":        b.CancelledAt,
			"cancelled_by":        b.CancelledBy,
			"cancellation_reason": b.CancellationReason,
			"completed_at":        b.CompletedAt,
		})

	return r.guarded(ctx, res, b.ID)
}

func (r *BookingGormRepository) SetRating(
	ctx context.Context,
	id uint,
	rating int,
	review string,
	when []domain.Status,
) error {

	statuses := make([]string, 0, len(when))
	for _, st := range when {
		statuses = append(statuses, string(st))
	}

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status IN ?", id, statuses).
		Updates(map[string]any{
			"rating": rating,
			"review": review,
		})

	return r.guarded(ctx, res, id)
}

func (r *BookingGormRepository) SetPaymentStatus(
	ctx context.Context,
	id uint,
	from, to domain.PaymentStatus,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND payment_status = ?", id, string(from)).
		Update("payment_status", string(to))

	return r.guarded(ctx, res, id)
}

// guarded tells a lost race apart from a missing row.
func (r *BookingGormRepository) guarded(ctx context.Context, res *gorm.DB, id uint) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return shared.ErrNotFound
	}
	return shared.ErrConflict
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Booking{}, id))
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := withParties(r.db.WithContext(ctx))

	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.ProviderID != nil {
		q = q.Where("provider_id = ?", *f.ProviderID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var out []models.Booking
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Notifications
// --------------------------------------------------

func (r *BookingGormRepository) ListPendingForProvider(
	ctx context.Context,
	providerID uint,
	since time.Time,
	limit int,
) ([]models.Booking, error) {

	var out []models.Booking
	err := withParties(r.db.WithContext(ctx)).
		Where(
			"provider_id = ? AND status = ? AND created_at >= ?",
			providerID, string(domain.StatusPending), since,
		).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error

	return out, err
}

func (r *BookingGormRepository) ListUpdatedForCustomer(
	ctx context.Context,
	customerID uint,
	since time.Time,
	statuses []string,
	limit int,
) ([]models.Booking, error) {

	var out []models.Booking
	err := withParties(r.db.WithContext(ctx)).
		Where(
			"customer_id = ? AND updated_at >= ? AND status IN ?",
			customerID, since, statuses,
		).
		Order("updated_at DESC").
		Limit(limit).
		Find(&out).Error

	return out, err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
