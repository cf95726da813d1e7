package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/provider"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type ProviderGormRepository struct {
	db *gorm.DB
}

func NewProviderGormRepository(db *gorm.DB) *ProviderGormRepository {
	return &ProviderGormRepository{db: db}
}

func (r *ProviderGormRepository) GetProvider(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleProvider).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *ProviderGormRepository) ListProviders(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleProvider).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProviderGormRepository) ListServicesByProvider(ctx context.Context, providerID uint) ([]models.Service, error) {
	var out []models.Service
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// StatsFor aggregates the ledger for every id in one pass per table.
func (r *ProviderGormRepository) StatsFor(ctx context.Context, providerIDs []uint) (map[uint]provider.Stats, error) {
	out := make(map[uint]provider.Stats, len(providerIDs))
	if len(providerIDs) == 0 {
		return out, nil
	}

	var bookingRows []struct {
		ProviderID uint
		Total      int64
		Completed  int64
		Responded  int64
		Earnings   float64
		AvgRating  float64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(`provider_id,
			COUNT(*) AS total,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN status IN ? THEN 1 ELSE 0 END) AS responded,
			COALESCE(SUM(CASE WHEN status = ? THEN total_price ELSE 0 END), 0) AS earnings,
			COALESCE(AVG(rating), 0) AS avg_rating`,
			string(domain.StatusCompleted),
			[]string{
				string(domain.StatusAccepted),
				string(domain.StatusRejected),
				string(domain.StatusCompleted),
			},
			string(domain.StatusCompleted),
		).
		Where("provider_id IN ?", providerIDs).
		Group("provider_id").
		Scan(&bookingRows).Error; err != nil {
		return nil, err
	}

	var serviceRows []struct {
		ProviderID uint
		Total      int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Select("provider_id, COUNT(*) AS total").
		Where("provider_id IN ?", providerIDs).
		Group("provider_id").
		Scan(&serviceRows).Error; err != nil {
		return nil, err
	}

	for _, row := range bookingRows {
		s := out[row.ProviderID]
		s.TotalBookings = row.Total
		s.CompletedBookings = row.Completed
		s.RespondedBookings = row.Responded
		s.TotalEarnings = row.Earnings
		s.AverageRating = row.AvgRating
		out[row.ProviderID] = s
	}
	for _, row := range serviceRows {
		s := out[row.ProviderID]
		s.TotalServices = row.Total
		out[row.ProviderID] = s
	}

	for id, s := range out {
		s.Finish()
		out[id] = s
	}
	return out, nil
}

func (r *ProviderGormRepository) RecentReviews(ctx context.Context, providerID uint, limit int) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"provider_id = ? AND status = ? AND rating IS NOT NULL",
			providerID, string(domain.StatusCompleted),
		).
		Order("updated_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProviderGormRepository) Analytics(ctx context.Context, providerID uint) (*provider.Analytics, error) {
	var statusRows []struct {
		Status string
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS total").
		Where("provider_id = ?", providerID).
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}

	var totals struct {
		Earnings  float64
		AvgRating float64
		Rated     int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(`COALESCE(SUM(CASE WHEN status = ? THEN total_price ELSE 0 END), 0) AS earnings,
			COALESCE(AVG(rating), 0) AS avg_rating,
			COUNT(rating) AS rated`,
			string(domain.StatusCompleted),
		).
		Where("provider_id = ?", providerID).
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	a := &provider.Analytics{
		ByStatus:      make(map[string]int64, len(statusRows)),
		Earnings:      domain.Round2(totals.Earnings),
		AverageRating: totals.AvgRating,
		RatedBookings: totals.Rated,
	}
	for _, row := range statusRows {
		a.ByStatus[row.Status] = row.Total
		a.TotalBookings += row.Total
	}
	return a, nil
}

var _ provider.Repository = (*ProviderGormRepository)(nil)
