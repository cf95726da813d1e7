package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	providerdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/provider"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/usecase/provider"
)

type statsRepo struct {
	providers []models.User
	stats     map[uint]providerdomain.Stats
	reviews   int
}

func (r *statsRepo) GetProvider(_ context.Context, id uint) (*models.User, error) {
	for _, p := range r.providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *statsRepo) ListProviders(context.Context) ([]models.User, error) {
	return append([]models.User(nil), r.providers...), nil
}

func (r *statsRepo) ListServicesByProvider(_ context.Context, id uint) ([]models.Service, error) {
	return []models.Service{{ID: 1, ProviderID: id, Title: "Deep clean"}}, nil
}

func (r *statsRepo) StatsFor(_ context.Context, ids []uint) (map[uint]providerdomain.Stats, error) {
	out := make(map[uint]providerdomain.Stats, len(ids))
	for _, id := range ids {
		if s, ok := r.stats[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (r *statsRepo) RecentReviews(_ context.Context, _ uint, limit int) ([]models.Booking, error) {
	r.reviews = limit
	return nil, nil
}

func (r *statsRepo) Analytics(_ context.Context, id uint) (*providerdomain.Analytics, error) {
	return &providerdomain.Analytics{TotalBookings: int64(id)}, nil
}

func newStatsRepo() *statsRepo {
	return &statsRepo{
		providers: []models.User{
			{ID: 1, Name: "Low"},
			{ID: 2, Name: "Busy"},
			{ID: 3, Name: "Quiet"},
			{ID: 4, Name: "Blocked", Blocked: true},
			{ID: 5, Name: "New"},
		},
		stats: map[uint]providerdomain.Stats{
			1: {AverageRating: 3.5, TotalBookings: 40},
			2: {AverageRating: 4.8, TotalBookings: 30},
			3: {AverageRating: 4.8, TotalBookings: 2},
			4: {AverageRating: 5.0, TotalBookings: 99},
		},
	}
}

func names(list []providerdomain.Summary) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Provider.Name)
	}
	return out
}

func TestTopProviders_Ranking(t *testing.T) {
	list, err := provider.NewTopProviders(newStatsRepo()).Execute(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Busy", "Quiet", "Low", "New"}, names(list))
}

func TestTopProviders_Limit(t *testing.T) {
	repo := newStatsRepo()
	for i := uint(10); i < 30; i++ {
		repo.providers = append(repo.providers, models.User{ID: i, Name: "p"})
	}

	list, err := provider.NewTopProviders(repo).Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Busy", "Quiet"}, names(list))

	list, err = provider.NewTopProviders(repo).Execute(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, list, provider.MaxTopLimit)
}

func TestListSummaries_ZeroStatsForNewProviders(t *testing.T) {
	list, err := provider.NewListSummaries(newStatsRepo()).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 5)
	assert.Equal(t, "New", list[4].Provider.Name)
	assert.Zero(t, list[4].Stats.TotalBookings)
	assert.True(t, list[3].Provider.Blocked, "admin listing keeps blocked providers")
}

func TestGetProfile(t *testing.T) {
	repo := newStatsRepo()

	p, err := provider.NewGetProfile(repo).Execute(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Busy", p.Provider.Name)
	assert.Equal(t, 4.8, p.Stats.AverageRating)
	assert.Len(t, p.Services, 1)
	assert.Equal(t, provider.MaxReviews, repo.reviews)

	_, err = provider.NewGetProfile(repo).Execute(context.Background(), 404)
	assert.True(t, httperr.Is(err, "provider_not_found"))
}

func TestGetAnalytics_ProvidersOnly(t *testing.T) {
	uc := provider.NewGetAnalytics(newStatsRepo())

	a, err := uc.Execute(context.Background(), domain.Actor{ID: 2, Role: models.RoleProvider})
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.TotalBookings)

	_, err = uc.Execute(context.Background(), domain.Actor{ID: 20, Role: models.RoleCustomer})
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
}
