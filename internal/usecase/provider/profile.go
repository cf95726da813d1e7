package provider

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	providerdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/provider"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

const MaxReviews = 10

type GetProfile struct {
	repo providerdomain.Repository
}

func NewGetProfile(repo providerdomain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, providerID uint) (*providerdomain.Profile, error) {
	p, err := uc.repo.GetProvider(ctx, providerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound("provider_not_found", "Provider not found.")
	}
	if err != nil {
		return nil, httperr.Internal("failed_to_get_provider", err)
	}

	services, err := uc.repo.ListServicesByProvider(ctx, p.ID)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_services", err)
	}

	stats, err := uc.repo.StatsFor(ctx, []uint{p.ID})
	if err != nil {
		return nil, httperr.Internal("failed_to_compute_stats", err)
	}

	reviews, err := uc.repo.RecentReviews(ctx, p.ID, MaxReviews)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_reviews", err)
	}

	return &providerdomain.Profile{
		Summary: providerdomain.Summary{
			Provider: *p,
			Stats:    stats[p.ID],
		},
		Services: services,
		Reviews:  reviews,
	}, nil
}

// ======================================================
// ANALYTICS
// ======================================================

type GetAnalytics struct {
	repo providerdomain.Repository
}

func NewGetAnalytics(repo providerdomain.Repository) *GetAnalytics {
	return &GetAnalytics{repo: repo}
}

func (uc *GetAnalytics) Execute(ctx context.Context, actor domain.Actor) (*providerdomain.Analytics, error) {
	if actor.Role != models.RoleProvider {
		return nil, httperr.Forbidden("providers_only", "Provider access required.")
	}

	a, err := uc.repo.Analytics(ctx, actor.ID)
	if err != nil {
		return nil, httperr.Internal("failed_to_compute_analytics", err)
	}
	return a, nil
}
