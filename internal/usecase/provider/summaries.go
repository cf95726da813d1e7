package provider

import (
	"context"
	"sort"

	providerdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/provider"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// ListSummaries returns every provider with ledger stats, newest first.
// Admin views share it.
type ListSummaries struct {
	repo providerdomain.Repository
}

func NewListSummaries(repo providerdomain.Repository) *ListSummaries {
	return &ListSummaries{repo: repo}
}

func (uc *ListSummaries) Execute(ctx context.Context) ([]providerdomain.Summary, error) {
	providers, err := uc.repo.ListProviders(ctx)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_providers", err)
	}

	ids := make([]uint, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}

	stats, err := uc.repo.StatsFor(ctx, ids)
	if err != nil {
		return nil, httperr.Internal("failed_to_compute_stats", err)
	}

	out := make([]providerdomain.Summary, 0, len(providers))
	for _, p := range providers {
		out = append(out, providerdomain.Summary{
			Provider: p,
			Stats:    stats[p.ID],
		})
	}
	return out, nil
}

// ======================================================
// TOP PROVIDERS
// ======================================================

const (
	DefaultTopLimit = 6
	MaxTopLimit     = 12
)

type TopProviders struct {
	list *ListSummaries
}

func NewTopProviders(repo providerdomain.Repository) *TopProviders {
	return &TopProviders{list: NewListSummaries(repo)}
}

// Execute ranks by average rating, then by bookings. Blocked providers are
// left out.
func (uc *TopProviders) Execute(ctx context.Context, limit int) ([]providerdomain.Summary, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	all, err := uc.list.Execute(ctx)
	if err != nil {
		return nil, err
	}

	visible := all[:0]
	for _, s := range all {
		if !s.Provider.Blocked {
			visible = append(visible, s)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i].Stats, visible[j].Stats
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		return a.TotalBookings > b.TotalBookings
	})

	if len(visible) > limit {
		visible = visible[:limit]
	}
	return visible, nil
}
