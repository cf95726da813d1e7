package admin

import (
	"context"

	admindomain "github.com/BruksfildServices01/service-marketplace/internal/domain/admin"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type GetDashboard struct {
	repo admindomain.Repository
}

func NewGetDashboard(repo admindomain.Repository) *GetDashboard {
	return &GetDashboard{repo: repo}
}

func (uc *GetDashboard) Execute(ctx context.Context) (*admindomain.Dashboard, error) {
	d, err := uc.repo.Dashboard(ctx)
	if err != nil {
		return nil, httperr.Internal("failed_to_load_dashboard", err)
	}
	return d, nil
}

// ======================================================
// AUDIT LOGS
// ======================================================

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type ListAuditLogs struct {
	repo admindomain.Repository
}

func NewListAuditLogs(repo admindomain.Repository) *ListAuditLogs {
	return &ListAuditLogs{repo: repo}
}

type AuditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (uc *ListAuditLogs) Execute(ctx context.Context, f admindomain.AuditFilter) (*AuditPage, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxAuditLimit {
		f.Limit = defaultAuditLimit
	}

	logs, total, err := uc.repo.ListAuditLogs(ctx, f)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_audit_logs", err)
	}

	return &AuditPage{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Logs:  logs,
	}, nil
}
