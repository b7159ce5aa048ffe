package audit

import (
	"context"

	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
)

// ListActivity pages the audit trail of one actor, newest first.
type ListActivity struct {
	store Store
}

func NewListActivity(store Store) *ListActivity {
	return &ListActivity{store: store}
}

func (uc *ListActivity) Execute(
	ctx context.Context,
	actorID string,
	action string,
	p pagination.Params,
) (pagination.Result[models.AuditLog], error) {

	if actorID == "" {
		return pagination.Result[models.AuditLog]{}, httperr.Authentication("Not authenticated")
	}

	logs, total, err := uc.store.ListAuditLogs(ctx, actorID, action, p)
	if err != nil {
		return pagination.Result[models.AuditLog]{}, httperr.Internal(err)
	}
	return pagination.NewResult(logs, p, total), nil
}
