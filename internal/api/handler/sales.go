package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/sales-data-sync/internal/domain"
	"github.com/vfg2006/sales-data-sync/internal/scheduler"
	"github.com/vfg2006/sales-data-sync/pkg/apiErrors"
	"github.com/vfg2006/sales-data-sync/pkg/log"
)

// SalesSyncService é o que a API precisa do agendador de vendas
type SalesSyncService interface {
	RunSync(ctx context.Context, period domain.SalesPeriod, destination string) (*domain.SyncResult, error)
	TriggerManualSync() bool
	GetStatus(ctx context.Context) map[string]any
}

type SyncSalesRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// SyncSales executa uma sincronização síncrona para o período informado
func SyncSales(service SalesSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - SyncSales")

		var req SyncSalesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		period, err := domain.ParseSalesPeriod(req.FromDate, req.ToDate)
		if err != nil {
			if errors.Is(err, domain.ErrPeriodRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := service.RunSync(r.Context(), period, "")
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
				return
			}

			code := apiErrors.ErrInternalServer
			if result != nil {
				switch result.Status {
				case domain.SyncStatusFetchFailed:
					code = apiErrors.ErrExternalService
				case domain.SyncStatusLoadFailed:
					code = apiErrors.ErrDatabaseOperation
				}
			}

			logger.WithError(err).Error("Falha na sincronização de vendas via API")
			apiErrors.WriteError(w, code, err.Error(), result)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
