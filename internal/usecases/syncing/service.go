package syncing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja"
	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	"github.com/vfg2006/sales-data-sync/infrastructure/repository"
	"github.com/vfg2006/sales-data-sync/internal/domain"
	"github.com/vfg2006/sales-data-sync/pkg/log"
	"github.com/vfg2006/sales-data-sync/pkg/utils"
)

type Syncer interface {
	Run(ctx context.Context, period domain.SalesPeriod, destination string) (*domain.SyncResult, error)
}

type Service struct {
	integrator petpooja.PetpoojaIntegrator
	salesRepo  repository.SalesDataRepository
	now        func() time.Time
}

func NewService(integrator petpooja.PetpoojaIntegrator, salesRepo repository.SalesDataRepository) *Service {
	return &Service{
		integrator: integrator,
		salesRepo:  salesRepo,
		now:        time.Now,
	}
}

// Run busca as vendas do período e carrega no destino. A carga só acontece
// quando a busca devolveu um payload; o resultado é preenchido mesmo em caso de erro.
func (s *Service) Run(ctx context.Context, period domain.SalesPeriod, destination string) (*domain.SyncResult, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	if log.GetCorrelationID(ctx) == "" {
		ctx, _ = log.WithCorrelationID(ctx)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id":      runID,
		"destination": destination,
	})

	result := &domain.SyncResult{
		RunID:       runID,
		From:        period.FromString(),
		To:          period.ToString(),
		Destination: destination,
		StartedAt:   s.now(),
	}

	logger.Infof("Iniciando sincronização de vendas para o período %s", period)

	payload, err := s.integrator.GetSalesData(ctx, period)
	if err != nil {
		result.Status = domain.SyncStatusFetchFailed
		result.Error = err.Error()
		result.FinishedAt = s.now()
		logger.WithError(err).Error("Falha ao buscar dados de vendas, carga não executada")
		return result, err
	}

	if payload == nil {
		payload = &petpoojadomain.SalesPayload{}
	}

	result.Fetched = payload.Len()
	result.NetSaleTotal = NetSaleTotal(payload.Records)

	if err := s.salesRepo.Load(ctx, payload, destination); err != nil {
		result.Status = domain.SyncStatusLoadFailed
		result.Error = err.Error()
		result.FinishedAt = s.now()
		return result, err
	}

	result.Status = domain.SyncStatusSuccess
	result.Loaded = payload.Len()
	result.FinishedAt = s.now()

	logger.WithField("records", result.Loaded).Info("Sincronização de vendas concluída")

	return result, nil
}

// NetSaleTotal soma o net_sale dos registros com duas casas decimais
func NetSaleTotal(records []petpoojadomain.SalesRecord) float64 {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(decimal.NewFromFloat(record.NetSale))
	}

	value, _ := total.Round(2).Float64()
	return value
}
