package petpooja

import (
	"context"

	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/petpoojaclient"
	"github.com/vfg2006/sales-data-sync/internal/config"
	"github.com/vfg2006/sales-data-sync/internal/domain"
)

type PetpoojaIntegrator interface {
	GetSalesData(ctx context.Context, period domain.SalesPeriod) (*petpoojadomain.SalesPayload, error)
}

type PetpoojaService struct {
	cfg    *config.Config
	Client petpoojaclient.Client
}

func New(cfg *config.Config, client petpoojaclient.Client) PetpoojaIntegrator {
	return &PetpoojaService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PetpoojaService) GetSalesData(ctx context.Context, period domain.SalesPeriod) (*petpoojadomain.SalesPayload, error) {
	params := petpoojadomain.SalesDataParams{
		AppKey:      s.cfg.Petpooja.AppKey,
		AppSecret:   s.cfg.Petpooja.AppSecret,
		AccessToken: s.cfg.Petpooja.AccessToken,
		RestID:      s.cfg.Petpooja.RestID,
		Period:      period,
	}

	return s.Client.GetSalesData(ctx, params, s.cfg.Fetch.MaxAttempts)
}
