package petpooja

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/petpoojaclient/mocks"
	"github.com/vfg2006/sales-data-sync/internal/config"
	"github.com/vfg2006/sales-data-sync/internal/domain"
)

func TestPetpoojaService_GetSalesData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	cfg := &config.Config{
		Petpooja: config.Petpooja{
			AppKey:      "key",
			AppSecret:   "secret",
			AccessToken: "token",
			RestID:      "rest",
		},
		Fetch: config.Fetch{MaxAttempts: 4},
	}

	period, err := domain.ParseSalesPeriod("2024-01-01", "2024-01-01")
	require.NoError(t, err)

	expected := &petpoojadomain.SalesPayload{Records: []petpoojadomain.SalesRecord{petpoojadomain.NewSalesRecord()}}

	client.EXPECT().GetSalesData(gomock.Any(), petpoojadomain.SalesDataParams{
		AppKey:      "key",
		AppSecret:   "secret",
		AccessToken: "token",
		RestID:      "rest",
		Period:      period,
	}, 4).Return(expected, nil)

	payload, err := New(cfg, client).GetSalesData(context.Background(), period)

	require.NoError(t, err)
	assert.Same(t, expected, payload)
}
