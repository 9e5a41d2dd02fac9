package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	petpoojamocks "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/mocks"
	"github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/petpoojaclient"
	"github.com/vfg2006/sales-data-sync/infrastructure/repository"
	"github.com/vfg2006/sales-data-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-data-sync/internal/domain"
	"github.com/vfg2006/sales-data-sync/pkg/log"
)

func testPeriod(t *testing.T) domain.SalesPeriod {
	t.Helper()
	period, err := domain.ParseSalesPeriod("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	return period
}

func TestService_Run(t *testing.T) {
	period := testPeriod(t)

	payload := &petpoojadomain.SalesPayload{Records: []petpoojadomain.SalesRecord{
		{ReceiptNumber: "R1", NetSale: 10.1},
		{ReceiptNumber: "R2", NetSale: 20.2},
		{ReceiptNumber: "R3", NetSale: 0.005},
	}}

	tests := []struct {
		name     string
		setup    func(integrator *petpoojamocks.MockPetpoojaIntegrator, repo *mocks.MockSalesDataRepository)
		wantErr  error
		validate func(t *testing.T, result *domain.SyncResult)
	}{
		{
			name: "busca e carga com sucesso",
			setup: func(integrator *petpoojamocks.MockPetpoojaIntegrator, repo *mocks.MockSalesDataRepository) {
				integrator.EXPECT().GetSalesData(gomock.Any(), period).Return(payload, nil)
				repo.EXPECT().Load(gomock.Any(), payload, "sales.db").Return(nil)
			},
			validate: func(t *testing.T, result *domain.SyncResult) {
				assert.True(t, result.Succeeded())
				assert.Equal(t, 3, result.Fetched)
				assert.Equal(t, 3, result.Loaded)
				assert.Equal(t, 30.31, result.NetSaleTotal)
				assert.Equal(t, "2024-01-01 00:00:00", result.From)
				assert.Equal(t, "2024-01-31 23:59:59", result.To)
				assert.Empty(t, result.Error)
			},
		},
		{
			name: "falha na busca nunca chama a carga",
			setup: func(integrator *petpoojamocks.MockPetpoojaIntegrator, repo *mocks.MockSalesDataRepository) {
				integrator.EXPECT().GetSalesData(gomock.Any(), period).Return(nil, petpoojaclient.ErrFetchExhausted)
				repo.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: petpoojaclient.ErrFetchExhausted,
			validate: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, domain.SyncStatusFetchFailed, result.Status)
				assert.Zero(t, result.Loaded)
				assert.NotEmpty(t, result.Error)
			},
		},
		{
			name: "payload malformado nunca chama a carga",
			setup: func(integrator *petpoojamocks.MockPetpoojaIntegrator, repo *mocks.MockSalesDataRepository) {
				integrator.EXPECT().GetSalesData(gomock.Any(), period).
					Return(nil, &petpoojadomain.MalformedPayloadError{Err: errors.New("invalid"), Body: []byte("x")})
				repo.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, domain.SyncStatusFetchFailed, result.Status)
			},
		},
		{
			name: "falha na carga",
			setup: func(integrator *petpoojamocks.MockPetpoojaIntegrator, repo *mocks.MockSalesDataRepository) {
				integrator.EXPECT().GetSalesData(gomock.Any(), period).Return(payload, nil)
				repo.EXPECT().Load(gomock.Any(), payload, "sales.db").
					Return(&repository.LoadError{Stage: repository.StageInsert, RecordIndex: 1, Err: errors.New("boom")})
			},
			wantErr: repository.ErrLoadFailed,
			validate: func(t *testing.T, result *domain.SyncResult) {
				assert.Equal(t, domain.SyncStatusLoadFailed, result.Status)
				assert.Equal(t, 3, result.Fetched)
				assert.Zero(t, result.Loaded)
			},
		},
		{
			name: "zero registros ainda executa a carga",
			setup: func(integrator *petpoojamocks.MockPetpoojaIntegrator, repo *mocks.MockSalesDataRepository) {
				integrator.EXPECT().GetSalesData(gomock.Any(), period).Return(&petpoojadomain.SalesPayload{}, nil)
				repo.EXPECT().Load(gomock.Any(), gomock.Any(), "sales.db").Return(nil)
			},
			validate: func(t *testing.T, result *domain.SyncResult) {
				assert.True(t, result.Succeeded())
				assert.Zero(t, result.Fetched)
				assert.Zero(t, result.NetSaleTotal)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := petpoojamocks.NewMockPetpoojaIntegrator(ctrl)
			repo := mocks.NewMockSalesDataRepository(ctrl)
			tt.setup(integrator, repo)

			service := NewService(integrator, repo)
			result, err := service.Run(context.Background(), period, "sales.db")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			require.NotNil(t, result)
			assert.Len(t, result.RunID, 6)
			assert.Equal(t, "sales.db", result.Destination)
			tt.validate(t, result)
		})
	}
}

func TestService_Run_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(petpoojamocks.NewMockPetpoojaIntegrator(ctrl), mocks.NewMockSalesDataRepository(ctrl))

	result, err := service.Run(context.Background(), domain.SalesPeriod{}, "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrPeriodRequired)
}

func TestService_Run_PropagatesCorrelationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	period := testPeriod(t)
	integrator := petpoojamocks.NewMockPetpoojaIntegrator(ctrl)
	repo := mocks.NewMockSalesDataRepository(ctrl)

	integrator.EXPECT().GetSalesData(gomock.Any(), period).
		DoAndReturn(func(ctx context.Context, _ domain.SalesPeriod) (*petpoojadomain.SalesPayload, error) {
			assert.Equal(t, "req-123", log.GetCorrelationID(ctx))
			return &petpoojadomain.SalesPayload{}, nil
		})
	repo.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *petpoojadomain.SalesPayload, _ string) error {
			assert.Equal(t, "req-123", log.GetCorrelationID(ctx))
			return nil
		})

	ctx := context.WithValue(context.Background(), log.CorrelationIDKey, "req-123")
	service := NewService(integrator, repo)
	fixed := time.Date(2024, 2, 1, 4, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	result, err := service.Run(ctx, period, "")

	require.NoError(t, err)
	assert.Equal(t, fixed, result.StartedAt)
	assert.Equal(t, fixed, result.FinishedAt)
}

func TestNetSaleTotal(t *testing.T) {
	records := []petpoojadomain.SalesRecord{{NetSale: 0.1}, {NetSale: 0.2}, {NetSale: 0.3}}
	assert.Equal(t, 0.6, NetSaleTotal(records))
	assert.Zero(t, NetSaleTotal(nil))
}
