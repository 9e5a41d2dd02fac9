package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalesPeriod(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantFrom string
		wantTo   string
		wantErr  error
	}{
		{
			name:     "data e hora completas",
			from:     "2024-01-01 08:00:00",
			to:       "2024-01-01 18:30:00",
			wantFrom: "2024-01-01 08:00:00",
			wantTo:   "2024-01-01 18:30:00",
		},
		{
			name:     "apenas datas vão até o fim do dia",
			from:     "2024-01-01",
			to:       "2024-01-31",
			wantFrom: "2024-01-01 00:00:00",
			wantTo:   "2024-01-31 23:59:59",
		},
		{
			name:     "mesmo dia",
			from:     "2024-01-05",
			to:       "2024-01-05",
			wantFrom: "2024-01-05 00:00:00",
			wantTo:   "2024-01-05 23:59:59",
		},
		{name: "from ausente", to: "2024-01-01", wantErr: ErrPeriodRequired},
		{name: "to ausente", from: "2024-01-01", wantErr: ErrPeriodRequired},
		{name: "período invertido", from: "2024-02-01", to: "2024-01-01", wantErr: ErrPeriodInverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ParseSalesPeriod(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, period.FromString())
			assert.Equal(t, tt.wantTo, period.ToString())
		})
	}
}

func TestParseSalesPeriod_InvalidFormat(t *testing.T) {
	_, err := ParseSalesPeriod("01/01/2024", "2024-01-31")
	assert.Error(t, err)

	_, err = ParseSalesPeriod("2024-01-01", "amanhã")
	assert.Error(t, err)
}

func TestPreviousDaysPeriod(t *testing.T) {
	now := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)

	period := PreviousDaysPeriod(now, 1)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), period.From)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), period.To)

	period = PreviousDaysPeriod(now, 7)
	assert.Equal(t, time.Date(2024, 2, 23, 0, 0, 0, 0, time.UTC), period.From)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), period.To)

	assert.Equal(t, PreviousDaysPeriod(now, 1), PreviousDaysPeriod(now, 0))
}

func TestSalesPeriod_Validate(t *testing.T) {
	assert.ErrorIs(t, SalesPeriod{}.Validate(), ErrPeriodRequired)

	now := time.Now()
	assert.NoError(t, SalesPeriod{From: now, To: now}.Validate())
	assert.ErrorIs(t, SalesPeriod{From: now, To: now.Add(-time.Second)}.Validate(), ErrPeriodInverted)
}
