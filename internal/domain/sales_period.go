package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/sales-data-sync/pkg/utils"
)

const SalesDateTimeLayout = utils.DateTimeLayout

var (
	ErrPeriodRequired = errors.New("período de vendas é obrigatório (from_date e to_date)")
	ErrPeriodInverted = errors.New("from_date deve ser anterior ou igual a to_date")
)

// SalesPeriod é o intervalo explícito de uma busca de vendas
type SalesPeriod struct {
	From time.Time `json:"from_date"`
	To   time.Time `json:"to_date"`
}

// ParseSalesPeriod converte as duas pontas do período.
// Quando to_date vem sem hora, o período vai até 23:59:59 daquele dia.
func ParseSalesPeriod(from, to string) (SalesPeriod, error) {
	if from == "" || to == "" {
		return SalesPeriod{}, ErrPeriodRequired
	}

	fromDate, _, err := utils.ParseDateTime(from)
	if err != nil {
		return SalesPeriod{}, fmt.Errorf("from_date inválido %q: %w", from, err)
	}

	toDate, dateOnly, err := utils.ParseDateTime(to)
	if err != nil {
		return SalesPeriod{}, fmt.Errorf("to_date inválido %q: %w", to, err)
	}

	if dateOnly {
		toDate = utils.EndOfDay(toDate)
	}

	period := SalesPeriod{From: fromDate, To: toDate}
	if err := period.Validate(); err != nil {
		return SalesPeriod{}, err
	}

	return period, nil
}

// PreviousDaysPeriod retorna os últimos `days` dias completos antes de `now`
func PreviousDaysPeriod(now time.Time, days int) SalesPeriod {
	if days < 1 {
		days = 1
	}

	yesterday := now.AddDate(0, 0, -1)

	return SalesPeriod{
		From: utils.StartOfDay(now.AddDate(0, 0, -days)),
		To:   utils.EndOfDay(yesterday),
	}
}

func (p SalesPeriod) Validate() error {
	if p.From.IsZero() || p.To.IsZero() {
		return ErrPeriodRequired
	}

	if p.From.After(p.To) {
		return ErrPeriodInverted
	}

	return nil
}

func (p SalesPeriod) FromString() string {
	return p.From.Format(SalesDateTimeLayout)
}

func (p SalesPeriod) ToString() string {
	return p.To.Format(SalesDateTimeLayout)
}

func (p SalesPeriod) String() string {
	return fmt.Sprintf("%s → %s", p.FromString(), p.ToString())
}
