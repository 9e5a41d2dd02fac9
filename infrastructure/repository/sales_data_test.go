package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-data-sync/infrastructure/database"
	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	"github.com/vfg2006/sales-data-sync/internal/config"
)

func sqliteConfig(t *testing.T) config.Database {
	t.Helper()
	return config.Database{
		Driver: config.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "sales_data.db"),
	}
}

func record(receipt string, netSale float64) petpoojadomain.SalesRecord {
	r := petpoojadomain.NewSalesRecord()
	r.ReceiptNumber = receipt
	r.SaleDate = "2024-01-01"
	r.InvoiceAmount = netSale + 1
	r.NetSale = netSale
	return r
}

func readRows(t *testing.T, cfg config.Database) []petpoojadomain.SalesRecord {
	t.Helper()

	conn, err := database.Open(context.Background(), cfg, "")
	require.NoError(t, err)
	defer conn.Close()

	rows, err := conn.Query(`SELECT receipt_number, sale_date, transaction_time, sale_amount, tax_amount,
		discount_amount, round_off, net_sale, payment_mode, order_type, transaction_status
		FROM sales_data ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var records []petpoojadomain.SalesRecord
	for rows.Next() {
		var r petpoojadomain.SalesRecord
		require.NoError(t, rows.Scan(&r.ReceiptNumber, &r.SaleDate, &r.TransactionTime, &r.InvoiceAmount,
			&r.TaxAmount, &r.DiscountAmount, &r.RoundOff, &r.NetSale, &r.PaymentMode, &r.OrderType, &r.TransactionStatus))
		records = append(records, r)
	}
	require.NoError(t, rows.Err())

	return records
}

func TestLoad_InsertsAllRecordsInOrder(t *testing.T) {
	cfg := sqliteConfig(t)
	repo := NewSalesDataRepository(cfg)

	payload, err := petpoojadomain.DecodeSalesPayload([]byte(`{"data":[
		{"receipt_number":"R1","sale_date":"2024-01-01","transaction_time":"10:00:00","invoice_amount":"110.5","tax_amount":5,"discount_amount":0,"round_off":0.5,"net_sale":105,"payment_mode":"Cash","order_type":"Dine In","transaction_status":"Success"},
		{"receipt_number":"R2"},
		null
	]}`))
	require.NoError(t, err)

	err = repo.Load(context.Background(), payload, "")
	require.NoError(t, err)

	rows := readRows(t, cfg)
	require.Len(t, rows, 3)
	assert.Equal(t, payload.Records, rows)

	total, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestLoad_AppendsAcrossRuns(t *testing.T) {
	cfg := sqliteConfig(t)
	repo := NewSalesDataRepository(cfg)
	payload := &petpoojadomain.SalesPayload{Records: []petpoojadomain.SalesRecord{record("R1", 10)}}

	require.NoError(t, repo.Load(context.Background(), payload, ""))
	require.NoError(t, repo.Load(context.Background(), payload, ""))

	total, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestLoad_EmptyPayloadCreatesTable(t *testing.T) {
	cfg := sqliteConfig(t)
	repo := NewSalesDataRepository(cfg)

	require.NoError(t, repo.Load(context.Background(), &petpoojadomain.SalesPayload{}, ""))
	require.NoError(t, repo.Load(context.Background(), nil, ""))

	assert.Empty(t, readRows(t, cfg))
}

func TestLoad_UsesExplicitDestination(t *testing.T) {
	cfg := sqliteConfig(t)
	repo := NewSalesDataRepository(cfg)
	other := filepath.Join(t.TempDir(), "other.db")

	payload := &petpoojadomain.SalesPayload{Records: []petpoojadomain.SalesRecord{record("R1", 10)}}
	require.NoError(t, repo.Load(context.Background(), payload, other))

	total, err := repo.Count(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	total, err = repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestLoad_FailureRollsBackEverything(t *testing.T) {
	cfg := sqliteConfig(t)
	repo := NewSalesDataRepository(cfg)

	// tabela com registros anteriores e um trigger que rejeita um recibo específico
	require.NoError(t, repo.Load(context.Background(), &petpoojadomain.SalesPayload{
		Records: []petpoojadomain.SalesRecord{record("OLD", 1)},
	}, ""))

	conn, err := database.Open(context.Background(), cfg, "")
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE TRIGGER reject_boom BEFORE INSERT ON sales_data
		WHEN NEW.receipt_number = 'BOOM'
		BEGIN SELECT RAISE(ABORT, 'boom'); END`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	payload := &petpoojadomain.SalesPayload{Records: []petpoojadomain.SalesRecord{
		record("R1", 10),
		record("BOOM", 20),
		record("R3", 30),
	}}

	err = repo.Load(context.Background(), payload, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, StageInsert, loadErr.Stage)
	assert.Equal(t, 1, loadErr.RecordIndex)
	assert.NoError(t, loadErr.RollbackErr)
	assert.Contains(t, err.Error(), "boom")

	rows := readRows(t, cfg)
	require.Len(t, rows, 1)
	assert.Equal(t, "OLD", rows[0].ReceiptNumber)
}

func TestLoad_ConnectFailure(t *testing.T) {
	cfg := config.Database{
		Driver: config.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "missing", "dir", "sales.db"),
	}
	repo := NewSalesDataRepository(cfg)

	err := repo.Load(context.Background(), &petpoojadomain.SalesPayload{
		Records: []petpoojadomain.SalesRecord{record("R1", 1)},
	}, "")

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, StageConnect, loadErr.Stage)
	assert.Equal(t, -1, loadErr.RecordIndex)
}

func TestInsertStatement_Placeholders(t *testing.T) {
	sqliteSQL, err := insertStatement(database.DialectFor(config.DriverSQLite))
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO sales_data (receipt_number,sale_date,transaction_time,sale_amount,tax_amount,discount_amount,round_off,net_sale,payment_mode,order_type,transaction_status) VALUES (?,?,?,?,?,?,?,?,?,?,?)",
		sqliteSQL,
	)

	postgresSQL, err := insertStatement(database.DialectFor(config.DriverPostgres))
	require.NoError(t, err)
	assert.Contains(t, postgresSQL, "VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)")
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{
		Stage:       StageInsert,
		RecordIndex: 2,
		Err:         errors.New("constraint failed"),
		RollbackErr: errors.New("conn closed"),
	}

	assert.Contains(t, err.Error(), "registro 3")
	assert.Contains(t, err.Error(), "constraint failed")
	assert.Contains(t, err.Error(), "conn closed")
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestEnsureSalesDataSchema_Idempotent(t *testing.T) {
	cfg := sqliteConfig(t)

	require.NoError(t, EnsureSalesDataSchema(context.Background(), cfg, ""))
	require.NoError(t, EnsureSalesDataSchema(context.Background(), cfg, ""))

	assert.Empty(t, readRows(t, cfg))
}
