package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/sales-data-sync/infrastructure/database"
	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	"github.com/vfg2006/sales-data-sync/internal/config"
	"github.com/vfg2006/sales-data-sync/pkg/log"
	"github.com/vfg2006/sales-data-sync/pkg/metrics"
)

const salesDataTable = "sales_data"

var salesDataColumns = []string{
	"receipt_number",
	"sale_date",
	"transaction_time",
	"sale_amount",
	"tax_amount",
	"discount_amount",
	"round_off",
	"net_sale",
	"payment_mode",
	"order_type",
	"transaction_status",
}

const sqliteSalesDataSchema = `
	CREATE TABLE IF NOT EXISTS sales_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		receipt_number TEXT,
		sale_date TEXT,
		transaction_time TEXT,
		sale_amount REAL,
		tax_amount REAL,
		discount_amount REAL,
		round_off REAL,
		net_sale REAL,
		payment_mode TEXT,
		order_type TEXT,
		transaction_status TEXT
	)`

// REAL no Postgres é float4, DOUBLE PRECISION mantém a mesma precisão do SQLite
const postgresSalesDataSchema = `
	CREATE TABLE IF NOT EXISTS sales_data (
		id BIGSERIAL PRIMARY KEY,
		receipt_number TEXT,
		sale_date TEXT,
		transaction_time TEXT,
		sale_amount DOUBLE PRECISION,
		tax_amount DOUBLE PRECISION,
		discount_amount DOUBLE PRECISION,
		round_off DOUBLE PRECISION,
		net_sale DOUBLE PRECISION,
		payment_mode TEXT,
		order_type TEXT,
		transaction_status TEXT
	)`

type SalesDataRepository interface {
	Load(ctx context.Context, payload *petpoojadomain.SalesPayload, destination string) error
	Count(ctx context.Context, destination string) (int64, error)
}

type salesDataRepository struct {
	cfg config.Database
}

func NewSalesDataRepository(cfg config.Database) SalesDataRepository {
	return &salesDataRepository{
		cfg: cfg,
	}
}

// Load grava todos os registros do payload numa única transação.
// Qualquer falha desfaz a carga inteira e é devolvida como *LoadError;
// a conexão é sempre fechada ao final.
func (r *salesDataRepository) Load(ctx context.Context, payload *petpoojadomain.SalesPayload, destination string) (err error) {
	if destination == "" {
		destination = r.cfg.Name
	}

	logger := log.ForContext(ctx).WithField("destination", destination)

	defer func() {
		if p := recover(); p != nil {
			err = &LoadError{Stage: StagePanic, RecordIndex: -1, Err: fmt.Errorf("%v", p)}
			logger.WithError(err).Error("Erro inesperado durante a carga de vendas")
		}

		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultFailure
		}
		metrics.LoadRuns.WithLabelValues(result).Inc()
	}()

	if payload == nil {
		payload = &petpoojadomain.SalesPayload{}
	}

	conn, err := database.Open(ctx, r.cfg, destination)
	if err != nil {
		return r.fail(logger, &LoadError{Stage: StageConnect, RecordIndex: -1, Err: err})
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logger.WithError(cerr).Error("Erro ao fechar conexão com o banco de dados")
		}
	}()

	session, err := conn.Session(ctx)
	if err != nil {
		return r.fail(logger, &LoadError{Stage: StageConnect, RecordIndex: -1, Err: err})
	}
	// Ao devolver a sessão o driver volta ao modo autocommit
	defer func() {
		if cerr := session.Close(); cerr != nil {
			logger.WithError(cerr).Error("Erro ao liberar sessão do banco de dados")
		}
	}()

	if err := ensureSchema(ctx, session, conn.Dialect()); err != nil {
		return r.fail(logger, &LoadError{Stage: StageSchema, RecordIndex: -1, Err: err})
	}

	insertSQL, err := insertStatement(conn.Dialect())
	if err != nil {
		return r.fail(logger, &LoadError{Stage: StagePrepare, RecordIndex: -1, Err: err})
	}

	err = database.RunInTransaction(ctx, session, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertSQL)
		if err != nil {
			return &recordError{stage: StagePrepare, index: -1, err: err}
		}
		defer stmt.Close()

		for i, record := range payload.Records {
			if _, err := stmt.ExecContext(ctx, recordValues(record)...); err != nil {
				return &recordError{stage: StageInsert, index: i, err: err}
			}
		}

		return nil
	})
	if err != nil {
		return r.fail(logger, loadErrorFromTx(err))
	}

	metrics.RecordsLoaded.Add(float64(len(payload.Records)))
	logger.WithField("records", len(payload.Records)).Info("Dados inseridos com sucesso no banco de dados")

	return nil
}

// fail registra o erro original e o erro de rollback em linhas separadas
func (r *salesDataRepository) fail(logger log.Logger, loadErr *LoadError) error {
	fields := log.Fields{
		"stage": string(loadErr.Stage),
		"error": loadErr.Err.Error(),
	}
	if loadErr.RecordIndex >= 0 {
		fields["record"] = loadErr.RecordIndex + 1
	}

	var pqErr *pq.Error
	if errors.As(loadErr.Err, &pqErr) {
		fields["pg_code"] = string(pqErr.Code)
	}

	logger.WithFields(fields).Error("Erro de SQL durante a carga de vendas, transação desfeita")

	if loadErr.RollbackErr != nil {
		logger.WithFields(log.Fields{
			"stage": string(loadErr.Stage),
			"error": loadErr.RollbackErr.Error(),
		}).Error("Erro ao desfazer a transação")
	}

	return loadErr
}

func (r *salesDataRepository) Count(ctx context.Context, destination string) (int64, error) {
	if destination == "" {
		destination = r.cfg.Name
	}

	conn, err := database.Open(ctx, r.cfg, destination)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if err := ensureSchema(ctx, conn, conn.Dialect()); err != nil {
		return 0, fmt.Errorf("erro ao criar tabela %s: %w", salesDataTable, err)
	}

	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesDataTable).
		PlaceholderFormat(conn.Dialect().Placeholder).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return total, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func ensureSchema(ctx context.Context, db execer, dialect database.Dialect) error {
	schema := sqliteSalesDataSchema
	if dialect.Driver == config.DriverPostgres {
		schema = postgresSalesDataSchema
	}

	_, err := db.ExecContext(ctx, schema)
	return err
}

func insertStatement(dialect database.Dialect) (string, error) {
	query, _, err := squirrel.
		Insert(salesDataTable).
		Columns(salesDataColumns...).
		Values(make([]interface{}, len(salesDataColumns))...).
		PlaceholderFormat(dialect.Placeholder).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}
	return query, nil
}

func recordValues(record petpoojadomain.SalesRecord) []interface{} {
	return []interface{}{
		record.ReceiptNumber,
		record.SaleDate,
		record.TransactionTime,
		record.InvoiceAmount,
		record.TaxAmount,
		record.DiscountAmount,
		record.RoundOff,
		record.NetSale,
		record.PaymentMode,
		record.OrderType,
		record.TransactionStatus,
	}
}

// EnsureSalesDataSchema cria a tabela sales_data no destino sem carregar dados
func EnsureSalesDataSchema(ctx context.Context, cfg config.Database, destination string) error {
	conn, err := database.Open(ctx, cfg, destination)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := ensureSchema(ctx, conn, conn.Dialect()); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", salesDataTable, err)
	}

	return nil
}
