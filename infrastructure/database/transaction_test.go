package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-data-sync/internal/config"
)

func openTestDB(t *testing.T) *Connection {
	t.Helper()

	cfg := config.Database{Driver: config.DriverSQLite, Name: filepath.Join(t.TempDir(), "test.db")}
	conn, err := Open(context.Background(), cfg, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(`CREATE TABLE items (name TEXT)`)
	require.NoError(t, err)

	return conn
}

func countItems(t *testing.T, conn *Connection) int {
	t.Helper()
	var total int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&total))
	return total
}

func TestRunInTransaction_Commit(t *testing.T) {
	conn := openTestDB(t)

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO items (name) VALUES ('a'), ('b')`)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 2, countItems(t, conn))
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	conn := openTestDB(t)
	fnErr := errors.New("falhou")

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return fnErr
	})

	var txErr *TxError
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, TxStageExec, txErr.Stage)
	assert.NoError(t, txErr.RollbackErr)
	assert.ErrorIs(t, err, fnErr)
	assert.Equal(t, 0, countItems(t, conn))
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	conn := openTestDB(t)

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			_, _ = tx.Exec(`INSERT INTO items (name) VALUES ('a')`)
			panic("boom")
		})
	})

	assert.Equal(t, 0, countItems(t, conn))
}

func TestRunInTransaction_BeginError(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, conn.Close())

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error { return nil })

	var txErr *TxError
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, TxStageBegin, txErr.Stage)
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, squirrel.Dollar, DialectFor(config.DriverPostgres).Placeholder)
	assert.Equal(t, squirrel.Question, DialectFor(config.DriverSQLite).Placeholder)
	assert.Equal(t, config.DriverSQLite, DialectFor("").Driver)
}

func TestTxError_Message(t *testing.T) {
	err := &TxError{Stage: TxStageExec, Err: errors.New("insert"), RollbackErr: errors.New("rollback")}
	assert.Equal(t, "transação (exec): insert; rollback: rollback", err.Error())
}
