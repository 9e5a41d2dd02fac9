package database

import (
	"context"
	"database/sql"
	"fmt"
)

type TxStage string

const (
	TxStageBegin  TxStage = "begin"
	TxStageExec   TxStage = "exec"
	TxStageCommit TxStage = "commit"
)

// TxError guarda o erro original e, separadamente, a falha do rollback
type TxError struct {
	Stage       TxStage
	Err         error
	RollbackErr error
}

func (e *TxError) Error() string {
	if e.RollbackErr != nil {
		return fmt.Sprintf("transação (%s): %v; rollback: %v", e.Stage, e.Err, e.RollbackErr)
	}
	return fmt.Sprintf("transação (%s): %v", e.Stage, e.Err)
}

func (e *TxError) Unwrap() error {
	return e.Err
}

type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// RunInTransaction run a query in the transaction
func RunInTransaction(ctx context.Context, db TxBeginner, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &TxError{Stage: TxStageBegin, Err: err}
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		return &TxError{Stage: TxStageExec, Err: err, RollbackErr: tx.Rollback()}
	}

	if err := tx.Commit(); err != nil {
		return &TxError{Stage: TxStageCommit, Err: err}
	}

	return nil
}

func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return RunInTransaction(ctx, c.DB, fn)
}
