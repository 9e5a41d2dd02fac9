package repository

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-data-sync/infrastructure/database"
)

var ErrLoadFailed = errors.New("falha ao carregar dados de vendas")

type LoadStage string

const (
	StageConnect LoadStage = "connect"
	StageSchema  LoadStage = "schema"
	StageBegin   LoadStage = "begin"
	StagePrepare LoadStage = "prepare"
	StageInsert  LoadStage = "insert"
	StageCommit  LoadStage = "commit"
	StagePanic   LoadStage = "panic"
)

// LoadError descreve a etapa que falhou. RecordIndex é -1 quando a falha não é de um registro.
type LoadError struct {
	Stage       LoadStage
	RecordIndex int
	Err         error
	RollbackErr error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%v na etapa %s", ErrLoadFailed, e.Stage)
	if e.RecordIndex >= 0 {
		msg += fmt.Sprintf(" (registro %d)", e.RecordIndex+1)
	}
	msg += fmt.Sprintf(": %v", e.Err)
	if e.RollbackErr != nil {
		msg += fmt.Sprintf("; erro no rollback: %v", e.RollbackErr)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}

type recordError struct {
	stage LoadStage
	index int
	err   error
}

func (e *recordError) Error() string {
	return e.err.Error()
}

func (e *recordError) Unwrap() error {
	return e.err
}

func loadErrorFromTx(err error) *LoadError {
	var txErr *database.TxError
	if !errors.As(err, &txErr) {
		return &LoadError{Stage: StageInsert, RecordIndex: -1, Err: err}
	}

	switch txErr.Stage {
	case database.TxStageBegin:
		return &LoadError{Stage: StageBegin, RecordIndex: -1, Err: txErr.Err}
	case database.TxStageCommit:
		return &LoadError{Stage: StageCommit, RecordIndex: -1, Err: txErr.Err}
	}

	loadErr := &LoadError{Stage: StageInsert, RecordIndex: -1, Err: txErr.Err, RollbackErr: txErr.RollbackErr}

	var recErr *recordError
	if errors.As(txErr.Err, &recErr) {
		loadErr.Stage = recErr.stage
		loadErr.RecordIndex = recErr.index
		loadErr.Err = recErr.err
	}

	return loadErr
}
