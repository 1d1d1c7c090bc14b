// Package txmanager реализует менеджер транзакций поверх dbmetrics.DB.
// Функция выполняется внутри транзакции, которая передаётся дальше
// через context (см. dbmetrics.WithTx / dbmetrics.GetExecutor).
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/HMA-AdminService/pkg/dbmetrics"
)

const (
	// pgSerializationFailure код ошибки сериализации PostgreSQL (40001)
	pgSerializationFailure = "40001"

	// maxRetries максимальное число повторов при ошибке сериализации
	maxRetries = 3
)

var (
	// ErrBeginTx возвращается при ошибке начала транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке коммита транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TransactionManager менеджер транзакций с повтором при serialization failure
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn внутри транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn внутри SERIALIZABLE-транзакции.
// При ошибке сериализации (40001) транзакция повторяется до maxRetries раз.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// DoReadOnly выполняет fn внутри read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		// Оборачиваем через %w дважды, чтобы errors.As видел *pq.Error
		// при детекции serialization failure
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}

// isSerializationFailure определяет, является ли ошибка (в том числе
// обёрнутая в ErrCommitTx) ошибкой сериализации PostgreSQL
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure
	}
	return false
}
