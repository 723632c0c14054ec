// Package repositories provides the data access layer.
// It handles all database operations and data persistence logic.
package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Store bundles the per-aggregate repositories behind one handle so a
// multi-aggregate sequence (slot reservation + debit + team write) can run
// against a single database transaction.
type Store interface {
	Accounts() AccountRepository
	Contests() ContestRepository
	Teams() TeamRepository
	Payments() PaymentRepository
	Withdrawals() WithdrawalRepository

	// ExecuteInTransaction runs fn against a transaction-scoped store.
	// Returning an error rolls back everything fn did.
	ExecuteInTransaction(fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given database handle.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Accounts() AccountRepository       { return &accountRepository{db: s.db} }
func (s *gormStore) Contests() ContestRepository       { return &contestRepository{db: s.db} }
func (s *gormStore) Teams() TeamRepository             { return &teamRepository{db: s.db} }
func (s *gormStore) Payments() PaymentRepository       { return &paymentRepository{db: s.db} }
func (s *gormStore) Withdrawals() WithdrawalRepository { return &withdrawalRepository{db: s.db} }

func (s *gormStore) ExecuteInTransaction(fn func(tx Store) error) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
	if err != nil && isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", ErrConcurrencyConflict, err)
	}
	return err
}

// isSerializationFailure reports whether err is a Postgres serialization
// failure or deadlock, both safe to retry.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
