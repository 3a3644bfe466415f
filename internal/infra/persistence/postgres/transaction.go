package postgres

import (
	"context"
	"database/sql"

	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
	// readOnlyOpts is nil for dialects whose driver rejects non-default
	// isolation levels or read-only transactions.
	readOnlyOpts *sql.TxOptions
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// CustomerRepo returns a customer repository bound to the transaction.
func (f *gormRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

// VegetableRepo returns a vegetable repository bound to the transaction.
func (f *gormRepositoryFactory) VegetableRepo() repository.VegetableRepository {
	return NewVegetableRepository(f.tx)
}

// OrderRepo returns an order repository bound to the transaction.
func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	tm := &gormTransactionManager{db: db}

	// PostgreSQL READ COMMITTED takes a new snapshot per statement; a read-only
	// REPEATABLE READ transaction keeps a count and the page it describes consistent.
	if db.Dialector.Name() == "postgres" {
		tm.readOnlyOpts = &sql.TxOptions{
			Isolation: sql.LevelRepeatableRead,
			ReadOnly:  true,
		}
	}

	return tm
}

// Execute runs the given function within a single read-write transaction on the primary.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(tm.db.WithContext(ctx).Clauses(dbresolver.Write), nil, fn)
}

// ExecuteReadOnly runs the given function within a single read-only snapshot.
// With read replicas configured the transaction is opened on a replica.
func (tm *gormTransactionManager) ExecuteReadOnly(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(tm.db.WithContext(ctx).Clauses(dbresolver.Read), tm.readOnlyOpts, fn)
}

func (tm *gormTransactionManager) run(db *gorm.DB, opts *sql.TxOptions, fn func(repoFactory repository.RepositoryFactory) error) error {
	var tx *gorm.DB
	if opts != nil {
		tx = db.Begin(opts)
	} else {
		tx = db.Begin()
	}
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the connection in an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// The business error is the meaningful one; keep the rollback failure alongside it.
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to commit transaction")
	}

	return nil
}
