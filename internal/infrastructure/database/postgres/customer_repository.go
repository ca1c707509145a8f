package postgres

import (
	"context"
	"customer-dashboard/internal/domain/customer"
	"customer-dashboard/internal/infrastructure/monitoring"
	"customer-dashboard/internal/pkg/apperrors"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of *pgxpool.Pool used by the repositories. Each call
// borrows one pooled connection and hands it back when the rows are closed.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

const (
	listCustomersQuery = `
        SELECT sno, customer_name, age, phone, location, created_at
        FROM customers`

	countCustomersQuery = `SELECT COUNT(*) FROM customers`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) ListAll(ctx context.Context) (customers []*customer.Customer, err error) {
	r.logger.InfoContext(ctx, "Attempting to list all customers")
	start := time.Now()
	defer func() { observeQuery("list_customers", start, err) }()

	rows, err := r.db.Query(ctx, listCustomersQuery)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, apperrors.WrapStoreError(err, "failed to query customers")
	}
	defer rows.Close()

	result := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.Serial,
			&cust.Name,
			&cust.Age,
			&cust.Phone,
			&cust.Location,
			&cust.CreatedAt,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, apperrors.WrapStoreError(err, "failed to scan customer row")
		}
		result = append(result, &cust)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, apperrors.WrapStoreError(err, "error iterating customer rows")
	}

	r.logger.InfoContext(ctx, "Finished listing customers", slog.Int("count", len(result)))
	return result, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (n int64, err error) {
	start := time.Now()
	defer func() { observeQuery("count_customers", start, err) }()

	if err = r.db.QueryRow(ctx, countCustomersQuery).Scan(&n); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count customers", slog.Any("error", err))
		return 0, apperrors.WrapStoreError(err, "failed to count customers")
	}
	return n, nil
}

func observeQuery(name string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery(name, status, time.Since(start))
}
