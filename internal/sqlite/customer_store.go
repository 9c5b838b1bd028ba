package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"corebank/internal/core"
)

type CustomerStore struct {
	db *sql.DB
	tx *sql.Tx
}

func NewCustomerStore(db *sql.DB) CustomerStore {
	return CustomerStore{
		db: db,
	}
}

func (s CustomerStore) conn() dbtx {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s CustomerStore) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			other_name TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP,
			deleted BOOLEAN NOT NULL DEFAULT 0
		);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create customers schema: %w", err)
	}

	return nil
}

func (s CustomerStore) GetByCustomerID(ctx context.Context, customerID string) (core.Customer, error) {
	query := `
		SELECT id, customer_id, first_name, last_name, other_name, created_at, updated_at, deleted
		FROM customers
		WHERE customer_id = ?
	`

	return s.scanCustomer(s.conn().QueryRowContext(ctx, query, customerID))
}

func (s CustomerStore) GetAll(ctx context.Context) ([]core.Customer, error) {
	query := `
		SELECT id, customer_id, first_name, last_name, other_name, created_at, updated_at, deleted
		FROM customers
		ORDER BY created_at DESC
	`

	rows, err := s.conn().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return s.collectCustomers(rows)
}

// LastCustomerID returns the highest identifier issued for prefix, or empty
// when the bucket has no customers yet. Identifiers share a fixed-width
// numeric suffix, so lexicographic DESC order is also numeric order.
func (s CustomerStore) LastCustomerID(ctx context.Context, prefix string) (string, error) {
	query := `
		SELECT customer_id
		FROM customers
		WHERE customer_id LIKE ? || '%'
		ORDER BY customer_id DESC
		LIMIT 1
	`

	var last string
	err := s.conn().QueryRowContext(ctx, query, prefix).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last customer id: %w", err)
	}

	return last, nil
}

func (s CustomerStore) Insert(ctx context.Context, customer core.Customer) error {
	query := `
		INSERT INTO customers (id, customer_id, first_name, last_name, other_name, created_at, updated_at, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn().ExecContext(ctx, query,
		customer.ID.String(),
		customer.CustomerID,
		customer.FirstName,
		customer.LastName,
		customer.OtherName,
		customer.CreatedAt,
		nullableTime(customer.UpdatedAt),
		customer.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer id %s", core.ErrIdentifierCorrupted, customer.CustomerID)
		}
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}

func (s CustomerStore) Update(ctx context.Context, customer core.Customer) error {
	query := `
		UPDATE customers
		SET first_name = ?, last_name = ?, other_name = ?, updated_at = ?, deleted = ?
		WHERE customer_id = ?
	`

	result, err := s.conn().ExecContext(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.OtherName,
		nullableTime(customer.UpdatedAt),
		customer.Deleted,
		customer.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrCustomerNotFound
	}

	return nil
}

func (s CustomerStore) Search(ctx context.Context, search core.CustomerSearch) (core.CustomerPage, error) {
	where := "WHERE 1=1"
	args := []any{}

	if search.Keyword != "" {
		where += ` AND (
			instr(lower(first_name), lower(?)) > 0
			OR instr(lower(last_name), lower(?)) > 0
			OR instr(lower(other_name), lower(?)) > 0
		)`
		args = append(args, search.Keyword, search.Keyword, search.Keyword)
	}
	if !search.StartDate.IsZero() {
		where += " AND created_at >= ?"
		args = append(args, search.StartDate)
	}
	if !search.EndDate.IsZero() {
		where += " AND created_at <= ?"
		args = append(args, search.EndDate)
	}

	var total int64
	if err := s.conn().QueryRowContext(ctx, "SELECT COUNT(*) FROM customers "+where, args...).Scan(&total); err != nil {
		return core.CustomerPage{}, fmt.Errorf("failed to count customers: %w", err)
	}

	query := `
		SELECT id, customer_id, first_name, last_name, other_name, created_at, updated_at, deleted
		FROM customers ` + where + `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, search.Size, search.Page*search.Size)

	rows, err := s.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return core.CustomerPage{}, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	customers, err := s.collectCustomers(rows)
	if err != nil {
		return core.CustomerPage{}, err
	}

	return core.CustomerPage{
		Content:     customers,
		CurrentPage: search.Page,
		TotalItems:  total,
		TotalPages:  totalPages(total, search.Size),
	}, nil
}

func (s CustomerStore) Atomic(ctx context.Context, cb func(r core.CustomerRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := CustomerStore{
		db: s.db,
		tx: tx,
	}

	if err = cb(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s CustomerStore) scanCustomer(row *sql.Row) (core.Customer, error) {
	var (
		customer  core.Customer
		otherName sql.NullString
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&customer.ID,
		&customer.CustomerID,
		&customer.FirstName,
		&customer.LastName,
		&otherName,
		&customer.CreatedAt,
		&updatedAt,
		&customer.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Customer{}, core.ErrCustomerNotFound
		}
		return core.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	customer.OtherName = otherName.String
	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}

func (s CustomerStore) collectCustomers(rows *sql.Rows) ([]core.Customer, error) {
	var customers []core.Customer

	for rows.Next() {
		var (
			customer  core.Customer
			otherName sql.NullString
			updatedAt sql.NullTime
		)

		err := rows.Scan(
			&customer.ID,
			&customer.CustomerID,
			&customer.FirstName,
			&customer.LastName,
			&otherName,
			&customer.CreatedAt,
			&updatedAt,
			&customer.Deleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}

		customer.OtherName = otherName.String
		customer.UpdatedAt = updatedAt.Time
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
