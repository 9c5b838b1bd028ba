package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"corebank/internal/core"
)

type AccountStore struct {
	db *sql.DB
	tx *sql.Tx
}

func NewAccountStore(db *sql.DB) AccountStore {
	return AccountStore{
		db: db,
	}
}

func (s AccountStore) conn() dbtx {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s AccountStore) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL UNIQUE,
			iban TEXT NOT NULL UNIQUE,
			bic_swift TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			deleted BOOLEAN NOT NULL DEFAULT 0
		);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create accounts schema: %w", err)
	}

	return nil
}

func (s AccountStore) GetByAccountID(ctx context.Context, accountID string) (core.Account, error) {
	query := `
		SELECT id, account_id, iban, bic_swift, customer_id, deleted
		FROM accounts
		WHERE account_id = ?
	`

	var account core.Account
	err := s.conn().QueryRowContext(ctx, query, accountID).Scan(
		&account.ID,
		&account.AccountID,
		&account.IBAN,
		&account.BicSwift,
		&account.CustomerID,
		&account.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, core.ErrAccountNotFound
		}
		return core.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// LastAccountID relies on the fixed-width numeric suffix: lexicographic DESC
// order within a prefix is numeric order.
func (s AccountStore) LastAccountID(ctx context.Context, prefix string) (string, error) {
	query := `
		SELECT account_id
		FROM accounts
		WHERE account_id LIKE ? || '%'
		ORDER BY account_id DESC
		LIMIT 1
	`

	var last string
	err := s.conn().QueryRowContext(ctx, query, prefix).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last account id: %w", err)
	}

	return last, nil
}

func (s AccountStore) IBANExists(ctx context.Context, iban string) (bool, error) {
	var exists bool
	err := s.conn().QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE iban = ?)", iban).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check IBAN: %w", err)
	}

	return exists, nil
}

func (s AccountStore) Insert(ctx context.Context, account core.Account) error {
	query := `
		INSERT INTO accounts (id, account_id, iban, bic_swift, customer_id, deleted)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn().ExecContext(ctx, query,
		account.ID.String(),
		account.AccountID,
		account.IBAN,
		account.BicSwift,
		account.CustomerID,
		account.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrIBANTaken
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

func (s AccountStore) Update(ctx context.Context, account core.Account) error {
	query := `
		UPDATE accounts
		SET bic_swift = ?, deleted = ?
		WHERE account_id = ?
	`

	result, err := s.conn().ExecContext(ctx, query, account.BicSwift, account.Deleted, account.AccountID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrAccountNotFound
	}

	return nil
}

// Search applies case-sensitive substring filters on iban and bic_swift.
// sqlite LIKE is case-insensitive for ASCII, so instr() is used instead.
func (s AccountStore) Search(ctx context.Context, search core.AccountSearch) (core.AccountPage, error) {
	where := "WHERE 1=1"
	args := []any{}

	if search.IBAN != "" {
		where += " AND instr(iban, ?) > 0"
		args = append(args, search.IBAN)
	}
	if search.BicSwift != "" {
		where += " AND instr(bic_swift, ?) > 0"
		args = append(args, search.BicSwift)
	}

	var total int64
	if err := s.conn().QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts "+where, args...).Scan(&total); err != nil {
		return core.AccountPage{}, fmt.Errorf("failed to count accounts: %w", err)
	}

	query := `
		SELECT id, account_id, iban, bic_swift, customer_id, deleted
		FROM accounts ` + where + `
		ORDER BY account_id
		LIMIT ? OFFSET ?
	`
	args = append(args, search.Size, search.Page*search.Size)

	rows, err := s.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return core.AccountPage{}, fmt.Errorf("failed to search accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var account core.Account
		err := rows.Scan(
			&account.ID,
			&account.AccountID,
			&account.IBAN,
			&account.BicSwift,
			&account.CustomerID,
			&account.Deleted,
		)
		if err != nil {
			return core.AccountPage{}, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return core.AccountPage{}, fmt.Errorf("error iterating accounts: %w", err)
	}

	return core.AccountPage{
		Content:     accounts,
		CurrentPage: search.Page,
		TotalItems:  total,
		TotalPages:  totalPages(total, search.Size),
	}, nil
}

func (s AccountStore) Atomic(ctx context.Context, cb func(r core.AccountRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := AccountStore{
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
