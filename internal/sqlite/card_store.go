package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"corebank/internal/core"
)

type CardStore struct {
	db *sql.DB
	tx *sql.Tx
}

func NewCardStore(db *sql.DB) CardStore {
	return CardStore{
		db: db,
	}
}

func (s CardStore) conn() dbtx {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s CardStore) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			card_id TEXT NOT NULL UNIQUE,
			card_alias TEXT NOT NULL,
			type TEXT NOT NULL,
			pan TEXT NOT NULL UNIQUE,
			cvv TEXT NOT NULL,
			account_id TEXT NOT NULL,
			primary_card BOOLEAN NOT NULL DEFAULT 0,
			deleted BOOLEAN NOT NULL DEFAULT 0
		);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create cards schema: %w", err)
	}

	return nil
}

func (s CardStore) GetByCardID(ctx context.Context, cardID string) (core.Card, error) {
	query := `
		SELECT id, card_id, card_alias, type, pan, cvv, account_id, primary_card, deleted
		FROM cards
		WHERE card_id = ?
	`

	var card core.Card
	err := s.conn().QueryRowContext(ctx, query, cardID).Scan(
		&card.ID,
		&card.CardID,
		&card.CardAlias,
		&card.Type,
		&card.PAN,
		&card.CVV,
		&card.AccountID,
		&card.Primary,
		&card.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Card{}, core.ErrCardNotFound
		}
		return core.Card{}, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

func (s CardStore) LiveByAccountID(ctx context.Context, accountID string) ([]core.Card, error) {
	query := `
		SELECT id, card_id, card_alias, type, pan, cvv, account_id, primary_card, deleted
		FROM cards
		WHERE account_id = ? AND deleted = 0
		ORDER BY card_id
	`

	rows, err := s.conn().QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for account: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

func (s CardStore) LastCardID(ctx context.Context, prefix string) (string, error) {
	return s.lastValue(ctx, "card_id", prefix)
}

func (s CardStore) LastPAN(ctx context.Context, prefix string) (string, error) {
	return s.lastValue(ctx, "pan", prefix)
}

func (s CardStore) lastValue(ctx context.Context, column, prefix string) (string, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM cards
		WHERE %s LIKE ? || '%%'
		ORDER BY %s DESC
		LIMIT 1
	`, column, column, column)

	var last string
	err := s.conn().QueryRowContext(ctx, query, prefix).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last %s: %w", column, err)
	}

	return last, nil
}

func (s CardStore) Insert(ctx context.Context, card core.Card) error {
	query := `
		INSERT INTO cards (id, card_id, card_alias, type, pan, cvv, account_id, primary_card, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn().ExecContext(ctx, query,
		card.ID.String(),
		card.CardID,
		card.CardAlias,
		string(card.Type),
		card.PAN,
		card.CVV,
		card.AccountID,
		card.Primary,
		card.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrPANTaken
		}
		return fmt.Errorf("failed to insert card: %w", err)
	}

	return nil
}

func (s CardStore) Update(ctx context.Context, card core.Card) error {
	query := `
		UPDATE cards
		SET card_alias = ?, deleted = ?
		WHERE card_id = ?
	`

	result, err := s.conn().ExecContext(ctx, query, card.CardAlias, card.Deleted, card.CardID)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrCardNotFound
	}

	return nil
}

// Search lists non-deleted cards only. Alias matches case-insensitively,
// type exactly, pan by substring; paging is plain limit/offset.
func (s CardStore) Search(ctx context.Context, search core.CardSearch) ([]core.Card, error) {
	where := "WHERE deleted = 0"
	args := []any{}

	if search.CardAlias != "" {
		where += " AND instr(lower(card_alias), lower(?)) > 0"
		args = append(args, search.CardAlias)
	}
	if search.Type != "" {
		where += " AND type = ?"
		args = append(args, string(search.Type))
	}
	if search.PAN != "" {
		where += " AND instr(pan, ?) > 0"
		args = append(args, search.PAN)
	}

	query := `
		SELECT id, card_id, card_alias, type, pan, cvv, account_id, primary_card, deleted
		FROM cards ` + where + `
		ORDER BY card_id
		LIMIT ? OFFSET ?
	`
	args = append(args, search.Size, search.Page*search.Size)

	rows, err := s.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search cards: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

func (s CardStore) Atomic(ctx context.Context, cb func(r core.CardRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := CardStore{
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

func collectCards(rows *sql.Rows) ([]core.Card, error) {
	var cards []core.Card

	for rows.Next() {
		var card core.Card
		err := rows.Scan(
			&card.ID,
			&card.CardID,
			&card.CardAlias,
			&card.Type,
			&card.PAN,
			&card.CVV,
			&card.AccountID,
			&card.Primary,
			&card.Deleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}

	return cards, nil
}
