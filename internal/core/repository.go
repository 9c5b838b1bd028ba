package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// CustomerRepository persists Customer records. LastCustomerID returns the
// highest issued identifier starting with prefix, or empty when none exists.
// Atomic runs cb against a transaction-bound repository; the read-last /
// generate / insert sequence must run inside it.
type CustomerRepository interface {
	GetByCustomerID(ctx context.Context, customerID string) (Customer, error)
	GetAll(ctx context.Context) ([]Customer, error)
	LastCustomerID(ctx context.Context, prefix string) (string, error)
	Insert(ctx context.Context, customer Customer) error
	Update(ctx context.Context, customer Customer) error
	Search(ctx context.Context, search CustomerSearch) (CustomerPage, error)
	Atomic(ctx context.Context, cb func(r CustomerRepository) error) error
}

type AccountRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (Account, error)
	LastAccountID(ctx context.Context, prefix string) (string, error)
	IBANExists(ctx context.Context, iban string) (bool, error)
	Insert(ctx context.Context, account Account) error
	Update(ctx context.Context, account Account) error
	Search(ctx context.Context, search AccountSearch) (AccountPage, error)
	Atomic(ctx context.Context, cb func(r AccountRepository) error) error
}

// CardRepository persists Card records. LiveByAccountID returns only
// non-deleted cards; the issuance rules count those alone.
type CardRepository interface {
	GetByCardID(ctx context.Context, cardID string) (Card, error)
	LiveByAccountID(ctx context.Context, accountID string) ([]Card, error)
	LastCardID(ctx context.Context, prefix string) (string, error)
	LastPAN(ctx context.Context, prefix string) (string, error)
	Insert(ctx context.Context, card Card) error
	Update(ctx context.Context, card Card) error
	Search(ctx context.Context, search CardSearch) ([]Card, error)
	Atomic(ctx context.Context, cb func(r CardRepository) error) error
}
