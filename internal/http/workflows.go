package http

import (
	"context"

	"corebank/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=workflows.go -destination=workflows_mock.go -package=http

// The handler layer depends on these narrow views of the core services so
// each can be mocked independently of storage and sibling services.

type CustomerWorkflow interface {
	Create(ctx context.Context, newCustomer core.NewCustomer) (core.Customer, error)
	Fetch(ctx context.Context, customerID string) (core.Customer, error)
	FetchAll(ctx context.Context) ([]core.Customer, error)
	Edit(ctx context.Context, customerID string, update core.CustomerUpdate) (core.Customer, error)
	Delete(ctx context.Context, customerID string) (core.Customer, error)
	Search(ctx context.Context, search core.CustomerSearch) (core.CustomerPage, error)
}

type AccountWorkflow interface {
	Create(ctx context.Context, newAccount core.NewAccount) (core.Account, error)
	Fetch(ctx context.Context, accountID string) (core.Account, error)
	Edit(ctx context.Context, accountID string, bicSwift string) (core.Account, error)
	Delete(ctx context.Context, accountID string) (core.Account, error)
	Search(ctx context.Context, search core.AccountSearch) (core.AccountPage, error)
}

type CardWorkflow interface {
	Create(ctx context.Context, newCard core.NewCard) (core.Card, error)
	Fetch(ctx context.Context, cardID string, revealSensitive bool) (core.Card, error)
	Edit(ctx context.Context, cardID string, alias string) (core.Card, error)
	Delete(ctx context.Context, cardID string) (core.Card, error)
	Search(ctx context.Context, search core.CardSearch, revealSensitive bool) ([]core.Card, error)
}
