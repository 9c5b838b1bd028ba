package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=lookup.go -destination=lookup_mock.go -package=core

// CustomerLookup asks the customer service whether a customer exists and is
// not soft-deleted. Implementations return ErrCustomerNotFound when the
// reference is invalid and ErrLookupUnavailable when the service cannot be
// reached; nil means the reference is safe to persist.
type CustomerLookup interface {
	VerifyCustomer(ctx context.Context, customerID string) error
}

// AccountLookup is the account-service counterpart used by card issuance.
type AccountLookup interface {
	VerifyAccount(ctx context.Context, accountID string) error
}
