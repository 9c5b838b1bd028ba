package core

import (
	"errors"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrCardNotFound     = errors.New("card not found")

	// Soft-deleted records refuse reads and edits.
	ErrCustomerGone = errors.New("customer has been deleted")
	ErrAccountGone  = errors.New("account has been deleted")
	ErrCardGone     = errors.New("card has been deleted")

	ErrIBANTaken         = errors.New("IBAN already exists")
	ErrPANTaken          = errors.New("PAN already exists")
	ErrCardLimitReached  = errors.New("maximum of 2 cards allowed per account")
	ErrDuplicateCardType = errors.New("card of this type already exists for the account")

	ErrInvalidCardType = errors.New("invalid card type")

	// ErrLookupUnavailable means the sibling service could not be reached;
	// the whole request fails rather than proceeding unvalidated.
	ErrLookupUnavailable = errors.New("dependency unavailable")

	// ErrIdentifierCorrupted means a stored identifier does not parse as a
	// sequence. Failing hard here avoids re-issuing a colliding identifier.
	ErrIdentifierCorrupted = errors.New("identifier sequence corrupted")
)
