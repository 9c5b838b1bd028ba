package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Customer is owned by the customer service. CustomerID is the business key
// other services reference; ID never leaves the service.
type Customer struct {
	ID         uuid.UUID
	CustomerID string
	FirstName  string
	LastName   string
	OtherName  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Deleted    bool
}

type NewCustomer struct {
	FirstName string
	LastName  string
	OtherName string
}

type CustomerUpdate struct {
	FirstName string
	LastName  string
	OtherName string
}

type CustomerSearch struct {
	Keyword   string
	StartDate time.Time
	EndDate   time.Time
	Page      int
	Size      int
}

type CustomerPage struct {
	Content     []Customer
	CurrentPage int
	TotalItems  int64
	TotalPages  int
}

// Account references its owner by business CustomerID only; the reference is
// validated against the customer service at creation time, never joined.
type Account struct {
	ID         uuid.UUID
	AccountID  string
	IBAN       string
	BicSwift   string
	CustomerID string
	Deleted    bool
}

type NewAccount struct {
	CustomerID string
	BicSwift   string
}

type AccountSearch struct {
	IBAN     string
	BicSwift string
	Page     int
	Size     int
}

type AccountPage struct {
	Content     []Account
	CurrentPage int
	TotalItems  int64
	TotalPages  int
}

type CardType string

const (
	CardTypePhysical CardType = "PHYSICAL"
	CardTypeVirtual  CardType = "VIRTUAL"
)

func ParseCardType(s string) (CardType, error) {
	switch CardType(s) {
	case CardTypePhysical, CardTypeVirtual:
		return CardType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCardType, s)
	}
}

type Card struct {
	ID        uuid.UUID
	CardID    string
	CardAlias string
	Type      CardType
	PAN       string
	CVV       string
	AccountID string
	Primary   bool
	Deleted   bool
}

type NewCard struct {
	AccountID string
	CardAlias string
	Type      CardType
	CVV       string
}

type CardSearch struct {
	CardAlias string
	Type      CardType
	PAN       string
	Page      int
	Size      int
}
