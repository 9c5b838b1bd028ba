package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"corebank/internal/core"
)

var validate = validator.New()

type CustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	OtherName string `json:"otherName"`
}

type AccountRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	BicSwift   string `json:"bicSwift" validate:"required"`
}

type AccountEditRequest struct {
	BicSwift string `json:"bicSwift" validate:"required"`
}

type CardRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	CardAlias string `json:"cardAlias" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=PHYSICAL VIRTUAL"`
	CVV       string `json:"cvv" validate:"required,len=3,numeric"`
}

type CardEditRequest struct {
	CardAlias string `json:"cardAlias" validate:"required"`
}

type CustomerResponse struct {
	CustomerID string     `json:"customerId"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	OtherName  string     `json:"otherName,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	Deleted    bool       `json:"deleted"`
}

func toCustomerResponse(customer core.Customer) CustomerResponse {
	resp := CustomerResponse{
		CustomerID: customer.CustomerID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		OtherName:  customer.OtherName,
		CreatedAt:  customer.CreatedAt,
		Deleted:    customer.Deleted,
	}
	if !customer.UpdatedAt.IsZero() {
		updatedAt := customer.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

func toCustomerResponses(customers []core.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, toCustomerResponse(customer))
	}
	return responses
}

type CustomerPageResponse struct {
	Content     []CustomerResponse `json:"content"`
	CurrentPage int                `json:"currentPage"`
	TotalItems  int64              `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
}

// AccountResponse is the public account view; the surrogate id stays
// internal.
type AccountResponse struct {
	AccountID  string `json:"accountId"`
	IBAN       string `json:"iban"`
	BicSwift   string `json:"bicSwift"`
	CustomerID string `json:"customerId"`
	Deleted    bool   `json:"deleted"`
}

func toAccountResponse(account core.Account) AccountResponse {
	return AccountResponse{
		AccountID:  account.AccountID,
		IBAN:       account.IBAN,
		BicSwift:   account.BicSwift,
		CustomerID: account.CustomerID,
		Deleted:    account.Deleted,
	}
}

type AccountPageResponse struct {
	Content     []AccountResponse `json:"content"`
	CurrentPage int               `json:"currentPage"`
	TotalItems  int64             `json:"totalItems"`
	TotalPages  int               `json:"totalPages"`
}

func toAccountPageResponse(page core.AccountPage) AccountPageResponse {
	content := make([]AccountResponse, 0, len(page.Content))
	for _, account := range page.Content {
		content = append(content, toAccountResponse(account))
	}
	return AccountPageResponse{
		Content:     content,
		CurrentPage: page.CurrentPage,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
	}
}

type CardResponse struct {
	CardID      string `json:"cardId"`
	CardAlias   string `json:"cardAlias"`
	Type        string `json:"type"`
	PAN         string `json:"pan"`
	CVV         string `json:"cvv"`
	AccountID   string `json:"accountId"`
	PrimaryCard bool   `json:"primaryCard"`
	Deleted     bool   `json:"deleted"`
}

func toCardResponse(card core.Card) CardResponse {
	return CardResponse{
		CardID:      card.CardID,
		CardAlias:   card.CardAlias,
		Type:        string(card.Type),
		PAN:         card.PAN,
		CVV:         card.CVV,
		AccountID:   card.AccountID,
		PrimaryCard: card.Primary,
		Deleted:     card.Deleted,
	}
}

func toCardResponses(cards []core.Card) []CardResponse {
	responses := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, toCardResponse(card))
	}
	return responses
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}

	return value, nil
}

func queryBool(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && value
}

// queryDate parses an optional ISO date (yyyy-mm-dd) parameter.
func queryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}

	return value, nil
}
