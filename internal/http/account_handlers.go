package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"corebank/internal/core"
)

type AccountHandler struct {
	accounts AccountWorkflow
	logger   core.Logger
}

func NewAccountHandler(accounts AccountWorkflow, logger core.Logger) AccountHandler {
	return AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

func (h AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	account, err := h.accounts.Create(ctx, core.NewAccount{
		CustomerID: req.CustomerID,
		BicSwift:   req.BicSwift,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	payload := toAccountResponse(account)
	respond(w, http.StatusCreated, "Account created successfully", &payload)
}

func (h AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		respondError(w, http.StatusBadRequest, "accountId is required")
		return
	}

	account, err := h.accounts.Fetch(r.Context(), accountID)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toAccountResponse(account)
	respond(w, http.StatusOK, "Account fetched successfully", &payload)
}

func (h AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		respondError(w, http.StatusBadRequest, "accountId is required")
		return
	}

	var req AccountEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	account, err := h.accounts.Edit(r.Context(), accountID, req.BicSwift)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toAccountResponse(account)
	respond(w, http.StatusOK, "Account updated successfully", &payload)
}

func (h AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		respondError(w, http.StatusBadRequest, "accountId is required")
		return
	}

	account, err := h.accounts.Delete(r.Context(), accountID)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toAccountResponse(account)
	respond(w, http.StatusOK, "Account deleted successfully (soft delete)", &payload)
}

func (h AccountHandler) SearchAccounts(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	size, err := queryInt(r, "size", 10)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accounts.Search(r.Context(), core.AccountSearch{
		IBAN:     r.URL.Query().Get("iban"),
		BicSwift: r.URL.Query().Get("bicSwift"),
		Page:     page,
		Size:     size,
	})
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toAccountPageResponse(result)
	respond(w, http.StatusOK, "Accounts fetched successfully", &payload)
}

func (h AccountHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrCustomerNotFound):
		respondError(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, core.ErrAccountNotFound):
		respondError(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, core.ErrAccountGone):
		respondError(w, http.StatusGone, "Account has been deleted")
	case errors.Is(err, core.ErrIBANTaken):
		respondError(w, http.StatusConflict, "IBAN already exists")
	case errors.Is(err, core.ErrLookupUnavailable):
		respondError(w, http.StatusServiceUnavailable, "Customer service unavailable")
	default:
		h.logger.ErrorContext(ctx, "account request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}
