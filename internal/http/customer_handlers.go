package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"corebank/internal/core"
)

type CustomerHandler struct {
	customers CustomerWorkflow
	logger    core.Logger
}

func NewCustomerHandler(customers CustomerWorkflow, logger core.Logger) CustomerHandler {
	return CustomerHandler{
		customers: customers,
		logger:    logger,
	}
}

func (h CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	customer, err := h.customers.Create(ctx, core.NewCustomer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		OtherName: req.OtherName,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	payload := toCustomerResponse(customer)
	respond(w, http.StatusCreated, "Customer created successfully", &payload)
}

func (h CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	if customerID == "" {
		respondError(w, http.StatusBadRequest, "customerId is required")
		return
	}

	customer, err := h.customers.Fetch(r.Context(), customerID)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toCustomerResponse(customer)
	respond(w, http.StatusOK, "Customer fetched successfully", &payload)
}

func (h CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.FetchAll(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	if len(customers) == 0 {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	payload := toCustomerResponses(customers)
	respond(w, http.StatusOK, "Customers fetched successfully", &payload)
}

func (h CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
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
	startDate, err := queryDate(r, "startDate")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	endDate, err := queryDate(r, "endDate")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.customers.Search(r.Context(), core.CustomerSearch{
		Keyword:   r.URL.Query().Get("q"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      page,
		Size:      size,
	})
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	if len(result.Content) == 0 {
		respondError(w, http.StatusNotFound, "No customers found")
		return
	}

	payload := CustomerPageResponse{
		Content:     toCustomerResponses(result.Content),
		CurrentPage: result.CurrentPage,
		TotalItems:  result.TotalItems,
		TotalPages:  result.TotalPages,
	}
	respond(w, http.StatusOK, "Customers found", &payload)
}

func (h CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	if customerID == "" {
		respondError(w, http.StatusBadRequest, "customerId is required")
		return
	}

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	customer, err := h.customers.Edit(r.Context(), customerID, core.CustomerUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		OtherName: req.OtherName,
	})
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toCustomerResponse(customer)
	respond(w, http.StatusOK, "Customer updated successfully", &payload)
}

func (h CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	if customerID == "" {
		respondError(w, http.StatusBadRequest, "customerId is required")
		return
	}

	customer, err := h.customers.Delete(r.Context(), customerID)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toCustomerResponse(customer)
	respond(w, http.StatusOK, "Customer deleted successfully (soft delete)", &payload)
}

func (h CustomerHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrCustomerNotFound):
		respondError(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, core.ErrCustomerGone):
		respondError(w, http.StatusGone, "Customer has been deleted")
	default:
		h.logger.ErrorContext(ctx, "customer request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}
