package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"corebank/internal/core"
)

type CardHandler struct {
	cards  CardWorkflow
	logger core.Logger
}

func NewCardHandler(cards CardWorkflow, logger core.Logger) CardHandler {
	return CardHandler{
		cards:  cards,
		logger: logger,
	}
}

func (h CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	card, err := h.cards.Create(ctx, core.NewCard{
		AccountID: req.AccountID,
		CardAlias: req.CardAlias,
		Type:      core.CardType(req.Type),
		CVV:       req.CVV,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	payload := toCardResponse(card)
	respond(w, http.StatusCreated, "Card created successfully", &payload)
}

func (h CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID := r.URL.Query().Get("cardId")
	if cardID == "" {
		respondError(w, http.StatusBadRequest, "cardId is required")
		return
	}

	card, err := h.cards.Fetch(r.Context(), cardID, queryBool(r, "showSensitive"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toCardResponse(card)
	respond(w, http.StatusOK, "Card fetched successfully", &payload)
}

func (h CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID := r.URL.Query().Get("cardId")
	if cardID == "" {
		respondError(w, http.StatusBadRequest, "cardId is required")
		return
	}

	var req CardEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	card, err := h.cards.Edit(r.Context(), cardID, req.CardAlias)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toCardResponse(card)
	respond(w, http.StatusOK, "Card alias updated successfully", &payload)
}

func (h CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID := r.URL.Query().Get("cardId")
	if cardID == "" {
		respondError(w, http.StatusBadRequest, "cardId is required")
		return
	}

	card, err := h.cards.Delete(r.Context(), cardID)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toCardResponse(card)
	respond(w, http.StatusOK, "Card deleted successfully (soft delete)", &payload)
}

func (h CardHandler) SearchCards(w http.ResponseWriter, r *http.Request) {
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

	var cardType core.CardType
	if raw := r.URL.Query().Get("type"); raw != "" {
		cardType, err = core.ParseCardType(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid card type: "+raw)
			return
		}
	}

	cards, err := h.cards.Search(r.Context(), core.CardSearch{
		CardAlias: r.URL.Query().Get("cardAlias"),
		Type:      cardType,
		PAN:       r.URL.Query().Get("pan"),
		Page:      page,
		Size:      size,
	}, queryBool(r, "showSensitive"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	payload := toCardResponses(cards)
	respond(w, http.StatusOK, "Cards fetched successfully", &payload)
}

func (h CardHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrAccountNotFound):
		respondError(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, core.ErrCardNotFound):
		respondError(w, http.StatusNotFound, "Card not found")
	case errors.Is(err, core.ErrCardGone):
		respondError(w, http.StatusGone, "Card is marked as deleted")
	case errors.Is(err, core.ErrCardLimitReached):
		respondError(w, http.StatusConflict, "Maximum of 2 cards allowed per account")
	case errors.Is(err, core.ErrDuplicateCardType):
		respondError(w, http.StatusConflict, "Card of this type already exists for the account")
	case errors.Is(err, core.ErrPANTaken):
		respondError(w, http.StatusConflict, "PAN already exists")
	case errors.Is(err, core.ErrInvalidCardType):
		respondError(w, http.StatusBadRequest, "Invalid card type")
	case errors.Is(err, core.ErrLookupUnavailable):
		respondError(w, http.StatusServiceUnavailable, "Account service unavailable")
	default:
		h.logger.ErrorContext(ctx, "card request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}
