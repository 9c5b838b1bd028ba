package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// A card account holds at most this many live cards.
const maxCardsPerAccount = 2

type CardService struct {
	cardRepository CardRepository
	accountLookup  AccountLookup
}

func NewCardService(cardRepo CardRepository, accountLookup AccountLookup) CardService {
	return CardService{
		cardRepository: cardRepo,
		accountLookup:  accountLookup,
	}
}

// Create validates the owning account against the account service, enforces
// the issuance rules (max two live cards, one per type), then mints the card
// identifier and PAN and persists the card in a single transaction. The
// first live card on an account becomes the primary card.
func (s CardService) Create(ctx context.Context, newCard NewCard) (Card, error) {
	if _, err := ParseCardType(string(newCard.Type)); err != nil {
		return Card{}, err
	}

	if err := s.accountLookup.VerifyAccount(ctx, newCard.AccountID); err != nil {
		return Card{}, err
	}

	var created Card

	transactionCallback := func(r CardRepository) error {
		existing, err := r.LiveByAccountID(ctx, newCard.AccountID)
		if err != nil {
			return err
		}

		if len(existing) >= maxCardsPerAccount {
			return ErrCardLimitReached
		}

		for _, card := range existing {
			if card.Type == newCard.Type {
				return ErrDuplicateCardType
			}
		}

		now := time.Now()

		cardPrefix := CardIDPrefix(now)
		lastCardID, err := r.LastCardID(ctx, cardPrefix)
		if err != nil {
			return err
		}
		cardID, err := NextIdentifier(cardPrefix, lastCardID)
		if err != nil {
			return err
		}

		panPrefix := PANPrefix(now)
		lastPAN, err := r.LastPAN(ctx, panPrefix)
		if err != nil {
			return err
		}
		pan, err := NextIdentifier(panPrefix, lastPAN)
		if err != nil {
			return err
		}

		created = Card{
			ID:        uuid.New(),
			CardID:    cardID,
			CardAlias: newCard.CardAlias,
			Type:      newCard.Type,
			PAN:       pan,
			CVV:       newCard.CVV,
			AccountID: newCard.AccountID,
			Primary:   len(existing) == 0,
		}

		return r.Insert(ctx, created)
	}

	if err := s.cardRepository.Atomic(ctx, transactionCallback); err != nil {
		return Card{}, err
	}

	return created, nil
}

// Fetch returns the card with PAN and CVV masked unless revealSensitive is
// set. Soft-deleted cards answer with ErrCardGone.
func (s CardService) Fetch(ctx context.Context, cardID string, revealSensitive bool) (Card, error) {
	card, err := s.cardRepository.GetByCardID(ctx, cardID)
	if err != nil {
		return Card{}, err
	}

	if card.Deleted {
		return Card{}, ErrCardGone
	}

	if !revealSensitive {
		card = maskCard(card)
	}

	return card, nil
}

// Edit updates the only mutable field, the alias.
func (s CardService) Edit(ctx context.Context, cardID string, alias string) (Card, error) {
	var edited Card

	transactionCallback := func(r CardRepository) error {
		card, err := r.GetByCardID(ctx, cardID)
		if err != nil {
			return err
		}

		if card.Deleted {
			return ErrCardGone
		}

		card.CardAlias = alias

		if err = r.Update(ctx, card); err != nil {
			return err
		}

		edited = card
		return nil
	}

	if err := s.cardRepository.Atomic(ctx, transactionCallback); err != nil {
		return Card{}, err
	}

	return maskCard(edited), nil
}

// Delete soft-deletes the card; re-deleting is a successful no-op.
func (s CardService) Delete(ctx context.Context, cardID string) (Card, error) {
	var deleted Card

	transactionCallback := func(r CardRepository) error {
		card, err := r.GetByCardID(ctx, cardID)
		if err != nil {
			return err
		}

		if !card.Deleted {
			card.Deleted = true
			if err = r.Update(ctx, card); err != nil {
				return err
			}
		}

		deleted = card
		return nil
	}

	if err := s.cardRepository.Atomic(ctx, transactionCallback); err != nil {
		return Card{}, err
	}

	return maskCard(deleted), nil
}

// Search lists live cards matching the filter. Results are masked unless
// revealSensitive is set.
func (s CardService) Search(ctx context.Context, search CardSearch, revealSensitive bool) ([]Card, error) {
	if search.Size <= 0 {
		search.Size = 10
	}
	if search.Page < 0 {
		search.Page = 0
	}

	cards, err := s.cardRepository.Search(ctx, search)
	if err != nil {
		return nil, err
	}

	if !revealSensitive {
		for i, card := range cards {
			cards[i] = maskCard(card)
		}
	}

	return cards, nil
}

func maskCard(card Card) Card {
	card.PAN = MaskPAN(card.PAN)
	card.CVV = MaskedCVV
	return card
}
