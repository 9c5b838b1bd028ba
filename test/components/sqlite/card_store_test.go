package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"corebank/internal/core"
	"corebank/internal/sqlite"
)

func seedCard(t *testing.T, store sqlite.CardStore, cardID, pan, accountID string, cardType core.CardType, deleted bool) core.Card {
	t.Helper()

	card := core.Card{
		ID:        uuid.New(),
		CardID:    cardID,
		CardAlias: "Alias " + cardID,
		Type:      cardType,
		PAN:       pan,
		CVV:       "123",
		AccountID: accountID,
		Deleted:   deleted,
	}
	require.NoError(t, store.Insert(context.Background(), card))

	return card
}

func TestCardStore_InsertAndGet(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewCardStore(suite.DB)
	seeded := seedCard(t, store, "C202600001", "4556110012600001", "11001260300001", core.CardTypePhysical, false)

	got, err := store.GetByCardID(context.Background(), "C202600001")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, got.ID)
	require.Equal(t, core.CardTypePhysical, got.Type)
	require.Equal(t, "4556110012600001", got.PAN)

	_, err = store.GetByCardID(context.Background(), "C209900001")
	require.ErrorIs(t, err, core.ErrCardNotFound)
}

func TestCardStore_LiveByAccountID(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewCardStore(suite.DB)
	seedCard(t, store, "C202600001", "4556110012600001", "11001260300001", core.CardTypePhysical, false)
	seedCard(t, store, "C202600002", "4556110012600002", "11001260300001", core.CardTypeVirtual, true)
	seedCard(t, store, "C202600003", "4556110012600003", "11001260300002", core.CardTypePhysical, false)

	live, err := store.LiveByAccountID(context.Background(), "11001260300001")
	require.NoError(t, err)
	require.Len(t, live, 1, "soft-deleted cards do not count against the account")
	require.Equal(t, "C202600001", live[0].CardID)
}

func TestCardStore_LastCardIDAndPAN(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewCardStore(suite.DB)

	last, err := store.LastCardID(context.Background(), "C2026")
	require.NoError(t, err)
	require.Empty(t, last)

	seedCard(t, store, "C202600001", "4556110012600004", "11001260300001", core.CardTypePhysical, false)
	seedCard(t, store, "C202600011", "4556110012600002", "11001260300002", core.CardTypeVirtual, false)

	last, err = store.LastCardID(context.Background(), "C2026")
	require.NoError(t, err)
	require.Equal(t, "C202600011", last)

	lastPAN, err := store.LastPAN(context.Background(), "45561100126")
	require.NoError(t, err)
	require.Equal(t, "4556110012600004", lastPAN)
}

func TestCardStore_Insert_DuplicatePAN(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewCardStore(suite.DB)
	seedCard(t, store, "C202600001", "4556110012600001", "11001260300001", core.CardTypePhysical, false)

	err := store.Insert(context.Background(), core.Card{
		ID:        uuid.New(),
		CardID:    "C202600002",
		CardAlias: "Duplicate",
		Type:      core.CardTypeVirtual,
		PAN:       "4556110012600001",
		CVV:       "456",
		AccountID: "11001260300001",
	})
	require.ErrorIs(t, err, core.ErrPANTaken)
}

func TestCardStore_Update_SoftDelete(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewCardStore(suite.DB)
	card := seedCard(t, store, "C202600001", "4556110012600001", "11001260300001", core.CardTypePhysical, false)

	card.CardAlias = "Renamed"
	card.Deleted = true
	require.NoError(t, store.Update(context.Background(), card))

	got, err := store.GetByCardID(context.Background(), "C202600001")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.CardAlias)
	require.True(t, got.Deleted)

	err = store.Update(context.Background(), core.Card{CardID: "C209900001"})
	require.ErrorIs(t, err, core.ErrCardNotFound)
}

func TestCardStore_Search(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewCardStore(suite.DB)
	seedCard(t, store, "C202600001", "4556110012600001", "11001260300001", core.CardTypePhysical, false)
	seedCard(t, store, "C202600002", "4556110012600002", "11001260300001", core.CardTypeVirtual, false)
	seedCard(t, store, "C202600003", "4556110012600003", "11001260300002", core.CardTypePhysical, true)

	t.Run("deleted cards never appear", func(t *testing.T) {
		cards, err := store.Search(context.Background(), core.CardSearch{Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, cards, 2)
	})

	t.Run("type filter", func(t *testing.T) {
		cards, err := store.Search(context.Background(), core.CardSearch{Type: core.CardTypeVirtual, Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		require.Equal(t, "C202600002", cards[0].CardID)
	})

	t.Run("pan substring filter", func(t *testing.T) {
		cards, err := store.Search(context.Background(), core.CardSearch{PAN: "00002", Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, cards, 1)
	})

	t.Run("alias matches case-insensitively", func(t *testing.T) {
		cards, err := store.Search(context.Background(), core.CardSearch{CardAlias: "alias c2026", Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, cards, 2)
	})

	t.Run("paging", func(t *testing.T) {
		cards, err := store.Search(context.Background(), core.CardSearch{Page: 1, Size: 1})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		require.Equal(t, "C202600002", cards[0].CardID)
	})
}

func TestCardStore_Atomic_IssuesSequentialCards(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewCardStore(suite.DB)

	for i := 0; i < 3; i++ {
		err := store.Atomic(context.Background(), func(r core.CardRepository) error {
			lastCardID, err := r.LastCardID(context.Background(), "C2026")
			if err != nil {
				return err
			}
			cardID, err := core.NextIdentifier("C2026", lastCardID)
			if err != nil {
				return err
			}

			lastPAN, err := r.LastPAN(context.Background(), "45561100126")
			if err != nil {
				return err
			}
			pan, err := core.NextIdentifier("45561100126", lastPAN)
			if err != nil {
				return err
			}

			return r.Insert(context.Background(), core.Card{
				ID:        uuid.New(),
				CardID:    cardID,
				CardAlias: "Issued",
				Type:      core.CardTypePhysical,
				PAN:       pan,
				CVV:       "123",
				AccountID: "11001260300001",
			})
		})
		require.NoError(t, err)
	}

	last, err := store.LastCardID(context.Background(), "C2026")
	require.NoError(t, err)
	require.Equal(t, "C202600003", last)

	lastPAN, err := store.LastPAN(context.Background(), "45561100126")
	require.NoError(t, err)
	require.Equal(t, "4556110012600003", lastPAN)
}
