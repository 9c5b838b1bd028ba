package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AccountService struct {
	accountRepository AccountRepository
	customerLookup    CustomerLookup
}

func NewAccountService(accountRepo AccountRepository, customerLookup CustomerLookup) AccountService {
	return AccountService{
		accountRepository: accountRepo,
		customerLookup:    customerLookup,
	}
}

// Create validates the owning customer against the customer service, then
// mints the account number and IBAN and persists the account in a single
// transaction. Account numbers are sequential within a bank+branch+month
// bucket; the IBAN is derived from the number and must be globally unique.
func (s AccountService) Create(ctx context.Context, newAccount NewAccount) (Account, error) {
	if err := s.customerLookup.VerifyCustomer(ctx, newAccount.CustomerID); err != nil {
		return Account{}, err
	}

	var created Account

	transactionCallback := func(r AccountRepository) error {
		prefix := AccountNumberPrefix(time.Now())

		last, err := r.LastAccountID(ctx, prefix)
		if err != nil {
			return err
		}

		accountID, err := NextIdentifier(prefix, last)
		if err != nil {
			return err
		}

		iban, err := BuildIBAN(countryCode, bankCode, branchCode, accountID)
		if err != nil {
			return err
		}

		taken, err := r.IBANExists(ctx, iban)
		if err != nil {
			return err
		}
		if taken {
			return ErrIBANTaken
		}

		created = Account{
			ID:         uuid.New(),
			AccountID:  accountID,
			IBAN:       iban,
			BicSwift:   newAccount.BicSwift,
			CustomerID: newAccount.CustomerID,
		}

		return r.Insert(ctx, created)
	}

	if err := s.accountRepository.Atomic(ctx, transactionCallback); err != nil {
		return Account{}, err
	}

	return created, nil
}

func (s AccountService) Fetch(ctx context.Context, accountID string) (Account, error) {
	account, err := s.accountRepository.GetByAccountID(ctx, accountID)
	if err != nil {
		return Account{}, err
	}

	if account.Deleted {
		return Account{}, ErrAccountGone
	}

	return account, nil
}

// Edit updates the only mutable field, bicSwift. Soft-deleted accounts
// refuse edits.
func (s AccountService) Edit(ctx context.Context, accountID string, bicSwift string) (Account, error) {
	var edited Account

	transactionCallback := func(r AccountRepository) error {
		account, err := r.GetByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		if account.Deleted {
			return ErrAccountGone
		}

		account.BicSwift = bicSwift

		if err = r.Update(ctx, account); err != nil {
			return err
		}

		edited = account
		return nil
	}

	if err := s.accountRepository.Atomic(ctx, transactionCallback); err != nil {
		return Account{}, err
	}

	return edited, nil
}

// Delete soft-deletes the account. Re-deleting is a successful no-op; the
// only failure is an account that never existed.
func (s AccountService) Delete(ctx context.Context, accountID string) (Account, error) {
	var deleted Account

	transactionCallback := func(r AccountRepository) error {
		account, err := r.GetByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		if !account.Deleted {
			account.Deleted = true
			if err = r.Update(ctx, account); err != nil {
				return err
			}
		}

		deleted = account
		return nil
	}

	if err := s.accountRepository.Atomic(ctx, transactionCallback); err != nil {
		return Account{}, err
	}

	return deleted, nil
}

func (s AccountService) Search(ctx context.Context, search AccountSearch) (AccountPage, error) {
	if search.Size <= 0 {
		search.Size = 10
	}
	if search.Page < 0 {
		search.Page = 0
	}

	return s.accountRepository.Search(ctx, search)
}
