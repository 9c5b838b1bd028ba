package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CustomerService struct {
	customerRepository CustomerRepository
}

func NewCustomerService(customerRepo CustomerRepository) CustomerService {
	return CustomerService{
		customerRepository: customerRepo,
	}
}

// Create mints the next customer identifier and persists the record. The
// read-last / generate / insert sequence runs in one transaction so two
// concurrent creations cannot observe the same last-issued value.
func (s CustomerService) Create(ctx context.Context, newCustomer NewCustomer) (Customer, error) {
	var created Customer

	transactionCallback := func(r CustomerRepository) error {
		prefix := CustomerIDPrefix(time.Now())

		last, err := r.LastCustomerID(ctx, prefix)
		if err != nil {
			return err
		}

		customerID, err := NextIdentifier(prefix, last)
		if err != nil {
			return err
		}

		created = Customer{
			ID:         uuid.New(),
			CustomerID: customerID,
			FirstName:  newCustomer.FirstName,
			LastName:   newCustomer.LastName,
			OtherName:  newCustomer.OtherName,
			CreatedAt:  time.Now().UTC(),
		}

		return r.Insert(ctx, created)
	}

	if err := s.customerRepository.Atomic(ctx, transactionCallback); err != nil {
		return Customer{}, err
	}

	return created, nil
}

func (s CustomerService) Fetch(ctx context.Context, customerID string) (Customer, error) {
	customer, err := s.customerRepository.GetByCustomerID(ctx, customerID)
	if err != nil {
		return Customer{}, err
	}

	if customer.Deleted {
		return Customer{}, ErrCustomerGone
	}

	return customer, nil
}

func (s CustomerService) FetchAll(ctx context.Context) ([]Customer, error) {
	return s.customerRepository.GetAll(ctx)
}

func (s CustomerService) Edit(ctx context.Context, customerID string, update CustomerUpdate) (Customer, error) {
	var edited Customer

	transactionCallback := func(r CustomerRepository) error {
		customer, err := r.GetByCustomerID(ctx, customerID)
		if err != nil {
			return err
		}

		if customer.Deleted {
			return ErrCustomerGone
		}

		customer.FirstName = update.FirstName
		customer.LastName = update.LastName
		customer.OtherName = update.OtherName
		customer.UpdatedAt = time.Now().UTC()

		if err = r.Update(ctx, customer); err != nil {
			return err
		}

		edited = customer
		return nil
	}

	if err := s.customerRepository.Atomic(ctx, transactionCallback); err != nil {
		return Customer{}, err
	}

	return edited, nil
}

// Delete soft-deletes the customer. Deleting an already-deleted customer is
// a no-op that still succeeds.
func (s CustomerService) Delete(ctx context.Context, customerID string) (Customer, error) {
	var deleted Customer

	transactionCallback := func(r CustomerRepository) error {
		customer, err := r.GetByCustomerID(ctx, customerID)
		if err != nil {
			return err
		}

		if !customer.Deleted {
			customer.Deleted = true
			customer.UpdatedAt = time.Now().UTC()
			if err = r.Update(ctx, customer); err != nil {
				return err
			}
		}

		deleted = customer
		return nil
	}

	if err := s.customerRepository.Atomic(ctx, transactionCallback); err != nil {
		return Customer{}, err
	}

	return deleted, nil
}

func (s CustomerService) Search(ctx context.Context, search CustomerSearch) (CustomerPage, error) {
	if search.Size <= 0 {
		search.Size = 10
	}
	if search.Page < 0 {
		search.Page = 0
	}

	return s.customerRepository.Search(ctx, search)
}
