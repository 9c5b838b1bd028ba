package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService_Create(t *testing.T) {
	t.Parallel()

	prefix := AccountNumberPrefix(time.Now())

	tests := []struct {
		name          string
		newAccount    NewAccount
		lookupSetup   func(*MockCustomerLookup)
		repoSetup     func(t *testing.T, m *MockAccountRepository)
		expectedError error
	}{
		{
			name:       "mints account number and IBAN",
			newAccount: NewAccount{CustomerID: "CUS202600001", BicSwift: "KCBLKENX"},
			lookupSetup: func(m *MockCustomerLookup) {
				m.EXPECT().
					VerifyCustomer(context.Background(), "CUS202600001").
					Return(nil)
			},
			repoSetup: func(t *testing.T, m *MockAccountRepository) {
				m.EXPECT().
					Atomic(context.Background(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cb func(AccountRepository) error) error {
						innerCtrl := gomock.NewController(t)
						inner := NewMockAccountRepository(innerCtrl)

						inner.EXPECT().
							LastAccountID(context.Background(), prefix).
							Return("", nil)

						inner.EXPECT().
							IBANExists(context.Background(), gomock.Any()).
							Return(false, nil)

						inner.EXPECT().
							Insert(context.Background(), gomock.Any()).
							DoAndReturn(func(ctx context.Context, account Account) error {
								require.Equal(t, prefix+"00001", account.AccountID)
								require.True(t, strings.HasPrefix(account.IBAN, "KE"))
								require.True(t, strings.HasSuffix(account.IBAN, account.AccountID))
								require.Equal(t, "CUS202600001", account.CustomerID)
								require.Equal(t, "KCBLKENX", account.BicSwift)
								require.NotEqual(t, uuid.Nil, account.ID)
								return nil
							})

						return cb(inner)
					})
			},
		},
		{
			name:       "unknown customer blocks creation",
			newAccount: NewAccount{CustomerID: "CUS209900001"},
			lookupSetup: func(m *MockCustomerLookup) {
				m.EXPECT().
					VerifyCustomer(context.Background(), "CUS209900001").
					Return(ErrCustomerNotFound)
			},
			repoSetup:     func(t *testing.T, m *MockAccountRepository) {},
			expectedError: ErrCustomerNotFound,
		},
		{
			name:       "customer service down blocks creation",
			newAccount: NewAccount{CustomerID: "CUS202600001"},
			lookupSetup: func(m *MockCustomerLookup) {
				m.EXPECT().
					VerifyCustomer(context.Background(), "CUS202600001").
					Return(ErrLookupUnavailable)
			},
			repoSetup:     func(t *testing.T, m *MockAccountRepository) {},
			expectedError: ErrLookupUnavailable,
		},
		{
			name:       "colliding IBAN aborts the transaction",
			newAccount: NewAccount{CustomerID: "CUS202600001"},
			lookupSetup: func(m *MockCustomerLookup) {
				m.EXPECT().
					VerifyCustomer(context.Background(), "CUS202600001").
					Return(nil)
			},
			repoSetup: func(t *testing.T, m *MockAccountRepository) {
				m.EXPECT().
					Atomic(context.Background(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cb func(AccountRepository) error) error {
						innerCtrl := gomock.NewController(t)
						inner := NewMockAccountRepository(innerCtrl)

						inner.EXPECT().
							LastAccountID(context.Background(), prefix).
							Return(prefix+"00008", nil)

						inner.EXPECT().
							IBANExists(context.Background(), gomock.Any()).
							Return(true, nil)

						return cb(inner)
					})
			},
			expectedError: ErrIBANTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockRepo := NewMockAccountRepository(ctrl)
			mockLookup := NewMockCustomerLookup(ctrl)
			tt.lookupSetup(mockLookup)
			tt.repoSetup(t, mockRepo)

			service := NewAccountService(mockRepo, mockLookup)

			created, err := service.Create(context.Background(), tt.newAccount)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, prefix+"00001", created.AccountID)
		})
	}
}

func TestAccountService_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mockSetup     func(*MockAccountRepository)
		expectedError error
	}{
		{
			name: "live account is returned",
			mockSetup: func(m *MockAccountRepository) {
				m.EXPECT().
					GetByAccountID(context.Background(), "11001260300001").
					Return(Account{AccountID: "11001260300001"}, nil)
			},
		},
		{
			name: "unknown account",
			mockSetup: func(m *MockAccountRepository) {
				m.EXPECT().
					GetByAccountID(context.Background(), "11001260300001").
					Return(Account{}, ErrAccountNotFound)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name: "soft-deleted account answers gone",
			mockSetup: func(m *MockAccountRepository) {
				m.EXPECT().
					GetByAccountID(context.Background(), "11001260300001").
					Return(Account{AccountID: "11001260300001", Deleted: true}, nil)
			},
			expectedError: ErrAccountGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockRepo := NewMockAccountRepository(ctrl)
			tt.mockSetup(mockRepo)

			service := NewAccountService(mockRepo, NewMockCustomerLookup(ctrl))

			_, err := service.Fetch(context.Background(), "11001260300001")
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAccountService_Edit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockAccountRepository(ctrl)

	mockRepo.EXPECT().
		Atomic(context.Background(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(AccountRepository) error) error {
			innerCtrl := gomock.NewController(t)
			inner := NewMockAccountRepository(innerCtrl)

			inner.EXPECT().
				GetByAccountID(context.Background(), "11001260300001").
				Return(Account{AccountID: "11001260300001", BicSwift: "OLDBICXX"}, nil)

			inner.EXPECT().
				Update(context.Background(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, account Account) error {
					require.Equal(t, "KCBLKENX", account.BicSwift)
					return nil
				})

			return cb(inner)
		})

	service := NewAccountService(mockRepo, NewMockCustomerLookup(ctrl))

	edited, err := service.Edit(context.Background(), "11001260300001", "KCBLKENX")
	require.NoError(t, err)
	require.Equal(t, "KCBLKENX", edited.BicSwift)
}

func TestAccountService_Delete_Idempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockAccountRepository(ctrl)

	mockRepo.EXPECT().
		Atomic(context.Background(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(AccountRepository) error) error {
			innerCtrl := gomock.NewController(t)
			inner := NewMockAccountRepository(innerCtrl)

			// Already deleted: no Update expected.
			inner.EXPECT().
				GetByAccountID(context.Background(), "11001260300001").
				Return(Account{AccountID: "11001260300001", Deleted: true}, nil)

			return cb(inner)
		})

	service := NewAccountService(mockRepo, NewMockCustomerLookup(ctrl))

	deleted, err := service.Delete(context.Background(), "11001260300001")
	require.NoError(t, err)
	require.True(t, deleted.Deleted)
}

func TestAccountService_Search_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockAccountRepository(ctrl)

	mockRepo.EXPECT().
		Search(context.Background(), AccountSearch{BicSwift: "KCB", Page: 0, Size: 10}).
		Return(AccountPage{}, nil)

	service := NewAccountService(mockRepo, NewMockCustomerLookup(ctrl))

	_, err := service.Search(context.Background(), AccountSearch{BicSwift: "KCB", Page: -1})
	require.NoError(t, err)
}
