package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"corebank/internal/core"
)

func TestCustomerClient_VerifyCustomer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        int
		expectedError error
	}{
		{name: "live customer", status: http.StatusOK},
		{name: "unknown customer", status: http.StatusNotFound, expectedError: core.ErrCustomerNotFound},
		{name: "soft-deleted customer", status: http.StatusGone, expectedError: core.ErrCustomerNotFound},
		{name: "customer service failure", status: http.StatusInternalServerError, expectedError: core.ErrLookupUnavailable},
		{name: "unexpected redirect-ish status", status: http.StatusTeapot, expectedError: core.ErrLookupUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/customers", r.URL.Path)
				require.Equal(t, "CUS202600001", r.URL.Query().Get("customerId"))
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewCustomerClient(server.URL, time.Second)

			err := client.VerifyCustomer(context.Background(), "CUS202600001")
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAccountClient_VerifyAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        int
		expectedError error
	}{
		{name: "live account", status: http.StatusOK},
		{name: "unknown account", status: http.StatusNotFound, expectedError: core.ErrAccountNotFound},
		{name: "soft-deleted account", status: http.StatusGone, expectedError: core.ErrAccountNotFound},
		{name: "account service failure", status: http.StatusServiceUnavailable, expectedError: core.ErrLookupUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/accounts", r.URL.Path)
				require.Equal(t, "11001260300001", r.URL.Query().Get("accountId"))
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewAccountClient(server.URL, time.Second)

			err := client.VerifyAccount(context.Background(), "11001260300001")
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCustomerClient_ServiceUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := NewCustomerClient(server.URL, time.Second)

	err := client.VerifyCustomer(context.Background(), "CUS202600001")
	require.ErrorIs(t, err, core.ErrLookupUnavailable)
}

func TestCustomerClient_Timeout(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewCustomerClient(server.URL, 50*time.Millisecond)

	err := client.VerifyCustomer(context.Background(), "CUS202600001")
	require.ErrorIs(t, err, core.ErrLookupUnavailable)
}

func TestCustomerClient_EscapesQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "a b&c", r.URL.Query().Get("customerId"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewCustomerClient(server.URL+"/", time.Second)

	require.NoError(t, client.VerifyCustomer(context.Background(), "a b&c"))
}
