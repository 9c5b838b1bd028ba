package core

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		prefix        string
		lastIssued    string
		expected      string
		expectedError error
	}{
		{
			name:       "first identifier for a fresh prefix",
			prefix:     "CUS2026",
			lastIssued: "",
			expected:   "CUS202600001",
		},
		{
			name:       "increments the stored sequence",
			prefix:     "CUS2026",
			lastIssued: "CUS202600041",
			expected:   "CUS202600042",
		},
		{
			name:       "different prefix restarts the sequence",
			prefix:     "CUS2026",
			lastIssued: "CUS202599999",
			expected:   "CUS202600001",
		},
		{
			name:       "account number bucket",
			prefix:     "110012601",
			lastIssued: "11001260100007",
			expected:   "11001260100008",
		},
		{
			name:          "non-numeric suffix fails hard",
			prefix:        "CUS2026",
			lastIssued:    "CUS2026abcde",
			expectedError: ErrIdentifierCorrupted,
		},
		{
			name:          "exhausted sequence fails hard",
			prefix:        "CUS2026",
			lastIssued:    "CUS202699999",
			expectedError: ErrIdentifierCorrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NextIdentifier(tt.prefix, tt.lastIssued)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestIdentifierPrefixes(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	require.Equal(t, "CUS2026", CustomerIDPrefix(now))
	require.Equal(t, "C2026", CardIDPrefix(now))
	require.Equal(t, "110012603", AccountNumberPrefix(now))
	require.Equal(t, "45561100126", PANPrefix(now))
}

func TestPANLength(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	pan, err := NextIdentifier(PANPrefix(now), "")
	require.NoError(t, err)
	require.Len(t, pan, 16)
}

func TestBuildIBAN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		country       string
		bank          string
		branch        string
		accountNumber string
		wantErr       bool
	}{
		{
			name:          "valid components",
			country:       "KE",
			bank:          "11",
			branch:        "001",
			accountNumber: "11001260300001",
		},
		{
			name:          "missing account number",
			country:       "KE",
			bank:          "11",
			branch:        "001",
			accountNumber: "",
			wantErr:       true,
		},
		{
			name:          "missing country",
			country:       "",
			bank:          "11",
			branch:        "001",
			accountNumber: "11001260300001",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iban, err := BuildIBAN(tt.country, tt.bank, tt.branch, tt.accountNumber)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.country, iban[:2])
			require.Equal(t, tt.bank+tt.branch+tt.accountNumber, iban[4:])
			requireValidIBAN(t, iban)
		})
	}
}

// requireValidIBAN runs the standard ISO 7064 validation: move the first four
// characters to the end, expand letters to digits, and the whole number must
// be congruent to 1 mod 97.
func requireValidIBAN(t *testing.T, iban string) {
	t.Helper()

	rearranged := iban[4:] + iban[:4]
	expanded := ""
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			expanded += string(r)
		case r >= 'A' && r <= 'Z':
			expanded += big.NewInt(int64(r - 'A' + 10)).String()
		default:
			t.Fatalf("unexpected IBAN character %q", r)
		}
	}

	n, ok := new(big.Int).SetString(expanded, 10)
	require.True(t, ok)
	require.Equal(t, int64(1), new(big.Int).Mod(n, big.NewInt(97)).Int64())
}

func TestMaskPAN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pan      string
		expected string
	}{
		{
			name:     "full PAN keeps last four",
			pan:      "4556110012612345",
			expected: "**** **** **** 2345",
		},
		{
			name:     "short value masks entirely",
			pan:      "123",
			expected: "****",
		},
		{
			name:     "empty value masks entirely",
			pan:      "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, MaskPAN(tt.pan))
		})
	}
}

func TestParseCardType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		raw           string
		expected      CardType
		expectedError error
	}{
		{name: "physical", raw: "PHYSICAL", expected: CardTypePhysical},
		{name: "virtual", raw: "VIRTUAL", expected: CardTypeVirtual},
		{name: "lowercase rejected", raw: "physical", expectedError: ErrInvalidCardType},
		{name: "unknown rejected", raw: "METAL", expectedError: ErrInvalidCardType},
		{name: "empty rejected", raw: "", expectedError: ErrInvalidCardType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCardType(tt.raw)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}
