package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	sequenceWidth = 5
	maxSequence   = 99999

	countryCode = "KE"
	bankCode    = "11"
	branchCode  = "001"

	// Issuer identification prefix for generated PANs. Together with the
	// bank code, branch code and a two-digit year it leaves exactly five
	// digits of sequence in a 16-digit PAN.
	panScheme = "4556"

	customerIDScheme = "CUS"
	cardIDScheme     = "C"

	MaskedCVV = "***"
)

// NextIdentifier derives the next identifier in a prefix-scoped sequence.
// lastIssued is the highest identifier already stored for the prefix, or
// empty when none exists. A lastIssued from a different prefix restarts the
// sequence: the prefix encodes a time bucket, so sequences roll over
// naturally when the bucket changes.
//
// A matching lastIssued whose suffix does not parse is corrupted data; we
// fail hard rather than restart at 1 and risk issuing a duplicate.
func NextIdentifier(prefix, lastIssued string) (string, error) {
	next := 1
	if lastIssued != "" && strings.HasPrefix(lastIssued, prefix) {
		seq, err := strconv.Atoi(lastIssued[len(prefix):])
		if err != nil || seq < 0 {
			return "", fmt.Errorf("%w: last issued %q has a non-numeric sequence for prefix %q", ErrIdentifierCorrupted, lastIssued, prefix)
		}
		next = seq + 1
	}

	if next > maxSequence {
		return "", fmt.Errorf("%w: sequence exhausted for prefix %q", ErrIdentifierCorrupted, prefix)
	}

	return prefix + fmt.Sprintf("%0*d", sequenceWidth, next), nil
}

func CustomerIDPrefix(now time.Time) string {
	return customerIDScheme + now.Format("2006")
}

func CardIDPrefix(now time.Time) string {
	return cardIDScheme + now.Format("2006")
}

// AccountNumberPrefix buckets account sequences per bank, branch and month.
func AccountNumberPrefix(now time.Time) string {
	return bankCode + branchCode + now.Format("0601")
}

func PANPrefix(now time.Time) string {
	return panScheme + bankCode + branchCode + now.Format("06")
}

// BuildIBAN deterministically assembles an IBAN from its parts. Check digits
// are computed per ISO 7064 mod 97-10, so the result validates against any
// IBAN checker.
func BuildIBAN(country, bank, branch, accountNumber string) (string, error) {
	if country == "" || bank == "" || branch == "" || accountNumber == "" {
		return "", errors.New("all IBAN components are required")
	}

	bban := bank + branch + accountNumber
	check, err := ibanCheckDigits(country, bban)
	if err != nil {
		return "", err
	}

	return country + check + bban, nil
}

// ibanCheckDigits runs the mod-97 computation over bban + country + "00",
// with letters expanded to two digits (A=10 .. Z=35). The remainder is kept
// small at every step so the value never outgrows an int.
func ibanCheckDigits(country, bban string) (string, error) {
	rem := 0
	for _, r := range bban + country + "00" {
		switch {
		case r >= '0' && r <= '9':
			rem = (rem*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			rem = (rem*100 + int(r-'A'+10)) % 97
		default:
			return "", fmt.Errorf("invalid IBAN character %q", r)
		}
	}

	return fmt.Sprintf("%02d", 98-rem), nil
}

// MaskPAN hides all but the last four digits. Anything too short to have a
// meaningful tail masks completely.
func MaskPAN(pan string) string {
	if len(pan) < 4 {
		return "****"
	}

	return "**** **** **** " + pan[len(pan)-4:]
}
