// Package sequence generates the store's internal identifiers: the 6-digit
// phone numbers printed as barcodes and the human-readable sale numbers.
package sequence

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// MaxPhoneNumber is the last assignable phone number, inclusive.
const MaxPhoneNumber = 100000

// PhoneNumberDigits is the fixed width of the rendered number.
const PhoneNumberDigits = 6

// MaxBarcodeDigits bounds scanned barcode values. Allocated numbers are
// 6 digits; scanned manufacturer barcodes (EAN-13, UPC-A) are kept as-is
// up to this limit, which matches the column width in the store.
const MaxBarcodeDigits = 20

// ErrCapacityExceeded is returned once the number space is used up.
var ErrCapacityExceeded = errors.New("phone number capacity exceeded (100000)")

// NextPhoneNumber computes the next unused phone number from the numbers
// already in the store: max+1, zero-padded to 6 digits. Malformed entries
// count as 0. The caller must re-check uniqueness against the live store
// before committing, since the store gives no allocation guarantee.
func NextPhoneNumber(existing []string) (string, error) {
	max := 0
	for _, raw := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			n = 0
		}
		if n > max {
			max = n
		}
	}

	next := max + 1
	if next > MaxPhoneNumber {
		return "", ErrCapacityExceeded
	}
	return FormatPhoneNumber(next), nil
}

// FormatPhoneNumber renders n as the zero-padded internal format.
func FormatPhoneNumber(n int) string {
	return fmt.Sprintf("%0*d", PhoneNumberDigits, n)
}

// NormalizeBarcode strips non-digits from a scanned barcode value and
// returns the numeric payload. The second return is false when nothing
// numeric remains or the payload exceeds MaxBarcodeDigits.
func NormalizeBarcode(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || len(cleaned) > MaxBarcodeDigits {
		return "", false
	}
	return cleaned, true
}

// SaleNumber generates a receipt number: S-<timestamp>-<random suffix>.
// Uniqueness is not guaranteed by construction; callers verify against the
// store and regenerate on collision, same as phone numbers.
func SaleNumber(now time.Time) string {
	suffix := rand.Intn(9000) + 1000
	return fmt.Sprintf("S-%s-%d", now.Format("20060102150405"), suffix)
}
