package queries

import (
	"context"
	"strings"
	"unicode"

	"event-checkout/internal/pkg/errs"
)

var (
	ErrPostalCodeNotFound = errs.New("postal code not found")
	ErrInvalidPostalCode  = errs.New("invalid postal code")
)

const (
	minPostalCodeDigits = 5
	maxPostalCodeDigits = 10
)

type PostalAddress struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
}

// PostalCodeDirectory is the external lookup service. It returns
// ErrPostalCodeNotFound for unknown codes.
type PostalCodeDirectory interface {
	Lookup(ctx context.Context, code string) (*PostalAddress, error)
}

type PostalCodeQueries interface {
	Lookup(ctx context.Context, code string) (*PostalAddress, error)
}

type postalCodeQueriesImpl struct {
	directory PostalCodeDirectory
}

func NewPostalCodeQueries(directory PostalCodeDirectory) PostalCodeQueries {
	return &postalCodeQueriesImpl{directory: directory}
}

func (q *postalCodeQueriesImpl) Lookup(ctx context.Context, code string) (*PostalAddress, error) {
	normalized, ok := NormalizePostalCode(code)
	if !ok {
		return nil, ErrInvalidPostalCode
	}
	return q.directory.Lookup(ctx, normalized)
}

// NormalizePostalCode keeps the digits of a code written with the usual
// separators.
func NormalizePostalCode(code string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(code) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '.' || r == ' ':
		default:
			return "", false
		}
	}
	n := b.Len()
	if n < minPostalCodeDigits || n > maxPostalCodeDigits {
		return "", false
	}
	return b.String(), true
}
