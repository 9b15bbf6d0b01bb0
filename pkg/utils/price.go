package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var reDigits = regexp.MustCompile(`^\d+$`)

var ErrNoPrice = errors.New("Please enter at least one price.")

// PriceError reports the first price token that is not digit-only.
type PriceError struct {
	Token string
}

func (e *PriceError) Error() string {
	return fmt.Sprintf("Invalid price: %s. Please enter numbers only.", e.Token)
}

// ValidatePrices checks the raw harga input of a form: a comma separated
// list where every token is digits only ("1500", not "1.500").
func ValidatePrices(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNoPrice
	}
	for _, p := range strings.Split(text, ",") {
		if token := strings.TrimSpace(p); !reDigits.MatchString(token) {
			return &PriceError{Token: token}
		}
	}
	return nil
}

// ValidatePriceList applies the same digit-only rule to already split values.
func ValidatePriceList(prices []string) error {
	for _, p := range prices {
		if !reDigits.MatchString(p) {
			return &PriceError{Token: p}
		}
	}
	return nil
}
