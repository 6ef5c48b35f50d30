package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ReasonConsentNotGiven is reported when a submission is skipped for lack of consent.
const ReasonConsentNotGiven = "consent not given"

const (
	maxCategoryLen    = 50
	maxCityLen        = 100
	maxDescriptionLen = 255
	maxInventoryItems = 200
)

// maxAmount is the exclusive upper bound of numeric(10,2).
var maxAmount = decimal.New(1, 8)

const (
	// maxDecimalLen bounds the textual form of any decimal a caller may send.
	maxDecimalLen = 32
	// maxExponent bounds the decimal exponent in both directions, keeping
	// rescaling during rounding and comparison cheap.
	maxExponent = 16
)

// ParseDecimal parses a plain decimal such as "12.50". Exponent notation and
// overlong inputs are rejected before any arithmetic touches the value.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxDecimalLen {
		return decimal.Decimal{}, fmt.Errorf("%q is longer than %d characters", s[:maxDecimalLen]+"...", maxDecimalLen)
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Decimal{}, fmt.Errorf("%q uses exponent notation", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a number", s)
	}
	return d, nil
}

// SubmitParams is a candidate transaction coming from the document pipeline.
type SubmitParams struct {
	Amount    string
	Category  string
	City      string
	Inventory []LineItem
}

// SubmitResult reports the outcome of a submission.
// Success=false with a Reason is a normal outcome, not a failure.
type SubmitResult struct {
	Success      bool
	PointsEarned int64
	Reason       string
}

// Validate checks the submission shape and returns the parsed amount rounded to cents.
// Every violation is wrapped with ErrMalformedInput.
func (p SubmitParams) Validate() (decimal.Decimal, error) {
	amount, err := ParseDecimal(p.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount: %w", ErrMalformedInput, err)
	}

	var errs []error
	// Sign is checked on the raw value: "-0.004" must not round its way to zero.
	if err := checkMoney("amount", amount); err != nil {
		errs = append(errs, err)
	} else {
		amount = amount.Round(2)
		if amount.GreaterThanOrEqual(maxAmount) {
			errs = append(errs, fmt.Errorf("amount exceeds %s", maxAmount.String()))
		}
	}

	category := strings.TrimSpace(p.Category)
	if category == "" {
		errs = append(errs, errors.New("category is empty"))
	} else if utf8.RuneCountInString(category) > maxCategoryLen {
		errs = append(errs, fmt.Errorf("category longer than %d characters", maxCategoryLen))
	}

	if utf8.RuneCountInString(p.City) > maxCityLen {
		errs = append(errs, fmt.Errorf("city longer than %d characters", maxCityLen))
	}

	if len(p.Inventory) > maxInventoryItems {
		errs = append(errs, fmt.Errorf("inventory has more than %d items", maxInventoryItems))
	}
	for i, item := range p.Inventory {
		if err := item.validate(); err != nil {
			errs = append(errs, fmt.Errorf("inventory[%d]: %w", i, err))
		}
	}

	if len(errs) > 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrMalformedInput, errors.Join(errs...))
	}

	return amount, nil
}

func (li LineItem) validate() error {
	var errs []error
	if utf8.RuneCountInString(li.Description) > maxDescriptionLen {
		errs = append(errs, fmt.Errorf("description longer than %d characters", maxDescriptionLen))
	}
	if err := checkScale("quantity", li.Quantity); err != nil {
		errs = append(errs, err)
	} else if li.Quantity.IsNegative() {
		errs = append(errs, errors.New("quantity is negative"))
	}
	if err := checkMoney("unit_price", li.UnitPrice); err != nil {
		errs = append(errs, err)
	}
	if err := checkMoney("total", li.Total); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func checkMoney(field string, v decimal.Decimal) error {
	if err := checkScale(field, v); err != nil {
		return err
	}
	if v.IsNegative() {
		return fmt.Errorf("%s is negative", field)
	}
	if v.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%s exceeds %s", field, maxAmount.String())
	}
	return nil
}

func checkScale(field string, v decimal.Decimal) error {
	if e := v.Exponent(); e > maxExponent || e < -maxExponent {
		return fmt.Errorf("%s is out of range", field)
	}
	return nil
}
