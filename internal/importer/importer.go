// Package importer normalizes bill exports from other tools into
// canonical Bill resources.
//
// Exports in the wild are messy: the paid flag appears as "paid" or
// "isPaid", status and category may be missing, amounts arrive as numbers
// or numeric strings, and IDs as strings or integers. Normalization maps
// all of that onto one canonical shape with well-defined defaults.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/billtrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidJSON = errors.New("this file is not parseable as a JSON bill export")
	ErrIDMissing   = errors.New("the record does not have an id")
	ErrIDInvalid   = errors.New("the record id must be a string or a number")
	ErrDateInvalid = errors.New("the record does not have a parseable due date")
)

// PlaceholderName is used for records with a blank or missing name.
const PlaceholderName = "Unnamed bill"

// RawBill is one record of a bill export, with all the aliases and
// optional fields other tools produce.
type RawBill struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Amount      json.RawMessage `json:"amount"`
	DueDate     string          `json:"dueDate"`
	Category    string          `json:"category"`
	IsRecurring *bool           `json:"isRecurring"`
	Paid        *bool           `json:"paid"`
	IsPaid      *bool           `json:"isPaid"`
	Status      string          `json:"status"`
}

// NormalizedBill is a canonical Bill together with the identifier it had
// in the source tool.
type NormalizedBill struct {
	ExternalID string
	Bill       models.Bill
}

// Parse reads a JSON array of raw bill records and normalizes each one.
//
// Normalization failures do not abort the parse. Each failed record is
// reported with its position so that the caller can surface all problems
// of an export at once.
func Parse(data []byte) ([]NormalizedBill, []error) {
	var raws []RawBill
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, []error{ErrInvalidJSON}
	}

	var bills []NormalizedBill
	var errs []error

	for i, raw := range raws {
		bill, err := Normalize(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}

		bills = append(bills, bill)
	}

	return bills, errs
}

// Normalize maps a raw record to a canonical Bill.
//
// It is a pure mapping and fails only when the id is absent or of an
// unsupported type, or when the due date cannot be parsed. Fabricating an
// id would let the imported data drift from its source, so such records
// are rejected instead.
func Normalize(raw RawBill) (NormalizedBill, error) {
	id, err := externalID(raw.ID)
	if err != nil {
		return NormalizedBill{}, err
	}

	dueDate, err := parseDate(raw.DueDate)
	if err != nil {
		return NormalizedBill{}, err
	}

	isPaid := false
	switch {
	case raw.IsPaid != nil:
		isPaid = *raw.IsPaid
	case raw.Paid != nil:
		isPaid = *raw.Paid
	case raw.Status != "":
		// A bare status label is the last resort for the paid flag. When
		// an explicit flag is present it wins, keeping status derived.
		isPaid = raw.Status == "paid"
	}

	isRecurring := false
	if raw.IsRecurring != nil {
		isRecurring = *raw.IsRecurring
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = PlaceholderName
	}

	return NormalizedBill{
		ExternalID: id,
		Bill: models.Bill{
			Name:        name,
			Amount:      parseAmount(raw.Amount),
			DueDate:     dueDate,
			Category:    models.ParseCategory(raw.Category),
			IsRecurring: isRecurring,
			IsPaid:      isPaid,
		},
	}, nil
}

// externalID accepts string and number ids, everything else is rejected.
func externalID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", ErrIDMissing
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", ErrIDMissing
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}

	return "", ErrIDInvalid
}

// parseAmount coerces numbers and numeric strings, defaulting to zero.
func parseAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if amount, err := decimal.NewFromString(n.String()); err == nil {
			return amount
		}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if amount, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			return amount
		}
	}

	return decimal.Zero
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrDateInvalid
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(time.UTC), nil
		}
	}

	return time.Time{}, ErrDateInvalid
}
