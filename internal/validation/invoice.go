package validation

import (
	"math"
	"strconv"
	"strings"

	"invoice-service-backend/internal/models"
)

// InvoiceForm carries the raw string fields of a submitted invoice form.
// Identifier and date are assigned by the system and have no place here.
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

// InvoiceInput is a validated invoice mutation payload.
type InvoiceInput struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// maxAmount bounds a single invoice so the cents conversion always
// fits in int64.
const maxAmount = 1e15

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) Any() bool { return len(e) > 0 }

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

// Validate checks every field and accumulates all failures rather than
// stopping at the first. Callers on the strict path treat a non-empty
// FieldErrors as fatal; callers on the permissive path surface the map.
func (f InvoiceForm) Validate() (InvoiceInput, FieldErrors) {
	errs := FieldErrors{}

	customerID := strings.TrimSpace(f.CustomerID)
	if customerID == "" {
		errs.add("customerId", "Please select a customer.")
	}

	// ParseFloat accepts "NaN" and "Inf" spellings; neither compares
	// greater than zero in any useful sense and both convert to garbage
	// cents, so they fail the same check as a non-positive amount.
	var amountCents int64
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 || amount > maxAmount {
		errs.add("amount", "Please enter an amount greater than $0.")
	} else {
		amountCents = int64(math.Round(amount * 100))
	}

	status := strings.TrimSpace(f.Status)
	if status != models.InvoiceStatusPending && status != models.InvoiceStatusPaid {
		errs.add("status", "Please select an invoice status.")
	}

	if errs.Any() {
		return InvoiceInput{}, errs
	}

	return InvoiceInput{
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
	}, nil
}
