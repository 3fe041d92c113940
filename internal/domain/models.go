package domain

import (
	"strings"
	"time"
)

// QuoteStatus represents the status of a price quote
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// IsValid checks if the QuoteStatus is a valid enum value
func (qs QuoteStatus) IsValid() bool {
	switch qs {
	case QuoteStatusPending, QuoteStatusAccepted, QuoteStatusRejected:
		return true
	}
	return false
}

// Invoice status labels. The list is user-configurable (see Settings), but
// these five drive the payment auto-transition logic.
const (
	InvoiceStatusPending       = "pending"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusPartiallyPaid = "partially-paid"
	InvoiceStatusCancelled     = "cancelled"
	InvoiceStatusInProgress    = "in-progress"
)

// DiscountType represents how an invoice discount is expressed
type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodOther        PaymentMethod = "other"
)

// IsValid checks if the PaymentMethod is a valid enum value
func (pm PaymentMethod) IsValid() bool {
	switch pm {
	case PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCheck,
		PaymentMethodCreditCard, PaymentMethodOther:
		return true
	}
	return false
}

// CustomField is one entry in a supplier's open-ended field bag.
// Stored as an ordered list so user-defined fields keep their order.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Supplier represents a contractor or vendor working on the project
type Supplier struct {
	ID          string        `json:"id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	CompanyName string        `json:"companyName"`
	Profession  string        `json:"profession"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	DefaultVat  float64       `json:"defaultVat"`
	Fields      []CustomField `json:"fields"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// DisplayName returns the supplier's display name: the company name when
// set, otherwise the person name.
func (s *Supplier) DisplayName() string {
	if s.CompanyName != "" {
		return s.CompanyName
	}
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Quote represents a price quote received from a supplier
type Quote struct {
	ID          string      `json:"id"`
	SupplierID  string      `json:"supplierId"`
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Status      QuoteStatus `json:"status"`
	Date        string      `json:"date,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Installment is a planned partial payment attached to an invoice,
// independent of the standalone Payment records.
type Installment struct {
	ID      string       `json:"id"`
	Type    DiscountType `json:"type"`
	Value   float64      `json:"value"`
	Trigger string       `json:"trigger,omitempty"`
	// Target holds a due date or a free-text milestone description,
	// depending on the trigger kind.
	Target string     `json:"target,omitempty"`
	Paid   bool       `json:"paid"`
	PaidAt *time.Time `json:"paidAt,omitempty"`
}

// Amount resolves the installment's monetary value against the invoice's
// final amount (percentage installments are relative to it).
func (i *Installment) Amount(finalAmount float64) float64 {
	if i.Type == DiscountPercentage {
		return finalAmount * i.Value / 100
	}
	return i.Value
}

// Invoice represents a supplier invoice against the project budget
type Invoice struct {
	ID           string        `json:"id"`
	SupplierID   string        `json:"supplierId"`
	QuoteID      string        `json:"quoteId,omitempty"`
	Description  string        `json:"description"`
	Amount       float64       `json:"amount"`
	Vat          float64       `json:"vat"`
	Discount     float64       `json:"discount"`
	DiscountType DiscountType  `json:"discountType"`
	Status       string        `json:"status"`
	DueDate      string        `json:"dueDate,omitempty"`
	Installments []Installment `json:"paymentBreakdown"`
	Notes        string        `json:"notes,omitempty"`
	// FinalAmount is derived from Amount, Vat and Discount. It is
	// recomputed on every mutation and never trusted from input.
	FinalAmount float64   `json:"finalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Payment represents a payment made against an invoice
type Payment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoiceId"`
	Amount    float64       `json:"amount"`
	Date      string        `json:"date"`
	Method    PaymentMethod `json:"method"`
	Reference string        `json:"reference,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Settings is the process-wide settings record
type Settings struct {
	DefaultVat float64  `json:"defaultVat"`
	Currency   string   `json:"currency"`
	Statuses   []string `json:"statuses"`
}

// HasStatus reports whether the label is in the configured status list
func (s Settings) HasStatus(label string) bool {
	for _, st := range s.Statuses {
		if st == label {
			return true
		}
	}
	return false
}

// DefaultSettings returns the settings used before the user saves any
func DefaultSettings() Settings {
	return Settings{
		DefaultVat: 18,
		Currency:   "₪",
		Statuses: []string{
			InvoiceStatusPending,
			InvoiceStatusPaid,
			InvoiceStatusPartiallyPaid,
			InvoiceStatusCancelled,
			InvoiceStatusInProgress,
		},
	}
}

// Statistics holds the totals derived from the current collections
type Statistics struct {
	TotalDebt       float64 `json:"totalDebt"`
	PaidAmount      float64 `json:"paidAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	ActiveQuotes    int     `json:"activeQuotes"`
	TotalInvoices   int     `json:"totalInvoices"`
	TotalSuppliers  int     `json:"totalSuppliers"`
}
