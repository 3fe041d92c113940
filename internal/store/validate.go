package store

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shikma-build/budgetbook/internal/domain"
)

// Validation messages surfaced to the presentation layer. Validation never
// fails with an error: each Validate* method returns a list of
// human-readable messages, empty when the input is valid.
const (
	MsgSupplierNameRequired = "supplier name is required"
	MsgPhoneOrEmailRequired = "phone or email is required"
	MsgUnknownInvoice       = "invoice does not exist"
	MsgPaymentExceedsDue    = "payment amount exceeds the remaining balance"
	MsgUnknownStatus        = "status is not in the configured status list"
	MsgStatusListEmpty      = "status list must contain at least one status"
)

var validate = validator.New()

// validationMessages maps validator tags to human-readable messages
var validationMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"max":      "exceeds the maximum length",
	"gt":       "must be greater than zero",
	"gte":      "must not be negative",
	"lte":      "is out of range",
}

func structMessages(v interface{}) []string {
	errs := []string{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(errs, err.Error())
	}
	for _, fe := range verrs {
		msg, ok := validationMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		errs = append(errs, lowerFirst(fe.Field())+" "+msg)
	}
	return errs
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ValidateSupplier checks supplier form input: a display name (company or
// person) and a profession are required, and at least one contact channel
// must be given.
func (s *Store) ValidateSupplier(form domain.SupplierForm) []string {
	errs := structMessages(form)
	if strings.TrimSpace(form.CompanyName) == "" &&
		strings.TrimSpace(form.FirstName) == "" &&
		strings.TrimSpace(form.LastName) == "" {
		errs = append(errs, MsgSupplierNameRequired)
	}
	if strings.TrimSpace(form.Phone) == "" && strings.TrimSpace(form.Email) == "" {
		errs = append(errs, MsgPhoneOrEmailRequired)
	}
	return errs
}

// ValidateQuote checks quote form input
func (s *Store) ValidateQuote(form domain.QuoteForm) []string {
	errs := structMessages(form)
	if form.Status != "" && !form.Status.IsValid() {
		errs = append(errs, "quote status must be pending, accepted or rejected")
	}
	return errs
}

// ValidateInvoice checks invoice form input. A status outside the
// configured label set is rejected; percentage discounts are capped at 100.
func (s *Store) ValidateInvoice(form domain.InvoiceForm) []string {
	errs := structMessages(form)
	if form.DiscountType == domain.DiscountPercentage && form.Discount > 100 {
		errs = append(errs, "percentage discount cannot exceed 100")
	}
	if form.Status != "" && !s.settings.HasStatus(form.Status) {
		errs = append(errs, MsgUnknownStatus)
	}
	return errs
}

// ValidatePayment checks payment form input, including the balance rule:
// the payment must not exceed the invoice's remaining amount. Only the
// validation enforces the rule; AddPayment itself will record an
// overpayment.
func (s *Store) ValidatePayment(form domain.PaymentForm) []string {
	errs := structMessages(form)
	if form.Method != "" && !form.Method.IsValid() {
		errs = append(errs, "payment method is invalid")
	}
	if form.InvoiceID != "" {
		remaining, err := s.Remaining(form.InvoiceID)
		if err != nil {
			errs = append(errs, MsgUnknownInvoice)
		} else if form.Amount > remaining {
			errs = append(errs, MsgPaymentExceedsDue)
		}
	}
	return errs
}

// ValidateSettings checks a settings update
func (s *Store) ValidateSettings(upd domain.SettingsUpdate) []string {
	errs := []string{}
	if upd.DefaultVat != nil && (*upd.DefaultVat < 0 || *upd.DefaultVat > 100) {
		errs = append(errs, "default VAT must be between 0 and 100")
	}
	if upd.Statuses != nil && len(upd.Statuses) == 0 {
		errs = append(errs, MsgStatusListEmpty)
	}
	return errs
}
