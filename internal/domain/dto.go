package domain

// SupplierForm carries the user input for creating a supplier
type SupplierForm struct {
	FirstName   string        `json:"firstName" validate:"max=100"`
	LastName    string        `json:"lastName" validate:"max=100"`
	CompanyName string        `json:"companyName" validate:"max=200"`
	Profession  string        `json:"profession" validate:"required,max=100"`
	Phone       string        `json:"phone" validate:"max=50"`
	Email       string        `json:"email" validate:"omitempty,email,max=255"`
	DefaultVat  float64       `json:"defaultVat" validate:"gte=0,lte=100"`
	Fields      []CustomField `json:"fields,omitempty"`
}

// SupplierUpdate carries a partial supplier update; nil fields are left
// unchanged.
type SupplierUpdate struct {
	FirstName   *string       `json:"firstName,omitempty"`
	LastName    *string       `json:"lastName,omitempty"`
	CompanyName *string       `json:"companyName,omitempty"`
	Profession  *string       `json:"profession,omitempty"`
	Phone       *string       `json:"phone,omitempty"`
	Email       *string       `json:"email,omitempty"`
	DefaultVat  *float64      `json:"defaultVat,omitempty"`
	Fields      []CustomField `json:"fields,omitempty"`
}

// QuoteForm carries the user input for creating a quote
type QuoteForm struct {
	SupplierID  string      `json:"supplierId" validate:"required"`
	Description string      `json:"description" validate:"required,max=500"`
	Amount      float64     `json:"amount" validate:"gt=0"`
	Status      QuoteStatus `json:"status,omitempty"`
	Date        string      `json:"date,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// QuoteUpdate carries a partial quote update
type QuoteUpdate struct {
	SupplierID  *string      `json:"supplierId,omitempty"`
	Description *string      `json:"description,omitempty"`
	Amount      *float64     `json:"amount,omitempty"`
	Status      *QuoteStatus `json:"status,omitempty"`
	Date        *string      `json:"date,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
}

// InvoiceForm carries the user input for creating an invoice.
// Vat zero means "use the supplier's default, then the settings default".
type InvoiceForm struct {
	SupplierID   string        `json:"supplierId" validate:"required"`
	QuoteID      string        `json:"quoteId,omitempty"`
	Description  string        `json:"description" validate:"required,max=500"`
	Amount       float64       `json:"amount" validate:"gt=0"`
	Vat          float64       `json:"vat" validate:"gte=0,lte=100"`
	Discount     float64       `json:"discount" validate:"gte=0"`
	DiscountType DiscountType  `json:"discountType,omitempty"`
	Status       string        `json:"status,omitempty"`
	DueDate      string        `json:"dueDate,omitempty"`
	Installments []Installment `json:"paymentBreakdown,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

// InvoiceUpdate carries a partial invoice update
type InvoiceUpdate struct {
	SupplierID   *string       `json:"supplierId,omitempty"`
	QuoteID      *string       `json:"quoteId,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Amount       *float64      `json:"amount,omitempty"`
	Vat          *float64      `json:"vat,omitempty"`
	Discount     *float64      `json:"discount,omitempty"`
	DiscountType *DiscountType `json:"discountType,omitempty"`
	Status       *string       `json:"status,omitempty"`
	DueDate      *string       `json:"dueDate,omitempty"`
	Installments []Installment `json:"paymentBreakdown,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
}

// PaymentForm carries the user input for recording a payment
type PaymentForm struct {
	InvoiceID string        `json:"invoiceId" validate:"required"`
	Amount    float64       `json:"amount" validate:"gt=0"`
	Date      string        `json:"date" validate:"required"`
	Method    PaymentMethod `json:"method,omitempty"`
	Reference string        `json:"reference,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

// SettingsUpdate carries a partial settings update; the settings record is
// otherwise overwritten wholesale.
type SettingsUpdate struct {
	DefaultVat *float64 `json:"defaultVat,omitempty"`
	Currency   *string  `json:"currency,omitempty"`
	Statuses   []string `json:"statuses,omitempty"`
}
