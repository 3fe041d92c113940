package domain

import "errors"

// Common store errors
var (
	// ErrNotFound is returned when an update or lookup references an
	// absent identity
	ErrNotFound = errors.New("record not found")

	// ErrSupplierInUse is returned when deleting a supplier that is still
	// referenced by at least one invoice
	ErrSupplierInUse = errors.New("supplier is referenced by existing invoices")

	// ErrImportFormat is returned when an import document is not
	// well-formed; the store is left unchanged
	ErrImportFormat = errors.New("import document is not valid")

	// ErrEmptyStatusList is returned when a settings change would leave
	// the invoice status list empty
	ErrEmptyStatusList = errors.New("status list must contain at least one status")
)
