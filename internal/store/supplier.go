package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/domain"
)

// UnknownSupplierLabel is the placeholder shown for dangling supplier
// references (a supplier deleted while quotes still point at it).
const UnknownSupplierLabel = "unknown supplier"

// AddSupplier creates a supplier from form data. Missing optional fields
// default: zero VAT falls back to the settings default, a nil field bag
// becomes empty.
func (s *Store) AddSupplier(form domain.SupplierForm) domain.Supplier {
	vat := form.DefaultVat
	if vat == 0 {
		vat = s.settings.DefaultVat
	}
	fields := form.Fields
	if fields == nil {
		fields = []domain.CustomField{}
	}

	supplier := domain.Supplier{
		ID:          newID(),
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		CompanyName: form.CompanyName,
		Profession:  form.Profession,
		Phone:       form.Phone,
		Email:       form.Email,
		DefaultVat:  vat,
		Fields:      fields,
		CreatedAt:   time.Now().UTC(),
	}
	s.suppliers = append(s.suppliers, supplier)
	s.logger.Debug("supplier added", zap.String("id", supplier.ID), zap.String("name", supplier.DisplayName()))
	s.notify(CollectionSuppliers, supplier.ID)
	return supplier
}

// UpdateSupplier merges the partial update onto the existing supplier.
// Returns ErrNotFound when the id is absent.
func (s *Store) UpdateSupplier(id string, upd domain.SupplierUpdate) (domain.Supplier, error) {
	for i := range s.suppliers {
		if s.suppliers[i].ID != id {
			continue
		}
		sp := &s.suppliers[i]
		if upd.FirstName != nil {
			sp.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			sp.LastName = *upd.LastName
		}
		if upd.CompanyName != nil {
			sp.CompanyName = *upd.CompanyName
		}
		if upd.Profession != nil {
			sp.Profession = *upd.Profession
		}
		if upd.Phone != nil {
			sp.Phone = *upd.Phone
		}
		if upd.Email != nil {
			sp.Email = *upd.Email
		}
		if upd.DefaultVat != nil {
			sp.DefaultVat = *upd.DefaultVat
		}
		if upd.Fields != nil {
			sp.Fields = upd.Fields
		}
		s.notify(CollectionSuppliers, id)
		return *sp, nil
	}
	return domain.Supplier{}, domain.ErrNotFound
}

// DeleteSupplier removes a supplier. Deleting an absent id is a no-op.
// Deletion is blocked with ErrSupplierInUse while any invoice references
// the supplier; quotes are allowed to dangle and are resolved at read time.
func (s *Store) DeleteSupplier(id string) error {
	for _, inv := range s.invoices {
		if inv.SupplierID == id {
			return domain.ErrSupplierInUse
		}
	}
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			s.notify(CollectionSuppliers, id)
			return nil
		}
	}
	return nil
}

// Supplier looks up a supplier by id
func (s *Store) Supplier(id string) (domain.Supplier, bool) {
	for _, sp := range s.suppliers {
		if sp.ID == id {
			return sp, true
		}
	}
	return domain.Supplier{}, false
}

// Suppliers returns a copy of the supplier collection
func (s *Store) Suppliers() []domain.Supplier {
	out := make([]domain.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

// SupplierLabel resolves a supplier reference to a display name, falling
// back to the unknown-supplier placeholder for dangling references.
func (s *Store) SupplierLabel(id string) string {
	if sp, ok := s.Supplier(id); ok {
		return sp.DisplayName()
	}
	return UnknownSupplierLabel
}

// SetSupplierField adds or updates one entry in the supplier's custom field
// bag, preserving the order of existing entries.
func (s *Store) SetSupplierField(id, name, value string) (domain.Supplier, error) {
	for i := range s.suppliers {
		if s.suppliers[i].ID != id {
			continue
		}
		sp := &s.suppliers[i]
		replaced := false
		for j := range sp.Fields {
			if sp.Fields[j].Name == name {
				sp.Fields[j].Value = value
				replaced = true
				break
			}
		}
		if !replaced {
			sp.Fields = append(sp.Fields, domain.CustomField{Name: name, Value: value})
		}
		s.notify(CollectionSuppliers, id)
		return *sp, nil
	}
	return domain.Supplier{}, domain.ErrNotFound
}

// RemoveSupplierField removes one entry from the supplier's custom field
// bag; removing an absent field name is a no-op.
func (s *Store) RemoveSupplierField(id, name string) (domain.Supplier, error) {
	for i := range s.suppliers {
		if s.suppliers[i].ID != id {
			continue
		}
		sp := &s.suppliers[i]
		for j := range sp.Fields {
			if sp.Fields[j].Name == name {
				sp.Fields = append(sp.Fields[:j], sp.Fields[j+1:]...)
				s.notify(CollectionSuppliers, id)
				break
			}
		}
		return *sp, nil
	}
	return domain.Supplier{}, domain.ErrNotFound
}
