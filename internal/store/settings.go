package store

import "github.com/shikma-build/budgetbook/internal/domain"

// Settings returns a copy of the settings record
func (s *Store) Settings() domain.Settings {
	out := s.settings
	out.Statuses = append([]string{}, s.settings.Statuses...)
	return out
}

// UpdateSettings merges the partial update onto the settings record. A
// status list must keep at least one entry.
func (s *Store) UpdateSettings(upd domain.SettingsUpdate) (domain.Settings, error) {
	if upd.Statuses != nil && len(upd.Statuses) == 0 {
		return domain.Settings{}, domain.ErrEmptyStatusList
	}
	if upd.DefaultVat != nil {
		s.settings.DefaultVat = *upd.DefaultVat
	}
	if upd.Currency != nil {
		s.settings.Currency = *upd.Currency
	}
	if upd.Statuses != nil {
		s.settings.Statuses = append([]string{}, upd.Statuses...)
	}
	s.notify(CollectionSettings, "")
	return s.Settings(), nil
}

// AddStatus appends a label to the invoice status list; duplicates are
// ignored.
func (s *Store) AddStatus(label string) {
	if s.settings.HasStatus(label) {
		return
	}
	s.settings.Statuses = append(s.settings.Statuses, label)
	s.notify(CollectionSettings, "")
}

// RemoveStatus removes a label from the invoice status list. The last
// remaining status cannot be removed.
func (s *Store) RemoveStatus(label string) error {
	if len(s.settings.Statuses) == 1 && s.settings.Statuses[0] == label {
		return domain.ErrEmptyStatusList
	}
	for i, st := range s.settings.Statuses {
		if st == label {
			s.settings.Statuses = append(s.settings.Statuses[:i], s.settings.Statuses[i+1:]...)
			s.notify(CollectionSettings, "")
			return nil
		}
	}
	return nil
}
