package persist

import (
	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/store"
)

// Autosaver persists the changed collection after every store mutation.
// Writes are fire-and-forget: a failure is logged and the in-memory state
// is kept, so memory and disk can diverge until the next successful save.
type Autosaver struct {
	adapter Adapter
	store   *store.Store
	logger  *zap.Logger
}

// NewAutosaver creates an autosaver for the adapter
func NewAutosaver(adapter Adapter, logger *zap.Logger) *Autosaver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Autosaver{adapter: adapter, logger: logger}
}

// Attach subscribes the autosaver to the store's change notifications.
// Attach after Restore, or the restore itself gets written back.
func (a *Autosaver) Attach(s *store.Store) {
	a.store = s
	s.Subscribe(a.onChange)
}

func (a *Autosaver) onChange(c store.Change) {
	key, data, err := marshalFor(a.store, c.Collection)
	if err != nil {
		a.logger.Error("autosave failed", zap.String("collection", string(c.Collection)), zap.Error(err))
		return
	}
	if err := a.adapter.Save(key, data); err != nil {
		a.logger.Error("autosave failed", zap.String("key", key), zap.Error(err))
	}
}
