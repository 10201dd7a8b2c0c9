package quiz

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/geoquiz/internal/bank"
	"github.com/abhisek/geoquiz/internal/catalog"
	"github.com/abhisek/geoquiz/internal/store"
)

// DefaultNoticeDuration is used when Deps.NoticeDuration is unset.
const DefaultNoticeDuration = 2 * time.Second

// Deps carries what the quiz and home screens need from the outside.
type Deps struct {
	Bank      *bank.Bank
	Catalog   *catalog.Catalog
	Snapshots store.SnapshotRepo // nil disables suspend and resume
	Logger    *zap.Logger

	NoticeDuration time.Duration
	KeepSnapshots  int
}

// WithDefaults fills in the built-in bank, catalog and logger where unset.
func (d Deps) WithDefaults() Deps {
	if d.Bank == nil {
		d.Bank = bank.Default()
	}
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.NoticeDuration <= 0 {
		d.NoticeDuration = DefaultNoticeDuration
	}
	if d.KeepSnapshots < 1 {
		d.KeepSnapshots = 5
	}
	return d
}
