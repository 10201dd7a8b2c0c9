package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/geoquiz/internal/app"
	"github.com/abhisek/geoquiz/internal/bank"
	"github.com/abhisek/geoquiz/internal/catalog"
	"github.com/abhisek/geoquiz/internal/config"
	"github.com/abhisek/geoquiz/internal/logging"
	quizscreen "github.com/abhisek/geoquiz/internal/screens/quiz"
	"github.com/abhisek/geoquiz/internal/store"
)

// env is everything a command needs once settings are resolved.
type env struct {
	cfg     *config.Config
	bank    *bank.Bank
	catalog *catalog.Catalog
	logger  *zap.Logger
	store   *store.Store // nil unless requested
}

// setup loads config, logger and bank, and opens the store when withStore
// is set. Callers must call close.
func setup(cmd *cobra.Command, withStore bool) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	b, cat, err := loadBank(cfg.Bank)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	e := &env{cfg: cfg, bank: b, catalog: cat, logger: logger}
	if withStore {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			e.close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			e.close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.store = st
		logger.Debug("store opened", zap.String("path", dbPath))
	}
	return e, nil
}

func (e *env) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("close store", zap.Error(err))
		}
	}
	_ = e.logger.Sync()
}

// loadBank returns the bank at path, or the built-in bank when path is
// empty, plus a catalog holding its prompts.
func loadBank(path string) (*bank.Bank, *catalog.Catalog, error) {
	b := bank.Default()
	if path != "" {
		var err error
		if b, err = bank.Load(path); err != nil {
			return nil, nil, fmt.Errorf("load bank: %w", err)
		}
	}
	cat := catalog.Default()
	cat.Add(b.Prompts)
	return b, cat, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startQuiz, resume bool) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.close()

	e.logger.Info("launching",
		zap.String("bank", e.bank.Title),
		zap.String("fingerprint", e.bank.Fingerprint()),
		zap.Int("questions", len(e.bank.Questions)))

	return app.Run(app.Options{
		Deps: quizscreen.Deps{
			Bank:           e.bank,
			Catalog:        e.catalog,
			Snapshots:      e.store.SnapshotRepo(),
			Logger:         e.logger,
			NoticeDuration: e.cfg.NoticeDuration,
			KeepSnapshots:  e.cfg.KeepSnapshots,
		},
		StartQuiz: startQuiz,
		Resume:    resume,
	})
}
