package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/SoarGroup/soarcli/foundation/cli"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
	"github.com/SoarGroup/soarcli/internal/commands"
	"github.com/SoarGroup/soarcli/internal/history"
	"github.com/SoarGroup/soarcli/internal/kernel"
	"github.com/SoarGroup/soarcli/pkg/core/config"
	"github.com/SoarGroup/soarcli/pkg/core/logging"
)

// app holds what every subcommand builds sessions from
type app struct {
	cfg        *config.Config
	logger     *mdwlog.Logger
	agent      *kernel.Agent
	store      history.Store // nil when history is off
	aliasLines []string
}

// loadConfig reads --config, then SOARCLI_CONFIG and the default paths, and
// falls back to built-in defaults when no file exists
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.LoadFromEnv()
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

func newApp(path string, withHistory bool) (*app, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultLoggerConfig(cfg.General.Name)
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	if verbose {
		logCfg.Level = "debug"
	}
	logger := logging.NewLogger(logCfg)
	mdwlog.SetDefault(logger)

	aliasLines, err := cfg.AliasLines(commands.DefaultAliases)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:        cfg,
		logger:     logger,
		agent:      kernel.NewAgent(cfg.General.AgentName),
		aliasLines: aliasLines,
	}
	if withHistory {
		if a.store, err = openHistory(cfg); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func openHistory(cfg *config.Config) (history.Store, error) {
	switch cfg.Console.History {
	case config.HistorySQLite:
		store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: cfg.Console.HistoryPath})
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		return store, nil
	case config.HistoryMemory:
		return history.NewMemoryStore(), nil
	default:
		return nil, nil
	}
}

// newSession creates a session whose commands print to out
func (a *app) newSession(out io.Writer) (*cli.Session, error) {
	env := &commands.Env{Out: out, Agent: a.agent, History: a.store}
	return commands.NewSession(env, commands.SessionOptions{
		Logger:     a.logger,
		AliasLines: a.aliasLines,
	})
}

// sourceAll sources files in order and stops at the first failure
func sourceAll(session *cli.Session, files []string) error {
	for _, file := range files {
		if err := session.Source(file); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) Close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.WarnWithErr("Failed to close history", err)
	}
}
