package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pdxmph/feedbook/internal/config"
	"github.com/pdxmph/feedbook/internal/db"
	"github.com/pdxmph/feedbook/internal/ids"
	"github.com/pdxmph/feedbook/internal/state"
	"github.com/pdxmph/feedbook/internal/tui"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	dbPath     string
	logPath    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "feedbook",
		Short:         "Feedback tally and phonebook in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/feedbook/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "session database; empty keeps the session in memory")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "write logs to this file")

	cmd.AddCommand(newInitCmd(opts))
	return cmd
}

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a session database with the seed contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cfg.Storage.Path == "" {
				return errors.New("no database path; pass --db or set storage.path")
			}

			if err := db.CreateSeededDatabase(cfg.Storage.Path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", cfg.Storage.Path)
			return nil
		},
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.dbPath != "" {
		cfg.Storage.Path = opts.dbPath
	}
	if opts.logPath != "" {
		cfg.Log.Path = opts.logPath
	}

	return cfg, nil
}

// setupLogging installs the default slog logger. The terminal belongs to the
// UI, so logs only go to a file.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.Log.Path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	f, err := tea.LogToFile(cfg.Log.Path, "feedbook")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() { f.Close() }, nil
}

// openSession builds the starting state, from the database when one is
// configured. The returned DB is nil for in-memory sessions.
func openSession(cfg *config.Config, gen ids.Generator) (*state.State, *db.DB, error) {
	if cfg.Storage.Path == "" {
		return state.New(gen), nil, nil
	}

	database, err := db.Open(cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}

	snap, err := database.Load()
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("loading session: %w", err)
	}

	return state.Restore(gen, snap), database, nil
}

func run(opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	gen, err := ids.Create(cfg.IDs.Generator)
	if err != nil {
		return fmt.Errorf("creating id generator: %w", err)
	}

	st, database, err := openSession(cfg, gen)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	if err := st.SwitchView(cfg.StartView()); err != nil {
		return err
	}

	slog.Info("starting", "view", st.View(), "contacts", len(st.Contacts()), "storage", cfg.Storage.Path)

	p := tea.NewProgram(tui.New(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}

	if database != nil {
		if err := database.Save(st.Snapshot()); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}

	slog.Info("exiting", "votes", st.Total(), "contacts", len(st.Contacts()))
	return nil
}
