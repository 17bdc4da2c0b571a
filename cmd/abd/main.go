// Command abd drafts formal Danish letters with a local language model.
// Run without arguments to start the interactive interface.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"adminbuddy/cmd/abd/tui"
	"adminbuddy/internal/config"
	"adminbuddy/internal/engine"
	"adminbuddy/internal/i18n"
	"adminbuddy/internal/session"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "abd",
	Short: "AdminBuddy - local drafting of formal Danish letters",
	Long: `AdminBuddy turns a short description in Ukrainian, English or Danish
into a complete formal Danish letter, using a language model that runs
entirely on this machine. Nothing is sent to a server.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// The interactive interface owns the terminal, so its logs go to
		// a file under the data dir. One-shot commands log to stderr.
		zc := zap.NewProductionConfig()
		if cmd.CalledAs() == "abd" {
			zc.OutputPaths = []string{cfg.LogFile()}
			zc.ErrorOutputPaths = []string{cfg.LogFile()}
		}
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			// A bad log path must not block the tool.
			logger = zap.NewNop()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

// newSession wires the engine and the drafting session from the loaded
// config. The caller owns Close.
func newSession() *session.Session {
	eng := engine.NewLocal(engine.Config{
		BaseURL: cfg.Engine.BaseURL,
		Model:   cfg.Engine.Model,
		Timeout: cfg.GetTimeout(),
	}, logger)
	return session.New(cfg, eng, logger)
}

func runInteractive(ctx context.Context) error {
	sess := newSession()
	sess.Start(ctx)
	defer sess.Close()

	loc := i18n.Localizer(cfg.UI.Language)
	return tui.Run(sess, loc)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
