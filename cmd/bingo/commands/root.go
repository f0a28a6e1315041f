package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/bingo/internal/platform/config"
)

var (
	cfg config.Config

	logLevel    string
	lang        string
	seed        int64
	maxAttempts int
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	loaded, err := config.Load()
	if err != nil {
		config.Exitf("bingo: %v", err)
	}
	cfg = loaded

	root := &cobra.Command{
		Use:          "bingo",
		Short:        "Bingo card generator and win checker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	root.PersistentFlags().StringVar(&lang, "lang", cfg.Lang, "message language (en, ja); defaults to $LANG")
	root.PersistentFlags().Int64Var(&seed, "seed", cfg.Seed, "random seed (0 = time based)")
	root.PersistentFlags().IntVar(&maxAttempts, "max-attempts", cfg.MaxAttempts, "regeneration limit when a card repeats")

	root.AddCommand(serveCmd(), playCmd(), cardCmd())
	return root
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(logLevel)}))
}

// langPrefs lists language preferences, most specific first.
func langPrefs() []string {
	return []string{lang, os.Getenv("LC_ALL"), os.Getenv("LANG")}
}
