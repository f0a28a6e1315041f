package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"svw.info/bingo/internal/adapters/tui"
	"svw.info/bingo/internal/i18n"
)

func playCmd() *cobra.Command {
	var (
		sound   bool
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout belongs to the screen; logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			logger := newLogger(w)
			p := i18n.Printer(i18n.Match(langPrefs()...))

			uc := newSession(p, logger)

			var snd tui.Sounder = tui.Silent{}
			if sound {
				if s, err := tui.NewSpeaker(); err != nil {
					logger.Warn("audio unavailable", "err", err)
				} else {
					snd = s
				}
			}
			defer snd.Close()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			return tui.New(screen, uc, p, snd, logger).Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&sound, "sound", cfg.Sound, "play sound cues on reach and bingo")
	cmd.Flags().StringVar(&logFile, "log-file", cfg.LogFile, "write logs to this file")
	return cmd
}
