package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/bingo/internal/i18n"
)

type printedCard struct {
	Fingerprint string    `json:"fingerprint"`
	Values      [5][5]int `json:"values"`
}

func cardCmd() *cobra.Command {
	var (
		count  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Print distinct cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			logger := newLogger(os.Stderr)
			uc := newSession(i18n.Printer(i18n.Match(langPrefs()...)), logger)
			out := make([]printedCard, 0, count)
			for i := 0; i < count; i++ {
				snap, _, err := uc.NewCard(cmd.Context())
				if err != nil {
					return err
				}
				card, err := uc.Card(cmd.Context())
				if err != nil {
					return err
				}
				out = append(out, printedCard{Fingerprint: string(snap.Fingerprint), Values: card.Values})
				if !asJSON {
					fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", snap.Fingerprint.Short(), card.String())
				}
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of cards")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}
