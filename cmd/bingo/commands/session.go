package commands

import (
	"log/slog"

	"golang.org/x/text/message"

	"svw.info/bingo/internal/fingerprint"
	"svw.info/bingo/internal/generator"
	"svw.info/bingo/internal/hint"
	"svw.info/bingo/internal/infrastructure/storage"
	"svw.info/bingo/internal/platform/config"
	"svw.info/bingo/internal/usecase"
	"svw.info/bingo/internal/validator"
)

// newSession wires providers into a use-case service. Without a working
// digest repeated cards cannot be detected, so that failure is fatal.
func newSession(p *message.Printer, log *slog.Logger) *usecase.Service {
	fp, err := fingerprint.New()
	if err != nil {
		config.Exitf("bingo: %v", err)
	}
	g := generator.NewCardGenerator(fp, seed)
	g.MaxAttempts = maxAttempts
	return usecase.NewService(g, validator.New(), hint.NewReach(p), fp, storage.NewMemory(), log)
}
