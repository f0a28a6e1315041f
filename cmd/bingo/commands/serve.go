package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/bingo/internal/adapters/http"
	"svw.info/bingo/internal/i18n"
	"svw.info/bingo/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and browser front-end",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(os.Stdout)
			defaultTag := i18n.Match(langPrefs()...)
			uc := newSession(i18n.Printer(defaultTag), logger)
			h := httpadapter.New(uc, defaultTag.String())

			mux := http.NewServeMux()
			mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
			mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/" {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				tag := i18n.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), defaultTag.String())
				if err := web.RenderIndex(w, tag); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
			})
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			logger.Info("listening", "addr", addr, "lang", defaultTag.String(), "seed", seed)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server error", "err", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", cfg.Addr, "listen address")
	return cmd
}
