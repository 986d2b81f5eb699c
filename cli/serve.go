package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "finance-calculator/http"
)

func serveCmd(st *state) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := st.app
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			a.checkCache(cmd.Context())

			var limiter *httpLayer.RateLimiter
			if a.cfg.RateLimit.Enabled {
				limiter = httpLayer.NewRateLimiter(a.cfg.RateLimit.Capacity, a.cfg.GetRateLimitWindow())
				defer limiter.Stop()
			}

			router := httpLayer.NewRouter(httpLayer.Deps{
				Finance: a.finance,
				Terms:   a.terms,
				Limiter: limiter,
				Logger:  a.logger,
			})

			server := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  a.cfg.GetReadTimeout(),
				WriteTimeout: a.cfg.GetWriteTimeout(),
				IdleTimeout:  a.cfg.GetIdleTimeout(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serverErr := make(chan error, 1)
			go func() {
				a.logger.Info("api listening", zap.String("addr", addr), zap.String("cache", a.cfg.Cache.Backend))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case err := <-serverErr:
				return fmt.Errorf("starting server: %w", err)
			case <-ctx.Done():
				a.logger.Info("shutting down server")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GetShutdownTimeout())
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}

			a.logger.Info("server exited")
			return nil
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (defaults to server.addr from config)")
	return c
}
