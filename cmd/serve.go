package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"spa-admin/config"
	"spa-admin/controllers"
	"spa-admin/routes"
	"spa-admin/services"
)

var timeNow = time.Now

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the admin HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := config.SetupTracing(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			a.logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	switch {
	case a.cfg.DigestChannel == "none":
	case a.cfg.DigestToken == "":
		a.logger.Warn("DIGEST_TOKEN not set, daily digest disabled", "channel", a.cfg.DigestChannel)
	default:
		digest, err := a.digestService()
		if err != nil {
			return err
		}
		if err := digest.StartScheduler(a.cfg.DigestCron); err != nil {
			return err
		}
		defer digest.Stop()
	}

	base := controllers.NewBase(a.client, a.actions, a.cfg.CurrencySymbol, a.logger)
	r := routes.SetupRouter(a.cfg, base)
	if !a.cfg.IsProduction() {
		printRoutes(r)
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           otelhttp.NewHandler(r, "spa-admin"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", srv.Addr, "api", a.cfg.APIEndpoint)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (a *app) digestService() (*services.DigestService, error) {
	notifier, err := a.notifier()
	if err != nil {
		return nil, err
	}
	client, err := a.serviceClient(a.cfg.DigestToken)
	if err != nil {
		return nil, fmt.Errorf("DIGEST_TOKEN: %w", err)
	}
	expiresAt := client.Session().ExpiresAt
	a.logger.Warn("daily digest stops when DIGEST_TOKEN expires", "expires_at", expiresAt)

	digest := services.NewDigestService(client, notifier, a.actions, a.cfg.CurrencySymbol, a.logger)
	digest.ExpireAt(expiresAt)
	return digest, nil
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
