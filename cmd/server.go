package cmd

import (
	"context"
	"errors"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"trading-risk-dashboard/internal/delivery/http"
	"trading-risk-dashboard/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	Run:   Serve,
}

func Serve(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	services := service.NewService(appDep.cfg, appDep.log, appDep.cache)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services)

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return apiServer.Stop()
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}

	if err := appDep.Close(); err != nil {
		appDep.log.Warn("Failed to close app dependency cleanly")
	}
}
