// Package serve implements the serve command which runs the web server.
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/httpcontroller"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/mediastore"
)

// Command creates the serve command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the WellAtlas web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunServer(settings)
		},
	}

	cmd.Flags().StringVarP(&settings.WebServer.Port, "port", "p", viper.GetString("webserver.port"), "Port to listen on")
	cmd.Flags().StringVar(&settings.WebServer.Host, "host", viper.GetString("webserver.host"), "Interface to bind, empty for all")

	return cmd
}

// RunServer opens the stores, starts the HTTP server and blocks until the
// process receives an interrupt or the server fails.
func RunServer(settings *conf.Settings) error {
	if err := settings.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to prepare directories: %w", err)
	}

	ds := datastore.New(settings)
	if err := ds.Open(); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer ds.Close()

	media, err := mediastore.New(settings.UploadPath)
	if err != nil {
		return fmt.Errorf("failed to open media store: %w", err)
	}
	defer media.Close()

	server := httpcontroller.New(settings, ds, media)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
