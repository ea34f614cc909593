package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humacli"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/oaiiae/alerta/cli/api"
	"github.com/oaiiae/alerta/cli/logger"
	"github.com/oaiiae/alerta/seed"
)

const title = "Alerta"

// Set at build time with -ldflags "-X main.version=...".
var (
	version  = "dev"
	revision = ""
	created  = ""
)

// Options for the CLI. Pass `--port` or set the `SERVICE_PORT` env var.
type Options struct {
	logger.Options
	api.ServerOptions
	api.RouterOptions
	api.DomainOptions
}

func main() {
	var humaAPI huma.API

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		logger, closer := logger.New(&options.Options)
		slog.SetDefault(logger)

		domain, err := api.NewDomain(&options.DomainOptions, seed.NewProvider(nil))
		if err != nil {
			logger.Error("could not seed the domain", "err", err)
			os.Exit(1)
		}
		var handler http.Handler
		handler, humaAPI = api.NewRouter(&options.RouterOptions, domain, title, version, revision, created, logger)
		srv := api.NewServer(&options.ServerOptions, handler, logger)

		hooks.OnStart(func() {
			defer closer.Close()
			logger.Info("starting", "addr", srv.Addr, "variant", domain.Variant, "device", domain.Seed.DeviceID)
			err := srv.ListenAndServe()
			if err != http.ErrServerClosed {
				logger.Error("failed to listen and serve", "err", err)
			} else {
				logger.Info("server closed")
			}
		})
		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			err := srv.Shutdown(ctx)
			if err != nil {
				logger.Warn("could not shutdown the server", "err", err)
			}
		})
	})

	cli.Root().Use = "alerta"
	cli.Root().Version = version
	cli.Root().AddCommand(&cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := humaAPI.OpenAPI().YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(b))
			return err
		},
	})

	cli.Run()
}
