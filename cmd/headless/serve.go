package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/internal/gallery"
)

func serveCmd(a *app) *cobra.Command {
	var (
		host   string
		port   int
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the live story gallery",
		Long: `Serve every story on its own page. Each page keeps a websocket open to a
session that mounts the story and re-renders it after every event.

Examples:
  headless serve
  headless serve --port 8080
  headless serve --host 0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Gallery.Host = host
			}
			if port != 0 {
				cfg.Gallery.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := a.logger(cmd.ErrOrStderr())
			gc := gallery.DefaultConfig()
			gc.Addr = cfg.GalleryAddress()
			gc.MetricsPath = cfg.Gallery.MetricsPath
			gc.ReadLimit = cfg.Gallery.ReadLimit
			gc.Pretty = pretty

			opts := []gallery.Option{gallery.WithLogger(logger), gallery.WithConfig(gc)}
			if cfg.MetricsEnabled() {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				opts = append(opts, gallery.WithMetrics(reg))
			}

			srv := gallery.New(a.registry, opts...)
			success(cmd.OutOrStdout(), "Gallery at http://%s", gc.Addr)
			if err := srv.ListenAndServe(cmd.Context()); err != nil {
				return errors.New("E304").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (default from headless.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from headless.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent rendered HTML")

	return cmd
}
