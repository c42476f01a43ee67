package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pkt.systems/cvdash/export"
	"pkt.systems/cvdash/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr string
		opts pdfOptions
	)
	cmd := &cobra.Command{
		Use:   "serve [data.json]",
		Short: "Serve the resume page and PDF download over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			doc, err := a.loadDocument(cmd.Context(), args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			exporter := export.New(export.WithConfig(cfg), export.WithLogger(a.log))
			return server.New(doc, exporter, a.log).ListenAndServe(ctx, addr)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", a.settings.Addr, "Listen address")
	flags.BoolVar(&opts.allSections, "all-sections", false, "Also export community contributions and education")
	return cmd
}
