package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/cvdash"
	"pkt.systems/cvdash/export"
	"pkt.systems/cvdash/pdf"
)

type pdfOptions struct {
	outputDir   string
	stdout      bool
	pageSize    string
	margin      float64
	fontSize    float64
	regularFont string
	boldFont    string
	allSections bool
	strict      bool
}

func addPDFFlags(flags *pflag.FlagSet, opts *pdfOptions, outputDir string) {
	defaults := pdf.DefaultConfig()
	flags.StringVarP(&opts.outputDir, "output-dir", "o", outputDir, "Directory receiving resume.pdf")
	flags.BoolVar(&opts.stdout, "stdout", false, "Write the PDF to stdout instead of a file")
	flags.StringVar(&opts.pageSize, "page-size", defaults.PageSize, "PDF page size")
	flags.Float64Var(&opts.margin, "margin", defaults.Margin, "Page margin in mm")
	flags.Float64Var(&opts.fontSize, "font-size", defaults.FontSize, "Body font size in points")
	flags.StringVar(&opts.regularFont, "regular-font", "", "TTF path for the regular font")
	flags.StringVar(&opts.boldFont, "bold-font", "", "TTF path for the bold font")
	flags.BoolVar(&opts.allSections, "all-sections", false, "Also export community contributions and education")
	flags.BoolVar(&opts.strict, "strict", false, "Fail on schema violations and undecodable fields")
}

func (o pdfOptions) config() (pdf.Config, error) {
	cfg := pdf.DefaultConfig()
	if o.pageSize != "" {
		cfg.PageSize = o.pageSize
	}
	if o.margin > 0 {
		cfg.Margin = o.margin
	}
	if o.fontSize > 0 {
		cfg.FontSize = o.fontSize
	}
	cfg.ExtendedSections = o.allSections
	reg, bold := strings.TrimSpace(o.regularFont), strings.TrimSpace(o.boldFont)
	if reg != "" || bold != "" {
		if reg == "" || bold == "" {
			return cfg, fmt.Errorf("pdf fonts: regular and bold fonts must both be provided")
		}
		reg, bold = normalizePath(reg), normalizePath(bold)
		if err := ensureFont(reg); err != nil {
			return cfg, fmt.Errorf("regular font: %w", err)
		}
		if err := ensureFont(bold); err != nil {
			return cfg, fmt.Errorf("bold font: %w", err)
		}
		cfg.RegularFont = reg
		cfg.BoldFont = bold
	}
	return cfg, nil
}

func newPDFCmd(a *app) *cobra.Command {
	var opts pdfOptions
	cmd := &cobra.Command{
		Use:   "pdf [data.json]",
		Short: "Export resume.pdf",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if opts.strict {
				if err := a.checkStrict(cmd.Context(), args); err != nil {
					return err
				}
			}
			doc, err := a.loadDocument(cmd.Context(), args)
			if err != nil {
				return err
			}
			exporter := export.New(export.WithConfig(cfg), export.WithLogger(a.log))
			if opts.stdout {
				out := cmd.OutOrStdout()
				if isTerminal(out) {
					return fmt.Errorf("refusing to write PDF to terminal; use --output-dir")
				}
				_, err := exporter.Write(cmd.Context(), doc, out)
				return err
			}
			res, err := exporter.Export(cmd.Context(), doc, normalizePath(opts.outputDir))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d pages)\n", res.Path, res.Pages)
			return nil
		},
	}
	addPDFFlags(cmd.Flags(), &opts, a.settings.OutputDir)
	return cmd
}

// checkStrict fails on schema violations and on fields that would be
// skipped.
func (a *app) checkStrict(ctx context.Context, args []string) error {
	raw, _, err := a.readRaw(ctx, args)
	if err != nil {
		return err
	}
	if err := cvdash.ValidateSchema(raw); err != nil {
		return err
	}
	doc, err := cvdash.Parse(raw, "")
	if err != nil {
		return err
	}
	if problems := doc.Problems(); len(problems) > 0 {
		return fmt.Errorf("strict: %s", strings.Join(problems, "; "))
	}
	return nil
}
