package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/cvdash"
)

func newViewCmd(a *app) *cobra.Command {
	var (
		themeName string
		width     int
		osc8Flag  string
		boring    bool
		timeline  bool
	)
	cmd := &cobra.Command{
		Use:   "view [data.json]",
		Short: "Render the resume in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, ok := cvdash.ThemeByName(themeName)
			if !ok {
				return fmt.Errorf("unknown theme %q (see cvdash themes)", themeName)
			}
			if boring {
				theme = cvdash.BoringTheme()
			}
			osc8, err := resolveOSC8(osc8Flag)
			if err != nil {
				return fmt.Errorf("invalid --osc8 %q: %w", osc8Flag, err)
			}
			doc, err := a.loadDocument(cmd.Context(), args)
			if err != nil {
				return err
			}
			opts := []cvdash.RenderOption{cvdash.WithOSC8(osc8 && !boring)}
			if timeline {
				opts = append(opts, cvdash.WithTimeline(time.Now().Year()))
			}
			return cvdash.Render(cvdash.RenderRequest{
				Document: doc,
				Writer:   cmd.OutOrStdout(),
				Width:    resolveWidth(width),
				Theme:    theme,
				Options:  opts,
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&themeName, "theme", "t", a.settings.Theme, "Theme name")
	flags.IntVarP(&width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVarP(&boring, "boring", "b", false, "Plain output without ANSI styling")
	flags.BoolVar(&timeline, "timeline", false, "Append a work experience timeline")
	return cmd
}
