package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/cvdash"
	"pkt.systems/cvdash/internal/config"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/cvdash")
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	a := &app{settings: settings, stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries settings and output streams shared by all commands.
type app struct {
	settings config.Settings
	stdout   io.Writer
	stderr   io.Writer
	log      *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cvdash",
		Short:         "Resume dashboard: terminal view, web page and PDF export",
		Long:          "cvdash renders a JSON resume as an interactive view and exports it as a paginated resume.pdf.",
		Version:       version.Current(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(version.Module() + " {{.Version}}\n")
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.settings.LogLevel, "log-level", a.settings.LogLevel, "Log level: debug|info|warn|error")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, err := config.ParseLevel(a.settings.LogLevel)
		if err != nil {
			return err
		}
		a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		return nil
	}

	root.AddCommand(
		newPDFCmd(a),
		newViewCmd(a),
		newServeCmd(a),
		newValidateCmd(a),
		newThemesCmd(a),
	)
	return root
}

// dataPath picks the resume file from the first argument or CVDASH_DATA.
func (a *app) dataPath(args []string) (string, error) {
	s := a.settings
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		s.DataPath = args[0]
	}
	if err := s.Validate(); err != nil {
		return "", err
	}
	if cvdash.IsURL(s.DataPath) {
		return strings.TrimSpace(s.DataPath), nil
	}
	return normalizePath(s.DataPath), nil
}

// readRaw returns the unparsed resume from a file or an http(s) URL.
func (a *app) readRaw(ctx context.Context, args []string) ([]byte, string, error) {
	path, err := a.dataPath(args)
	if err != nil {
		return nil, "", err
	}
	if cvdash.IsURL(path) {
		raw, err := cvdash.FetchRaw(ctx, cvdash.FetchRequest{URL: path})
		return raw, path, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrapf(err, "read resume %s", path)
	}
	return raw, path, nil
}

func (a *app) loadDocument(ctx context.Context, args []string) (*cvdash.Document, error) {
	path, err := a.dataPath(args)
	if err != nil {
		return nil, err
	}
	var doc *cvdash.Document
	if cvdash.IsURL(path) {
		doc, err = cvdash.Fetch(ctx, cvdash.FetchRequest{URL: path})
	} else {
		doc, err = cvdash.Load(path)
	}
	if err != nil {
		return nil, err
	}
	for _, p := range doc.Problems() {
		a.log.Warn("field skipped", "problem", p)
	}
	return doc, nil
}

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List terminal themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range cvdash.AvailableThemes() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return cvdash.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if !strings.HasSuffix(strings.ToLower(info.Name()), ".ttf") {
		return fmt.Errorf("expected .ttf font file")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
