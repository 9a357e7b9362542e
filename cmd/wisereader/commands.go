package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/wisereader"
	"github.com/iw2rmb/wisereader/buffer"
	"github.com/iw2rmb/wisereader/internal/readwise"
	"github.com/iw2rmb/wisereader/internal/render"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Save your Readwise access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closeLog, err := setup(*flags)
			if err != nil {
				return err
			}
			defer closeLog()

			if token != "" {
				if err := cfg.SaveToken(token); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "token saved to %s\n", cfg.File())
				return nil
			}
			opts := newAppOptions(cfg)
			opts.PromptOnly = true
			return runTUI(opts)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "access token to save without prompting")
	return cmd
}

func newPrintCmd(flags *rootFlags) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "print ID",
		Short: "Print a rendered document without the TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := setup(*flags)
			if err != nil {
				return err
			}
			defer closeLog()

			color := isTerminal(os.Stdout)
			if width <= 0 {
				width = terminalWidth(os.Stdout)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
			defer cancel()

			p := printer{
				src:       newClient(cfg),
				renderer:  render.NewAuto(cfg.Reader.Style),
				width:     width,
				color:     color,
				showTitle: cfg.Reader.ShowTitle,
				warnings:  cmd.ErrOrStderr(),
			}
			return p.print(ctx, cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "wrap width (0 = terminal width)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wisereader", wisereader.VersionTag())
		},
	}
}

// terminalWidth is the width of f, or 80 when f is not a terminal.
func terminalWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

type documentGetter interface {
	Get(ctx context.Context, id string) (readwise.Document, error)
}

type printer struct {
	src       documentGetter
	renderer  buffer.Renderer
	width     int
	color     bool
	showTitle bool
	warnings  io.Writer
}

func (p printer) print(ctx context.Context, w io.Writer, id string) error {
	doc, err := p.src.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", id, err)
	}
	content := doc.HTMLContent
	if content == "" {
		content = doc.Summary
	}
	store, warn := buffer.Rebuild(p.renderer, content, p.width, 1)
	if warn != nil && p.warnings != nil {
		fmt.Fprintln(p.warnings, "warning: showing plain text:", warn)
	}

	if p.showTitle {
		title := doc.Title
		if doc.Author != "" {
			title += " by " + doc.Author
		}
		fmt.Fprintf(w, "%s\n\n", title)
	}
	for _, l := range store.Lines() {
		s := l.Raw
		if !p.color {
			s = ansi.Strip(s)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
