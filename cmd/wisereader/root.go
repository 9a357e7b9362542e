package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/wisereader"
	"github.com/iw2rmb/wisereader/internal/app"
	"github.com/iw2rmb/wisereader/internal/config"
	"github.com/iw2rmb/wisereader/internal/readwise"
	"github.com/iw2rmb/wisereader/internal/render"
	"github.com/iw2rmb/wisereader/reader"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type rootFlags struct {
	config string
	debug  bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "wisereader",
		Short:         "Read your Readwise Reader inbox in the terminal",
		Version:       wisereader.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closeLog, err := setup(flags)
			if err != nil {
				return err
			}
			defer closeLog()
			return runTUI(newAppOptions(cfg))
		},
	}
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/wisereader/config.toml)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write debug logs (to [log] file or wisereader.log in the temp dir)")

	cmd.AddCommand(
		newConfigCmd(&flags),
		newPrintCmd(&flags),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and routes the standard logger.
func setup(flags rootFlags) (*config.Config, func(), error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.config != "" {
		cfg, err = config.LoadFrom(flags.config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	closeLog, err := setupLogging(cfg.Log.File, flags.debug)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("wisereader %s config=%s", wisereader.Version(), cfg.File())
	return cfg, closeLog, nil
}

// setupLogging sends log output to path, or discards it. Anything written
// to the terminal would corrupt the alternate screen.
func setupLogging(path string, debug bool) (func(), error) {
	if path == "" && debug {
		path = filepath.Join(os.TempDir(), "wisereader.log")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "wisereader")
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newClient(cfg *config.Config) *readwise.Client {
	return readwise.New(cfg.ClientOptions(wisereader.UserAgent()))
}

func newAppOptions(cfg *config.Config) app.Options {
	opts := app.Options{
		Location:  cfg.Location,
		Renderer:  render.NewAuto(cfg.Reader.Style),
		Clipboard: reader.SystemClipboard{},
		Timeout:   cfg.Timeout(),
		Login: func(token string) (app.Source, error) {
			if err := cfg.SaveToken(token); err != nil {
				return nil, err
			}
			log.Printf("token saved path=%s", cfg.File())
			return newClient(cfg), nil
		},
	}
	if cfg.Token != "" {
		opts.Source = newClient(cfg)
	}
	return opts
}

func runTUI(opts app.Options) error {
	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}
	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
