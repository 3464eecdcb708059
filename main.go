package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"binviz/internal/buffer"
	"binviz/internal/config"
	"binviz/internal/logging"
	"binviz/internal/session"
	"binviz/internal/viewer"
)

type options struct {
	filename string
	index    int
	config   string
	debug    string
}

const usage = "Usage: binviz [-debug debug.log] [-config binviz.toml] [-i index] -f <file>"

func parseArgs(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("binviz", flag.ContinueOnError)
	fs.StringVar(&opts.filename, "f", "", "file to view")
	fs.IntVar(&opts.index, "i", 0, "byte index to highlight")
	fs.StringVar(&opts.config, "config", "", "config file (default ~/.config/binviz/binviz.toml)")
	fs.StringVar(&opts.debug, "debug", "", "write debug logs to file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.filename == "" && fs.NArg() > 0 {
		opts.filename = fs.Arg(0)
	}
	if opts.filename == "" {
		return opts, errors.New("no file given")
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cleanup, err := logging.Setup(opts.debug)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer cleanup()

	cfg, err := config.Load(opts.config)
	if err != nil {
		logrus.Warnf("using default config: %v", err)
	}
	mode, endian, err := cfg.Initial()
	if err != nil {
		logrus.Warnf("invalid view settings: %v", err)
	}

	buf, err := buffer.Open(opts.filename)
	if err != nil {
		return err
	}
	logrus.Infof("opened %s: %d bytes", opts.filename, buf.Size())

	s := session.New(buf, session.Options{
		Mode:       mode,
		Endianness: endian,
		Highlight:  opts.index,
	})

	p := tea.NewProgram(viewer.NewModel(s, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
