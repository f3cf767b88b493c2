// Command ped is a small terminal text editor.
//
//	usage: ped [file]
//
// Key bindings are configurable through a TOML file, by default
// $XDG_CONFIG_HOME/ped/config.toml. See the config package for the
// format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dshills/ped/internal/buffer"
	"github.com/dshills/ped/internal/config"
	"github.com/dshills/ped/internal/control"
	"github.com/dshills/ped/internal/input/keymap"
	"github.com/dshills/ped/internal/op"
	"github.com/dshills/ped/internal/session"
	"github.com/dshills/ped/internal/term"
	"github.com/dshills/ped/internal/workspace"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "config file")
	logPath := flag.String("log", "", "append debug logs to this file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		usage()
		os.Exit(1)
	}

	if err := run(*configPath, *logPath, flag.Arg(0)); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: ped [file]")
	flag.PrintDefaults()
}

func run(configPath, logPath, file string) error {
	logger, closeLog, err := newLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	bindings := keymap.Merge(keymap.Defaults(), cfg.Overrides())
	table, err := keymap.Compile(bindings, op.StandardRegistry())
	if err != nil {
		return err
	}

	buf, name, err := openBuffer(file)
	if err != nil {
		return err
	}

	terminal, err := term.NewTerminal()
	if err != nil {
		return err
	}
	if err := terminal.Init(); err != nil {
		return err
	}
	defer terminal.Fini()

	ws := workspace.New(terminal)
	sess, err := session.New(ws, buf, name)
	if err != nil {
		return err
	}

	logger.Info("starting", "file", name)
	return control.New(terminal, terminal, table, sess, logger).Run()
}

// newLogger opens the debug log. Without a log file everything is
// discarded; the terminal is in raw mode and stderr is unusable.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }, nil
}

// openBuffer loads the named file, or creates an empty scratch buffer
// when no file is given. A missing file starts an empty buffer under
// that name.
func openBuffer(file string) (*buffer.Buffer, string, error) {
	if file == "" {
		return buffer.New(), "*scratch*", nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return buffer.New(), file, nil
		}
		return nil, "", fmt.Errorf("reading %s: %w", file, err)
	}
	return buffer.FromString(string(data)), file, nil
}
