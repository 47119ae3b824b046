package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/calculator/internal/config"
	"github.com/GriffinCanCode/calculator/internal/logging"
	"github.com/GriffinCanCode/calculator/internal/monitoring"
	"github.com/GriffinCanCode/calculator/internal/render"
	"github.com/GriffinCanCode/calculator/internal/session"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run wires configuration, logging, metrics and a session, then serves
// the REPL until EOF or :quit. It returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML configuration file")
	output := fs.String("output", "", "Output format: text, json or yaml")
	scientific := fs.Bool("scientific", true, "Enable scientific operations")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return 1
	}

	// Flags override env and file only when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Display.Output = *output
		case "scientific":
			cfg.Engine.Scientific = *scientific
		}
	})

	format, err := render.ParseFormat(cfg.Display.Output)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return 1
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	}, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "calc: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
	}

	manager := session.NewManager(logger, metrics)
	defer manager.CloseAll()

	s := manager.Open(cfg.Engine.Scientific)
	logger.ForSession(s.ID()).Info("calculator ready")

	repl := NewREPL(s, render.New(stdout, format), cfg.Display)
	if isTerminal(stdin) {
		repl.SetPrompt(stderr)
	}
	if err := repl.Run(ctx, stdin); err != nil {
		logger.Error("repl stopped", zap.Error(err))
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
