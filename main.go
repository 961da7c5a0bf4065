package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/rangeslider/internal/app"
	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/state"
	"github.com/llehouerou/rangeslider/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	tp, err := telemetry.Setup(context.Background())
	if err != nil {
		logger.WithError(err).Warn("tracing disabled")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.WithError(err).Warn("tracer shutdown")
		}
	}()

	// Only open the database when a slider actually saves its value.
	var stateMgr state.Interface
	if cfg.HasPersistence() {
		path, err := cfg.StateDBPath()
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
		}
		mgr, err := state.Open(path)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpStateOpen, path, err))
		}
		stateMgr = mgr
		defer func() {
			if err := mgr.Close(); err != nil {
				fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStateClose, err))
			}
		}()
	}

	opts := app.Options{Logger: logger}
	if tp != nil {
		opts.Tracer = tp.Tracer("rangeslider/slider")
	}
	m, err := app.New(cfg, stateMgr, opts)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// newLogger logs to a file under the XDG state dir when RANGESLIDER_DEBUG
// is set. The terminal belongs to the UI otherwise.
func newLogger() (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if os.Getenv("RANGESLIDER_DEBUG") == "" {
		return logger, func() {}, nil
	}

	path, err := xdg.StateFile(filepath.Join("rangeslider", "debug.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logger.WithField("path", path).Info("debug logging enabled")
	return logger, func() { _ = f.Close() }, nil
}
