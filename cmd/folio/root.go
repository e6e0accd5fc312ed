package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/logging"
	"folio/internal/telemetry"
	"folio/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"content":       config.KeyContentFile,
	"log-file":      config.KeyLogFile,
	"verbose":       config.KeyVerbose,
	"breakpoint":    config.KeyBreakpoint,
	"cell-width":    config.KeyCellWidth,
	"loading-delay": config.KeyLoadingDelay,
	"mouse":         config.KeyMouse,
}

// appEnv is everything a command needs once configuration is resolved.
type appEnv struct {
	cfg       config.Config
	logger    *zap.Logger
	portfolio content.Portfolio
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "A personal portfolio for the terminal",
		Long: `folio shows a portfolio (home, about, experience, education, projects and a
contact form) as a full-screen terminal app. Narrow terminals get the mobile
layout with a menu; wide ones get a sidebar.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := load(v, configFile)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()
			return runShell(cmd.Context(), rt)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&configFile, "config", "", "config file (default ~/.folio/config.yaml)")
	f.String("content", "", "portfolio YAML file (default: built-in sample)")
	f.String("log-file", "", "log file, empty to disable (default ~/.folio/folio.log)")
	f.Bool("verbose", false, "log debug events")
	f.Int("breakpoint", 0, "width in logical pixels at which the desktop layout starts (default 768)")
	f.Int("cell-width", 0, "logical pixels per terminal column (default 8)")
	f.Duration("loading-delay", 0, "how long the loading screen is shown (default 2s)")
	f.Bool("mouse", true, "enable mouse hover and clicks")
	for name, key := range flagKeys {
		_ = v.BindPFlag(key, f.Lookup(name))
	}

	cmd.AddCommand(
		newSectionsCmd(),
		newRenderCmd(v, &configFile),
		newVersionCmd(),
	)
	return cmd
}

// load resolves configuration, opens the log and reads the portfolio content.
func load(v *viper.Viper, configFile string) (*appEnv, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Verbose: cfg.Verbose})
	if err != nil {
		return nil, err
	}
	portfolio, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return &appEnv{cfg: cfg, logger: logger, portfolio: portfolio}, nil
}

func runShell(ctx context.Context, rt *appEnv) error {
	logger := rt.logger

	tracer, err := telemetry.New(ctx)
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	sinks := contact.MultiSink{contact.NewLogSink(logger)}
	var nav ui.Navigator
	if tracer != nil {
		sinks = append(sinks, tracer)
		nav = tracer
	}

	model := ui.NewAppModel(ui.Options{
		Context:   ctx,
		Portfolio: rt.portfolio,
		Handler:   contact.NewHandler(sinks),
		Navigator: nav,
		Logger:    logger,
		Config:    rt.cfg,
	})
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if rt.cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	logger.Info("shell started",
		zap.String("owner", rt.portfolio.Profile.Name),
		zap.Int("breakpoint_px", int(rt.cfg.Breakpoint)),
		zap.Int("cell_width_px", rt.cfg.CellWidth))
	if _, err := tea.NewProgram(model.AsTeaModel(), opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running shell: %w", err)
	}
	logger.Info("shell stopped")
	return nil
}
