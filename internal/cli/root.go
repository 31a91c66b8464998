package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcrobe/nojs-landing/internal/config"
	"github.com/vcrobe/nojs-landing/internal/logging"
	"github.com/vcrobe/nojs-landing/internal/site"
)

type ctxKey string

const appKey ctxKey = "app"

// skipSetupAnnotation marks commands that must run without loading config or
// building a logger, so they still work when the current config is broken.
const skipSetupAnnotation = "landing/skip-setup"

// App carries what subcommands need once configuration is loaded.
type App struct {
	Config *viper.Viper
	Logger *zap.Logger
}

// SiteOptions maps the site.* keys onto site.Options.
func (a *App) SiteOptions() site.Options {
	return site.Options{
		Pretty:      a.Config.GetBool("site.pretty"),
		Compress:    a.Config.GetBool("site.compress"),
		TailwindCDN: a.Config.GetString("site.tailwind_cdn"),
		Wasm:        a.Config.GetBool("site.wasm"),
	}
}

// Execute builds the root command and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// ReportError logs err through the global logger once the CLI installed one,
// and writes it to fallback otherwise.
func ReportError(err error, fallback io.Writer) {
	if err == nil {
		return
	}
	if logger := zap.L(); logger.Core().Enabled(zapcore.ErrorLevel) {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		return
	}
	_, _ = fmt.Fprintln(fallback, "landing:", err)
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "landing",
		Short:         "Render and serve the ModernSaaS landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}

			logger, err := logging.New(v.GetString("log.level"), v.GetString("log.format"))
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)

			ctx := context.WithValue(cmd.Context(), appKey, &App{Config: v, Logger: logger})
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app, err := getApp(cmd); err == nil {
				_ = app.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml|json)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// skipsSetup reports whether cmd or one of its parents opted out of setup.
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipSetupAnnotation] == "true" {
			return true
		}
	}
	return false
}

func getApp(cmd *cobra.Command) (*App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("internal error: app not initialized")
	}
	app, ok := ctx.Value(appKey).(*App)
	if !ok {
		return nil, errors.New("internal error: app not initialized")
	}
	return app, nil
}

// validApp returns the app after checking the loaded configuration.
func validApp(cmd *cobra.Command) (*App, error) {
	app, err := getApp(cmd)
	if err != nil {
		return nil, err
	}
	if err := config.CheckConfigValidity(app.Config); err != nil {
		return nil, err
	}
	return app, nil
}
