package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-landing/internal/server"
	"github.com/vcrobe/nojs-landing/internal/site"
)

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if listen != "" {
				app.Config.Set("http_addr", listen)
			}
			if app, err = validApp(cmd); err != nil {
				return err
			}

			bundle, err := site.Build(app.SiteOptions())
			if err != nil {
				return err
			}

			assets := ""
			if app.Config.GetBool("site.wasm") {
				assets = app.Config.GetString("site.assets_dir")
			}
			srv := server.New(app.Logger, bundle, assets)

			app.Logger.Info("serving landing page",
				zap.String("addr", app.Config.GetString("http_addr")),
				zap.Bool("brotli", bundle.Brotli != nil),
				zap.Bool("wasm", assets != ""),
			)
			return srv.ListenAndServe(cmd.Context(), app.Config.GetString("http_addr"))
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides http_addr)")
	return cmd
}
