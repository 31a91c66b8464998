package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-landing/internal/site"
)

func newBuildCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the prerendered page to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if out != "" {
				app.Config.Set("build.out_dir", out)
			}
			if app, err = validApp(cmd); err != nil {
				return err
			}

			bundle, err := site.Build(app.SiteOptions())
			if err != nil {
				return err
			}
			dir := app.Config.GetString("build.out_dir")
			written, err := bundle.WriteDir(dir)
			if err != nil {
				return err
			}

			app.Logger.Debug("build complete", zap.String("dir", dir), zap.Strings("files", written))
			for _, path := range written {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides build.out_dir)")
	return cmd
}
