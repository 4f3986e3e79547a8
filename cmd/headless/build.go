package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/config"
	"github.com/vango-dev/headless/internal/publish"
)

func buildCmd(a *app) *cobra.Command {
	var (
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static gallery",
		Long: `Write index.html and one page per story to the output directory.

Examples:
  headless build
  headless build --output=site --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyBuildFlags(cfg, output, pretty)
			_, err = runBuild(cmd, a, cfg)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from headless.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")

	return cmd
}

func applyBuildFlags(cfg *config.Config, output string, pretty bool) {
	if output != "" {
		cfg.Build.Output = output
	}
	if pretty {
		cfg.Build.Pretty = true
	}
}

func runBuild(cmd *cobra.Command, a *app, cfg *config.Config) (*publish.BuildResult, error) {
	w := cmd.OutOrStdout()
	start := time.Now()

	res, err := publish.Build(cmd.Context(), a.registry, publish.BuildOptions{
		OutputDir: cfg.OutputPath(),
		Pretty:    cfg.Build.Pretty,
		Logger:    a.logger(cmd.ErrOrStderr()),
	})
	if err != nil {
		return nil, err
	}

	success(w, "Build complete in %s", time.Since(start).Round(time.Millisecond))
	info(w, "%s/ (%s)", res.OutputDir, pages(len(res.Files)))
	fmt.Fprintln(w)
	return res, nil
}

func pages(n int) string {
	if n == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", n)
}
