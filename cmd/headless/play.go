package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/config"
	"github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/internal/scenario"
)

func playCmd(a *app) *cobra.Command {
	var (
		noBuiltin bool
		glob      string
	)

	cmd := &cobra.Command{
		Use:   "play [files or directories...]",
		Short: "Replay scenarios against stories",
		Long: `Replay scripted scenarios against stories and check their expectations.

Without arguments the built-in scenarios run, followed by the scenarios in
the directory configured in headless.json.

Examples:
  headless play
  headless play scenarios/
  headless play scenarios/tabs.yaml --no-builtin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if glob == "" {
				glob = cfg.Scenarios.Glob
			}

			scenarios, err := collectScenarios(cfg, args, glob, !noBuiltin)
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				info(cmd.OutOrStdout(), "no scenarios found")
				return nil
			}

			runner := scenario.NewRunner(a.registry, scenario.WithLogger(a.logger(cmd.ErrOrStderr())))
			return runScenarios(cmd, runner, scenarios)
		},
	}

	cmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "Skip the built-in scenarios")
	cmd.Flags().StringVar(&glob, "glob", "", "File pattern inside directories (default from headless.json)")

	return cmd
}

// collectScenarios loads the scenarios named by args, or the built-in and
// configured ones when args is empty.
func collectScenarios(cfg *config.Config, args []string, glob string, builtin bool) ([]*scenario.Scenario, error) {
	var out []*scenario.Scenario
	if len(args) == 0 && builtin {
		b, err := scenario.Builtin()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if len(args) == 0 && cfg.ScenariosPath() != "" {
		args = []string{cfg.ScenariosPath()}
	}

	for _, path := range args {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, errors.New("E201").WithDetail("failed to read " + path).Wrap(err)
		}
		if fi.IsDir() {
			dir, err := scenario.LoadDir(path, glob)
			if err != nil {
				return nil, err
			}
			out = append(out, dir...)
			continue
		}
		sc, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func runScenarios(cmd *cobra.Command, runner *scenario.Runner, scenarios []*scenario.Scenario) error {
	w := cmd.OutOrStdout()
	start := time.Now()
	failed := 0

	for _, sc := range scenarios {
		res := runner.Run(cmd.Context(), sc)
		if res.Passed() {
			success(w, "%s  %s (%d steps, %s)", res.Scenario, res.Story, len(res.Steps), res.Duration.Round(time.Microsecond))
			continue
		}
		failed++
		failure(w, "%s  %s", res.Scenario, res.Story)
		errors.Print(w, res.Err)
	}

	fmt.Fprintln(w)
	if failed > 0 {
		return errors.New("E205").
			WithDetail(fmt.Sprintf("%d of %d scenarios failed.", failed, len(scenarios)))
	}
	success(w, "%d scenarios passed in %s", len(scenarios), time.Since(start).Round(time.Millisecond))
	return nil
}
