package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/hopsim/scenario"
	"github.com/oomph-ac/hopsim/worker"
	"github.com/spf13/cobra"
)

type runOptions struct {
	ticks     int
	json      bool
	statsview string
	workers   int
}

func (a *app) runCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [scenario names or files...]",
		Short: "Run scenarios and print their traces. All built-in scenarios are run if none are passed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			return a.run(cmd, args, opts)
		},
	}
	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "number of final frames to print for each scenario")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the full traces as JSON")
	cmd.Flags().StringVar(&opts.statsview, "statsview", "", "serve live runtime statistics on this address while running")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "number of scenarios run at once (default one per CPU)")
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string, opts runOptions) error {
	scenarios, err := resolve(args)
	if err != nil {
		return err
	}

	if opts.statsview != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(opts.statsview))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		a.log.Infof("serving runtime statistics on http://%s/debug/statsview", opts.statsview)
	}

	pool := worker.NewPool(opts.workers)
	defer pool.Close()

	cfg, dbg := a.settings.Movement, a.settings.Debugger(a.log)
	traces := make([]scenario.Trace, len(scenarios))
	errs := make([]error, len(scenarios))
	jobs := make([]func(), len(scenarios))
	for i, s := range scenarios {
		jobs[i] = func() {
			traces[i], errs[i] = scenario.Run(s, cfg, a.log, dbg)
		}
	}
	if err := pool.RunAll(jobs); err != nil {
		return err
	}
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("scenario %s: %w", scenarios[i].Name, err)
		}
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(traces)
	}
	return printTraces(cmd, traces, opts.ticks)
}

// resolve returns the scenarios named by args. Arguments ending in .yaml or .yml are read from
// disk, anything else is looked up in the built-in scenarios.
func resolve(args []string) ([]*scenario.Scenario, error) {
	r, err := scenario.Builtin()
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return r.All(), nil
	}

	scenarios := make([]*scenario.Scenario, 0, len(args))
	for _, arg := range args {
		var (
			s   *scenario.Scenario
			err error
		)
		if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
			s, err = scenario.Load(arg)
		} else {
			s, err = r.Get(arg)
		}
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func printTraces(cmd *cobra.Command, traces []scenario.Trace, ticks int) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tTICKS\tMODE\tPOSITION\tSPEED\tFINGERPRINT")
	for _, t := range traces {
		last := t.Last()
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%.2f\t%016x\n", t.Scenario, len(t.Frames), last.Mode, vec(last.Position), last.Velocity.Len(), t.Fingerprint)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if ticks <= 0 {
		return nil
	}

	for _, t := range traces {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", t.Scenario)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TICK\tSTEP\tMODE\tPOSITION\tVELOCITY\tWINNER\tOUTCOME")
		h := scenario.NewHistory(ticks)
		for _, f := range t.Frames {
			h.Add(f)
		}
		for _, f := range h.Frames() {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n", f.Tick, f.Step, f.Mode, vec(f.Position), vec(f.Velocity), f.Winner, f.Outcome)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func vec(v [3]float32) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
