package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sarchlab/vmsim/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation",
	Long: `Run one simulation over a page reference sequence. The frame count, ` +
		`page count, and references come from flags, from a YAML config file, ` +
		`or, when neither is given, from interactive prompts.`,
	RunE: runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("frames", 0,
		"number of frames in physical memory")
	runCmd.Flags().Int("pages", 0,
		"number of pages in the virtual space")
	runCmd.Flags().String("refs", "",
		"comma-separated page reference sequence, e.g. 0,1,2,0,3")
	runCmd.Flags().String("config", "",
		"YAML file with frames, pages, and references")
	runCmd.Flags().String("swap-log", "swap_simulated.txt",
		"path of the swap-out log file, empty to disable")
	runCmd.Flags().Bool("record", false,
		"record steps and swap events into a SQLite database")
	runCmd.Flags().String("output", "",
		"database name for --record, without extension")
	runCmd.Flags().Bool("monitor", false,
		"serve live progress and statistics over HTTP")
	runCmd.Flags().Int("monitor-port", 0,
		"port for the monitoring server, 0 picks a random port")
	runCmd.Flags().Bool("dashboard", false,
		"open the monitoring server in a browser")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix("vmsim")
	v.AutomaticEnv()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return err
	}

	spec, err := collectRunSpec(v)
	if err != nil {
		return err
	}

	b := simulation.MakeBuilder().
		WithNumFrames(spec.Frames).
		WithNumPages(spec.Pages).
		WithConsoleLogger(log.New(os.Stdout, "", 0))

	if path := v.GetString("swap-log"); path != "" {
		b = b.WithSwapLogPath(path)
	}

	if v.GetBool("record") {
		b = b.WithDataRecording()
		if output := v.GetString("output"); output != "" {
			b = b.WithOutputFileName(output)
		}
	}

	if v.GetBool("monitor") {
		b = b.WithMonitoring()
		if port := v.GetInt("monitor-port"); port != 0 {
			b = b.WithMonitorPort(port)
		}
		if v.GetBool("dashboard") {
			b = b.WithDashboard()
		}
	}

	s, err := b.Build()
	if err != nil {
		return err
	}
	defer s.Terminate()

	fmt.Println("--- Starting simulation ---")

	_, err = s.Run(spec.References)
	if err != nil {
		return err
	}

	fmt.Println()
	s.ReportStats()

	if path := s.SwapLogPath(); path != "" {
		fmt.Printf("Swap log written to '%s'\n", path)
	}

	return nil
}

// collectRunSpec resolves the simulation parameters from flags and
// environment, then from the config file, then interactively.
func collectRunSpec(v *viper.Viper) (runSpec, error) {
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)

		err := v.ReadInConfig()
		if err != nil {
			return runSpec{}, err
		}
	}

	spec := runSpec{
		Frames: v.GetInt("frames"),
		Pages:  v.GetInt("pages"),
	}

	if v.IsSet("references") {
		spec.References = v.GetIntSlice("references")
	} else if refs := v.GetString("refs"); refs != "" {
		references, err := parseReferences(refs)
		if err != nil {
			return runSpec{}, err
		}
		spec.References = references
	}

	if spec.Frames > 0 && spec.Pages > 0 && len(spec.References) > 0 {
		return spec, nil
	}

	return promptForSpec(os.Stdin, os.Stdout)
}
