package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/shapetools/shape-detect-mcp/internal/eval"
)

var (
	manifestPath string
	filter       string
	threshold    int
	jobs         int
	jsonOut      bool
)

func main() {
	root := &cobra.Command{
		Use:           "shape-eval",
		Short:         "Evaluate the shape detection pipeline against a labeled image corpus",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run every manifest case and report accuracy",
		RunE:  runEval,
	}
	runCmd.Flags().StringVar(&manifestPath, "manifest", "", "path to the corpus manifest JSON (required)")
	runCmd.Flags().StringVar(&filter, "filter", "", "run only cases whose name contains this substring")
	runCmd.Flags().IntVar(&threshold, "threshold", 0, "override the binarization threshold (1-255, 0 keeps the default)")
	runCmd.Flags().IntVar(&jobs, "jobs", 4, "number of cases processed concurrently")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full report as JSON instead of a text summary")
	_ = runCmd.MarkFlagRequired("manifest")
	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	if threshold < 0 || threshold > 255 {
		return fmt.Errorf("threshold %d out of range (1-255)", threshold)
	}

	manifest, err := eval.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	total := 0
	needle := strings.ToLower(filter)
	for _, c := range manifest.Cases {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			total++
		}
	}
	if total == 0 {
		return fmt.Errorf("no cases match filter %q", filter)
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("evaluating"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	start := time.Now()
	results := eval.Run(manifest, eval.RunOptions{
		Filter:    filter,
		Threshold: uint8(threshold),
		Jobs:      jobs,
		Progress:  func() { _ = bar.Add(1) },
	})
	report := eval.BuildReport(results, time.Since(start))
	_ = bar.Finish()

	if jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(report.Summary())
	}

	if report.Failed+report.Errored > 0 {
		return fmt.Errorf("%d of %d cases did not pass", report.Failed+report.Errored, total)
	}
	return nil
}
