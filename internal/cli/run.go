package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"featrun/internal/catalog"
	"featrun/internal/feature"
	"featrun/internal/report"
	"featrun/internal/runner"
	"featrun/internal/shell"
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := registerCommonFlags(fs)
		jsonOutput := fs.Bool("json", false, "Emit the report as JSON")
		outputDir := fs.String("output-dir", "", "Also write the JSON report under this directory")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() < 1 {
			fmt.Fprintln(stderr, "a feature file is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		featurePath := fs.Arg(0)
		implFiles := fs.Args()[1:]

		settings, err := common.resolve()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		feat, cat, ok := loadFeatureAndCatalog(featurePath, implFiles, settings, stderr)
		if !ok {
			return ExitError
		}

		executor, err := shell.NewExecutor(settings.locator(), settings.timeout)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot launch step interpreter: %v\n", err)
			return ExitError
		}

		params := runner.Params{
			Executor:    executor,
			Debug:       settings.debug,
			DebugWriter: stderr,
		}
		if !*jsonOutput {
			params.Observer = report.NewTextReporter(stdout, settings.noColor)
		}

		results, err := runner.Run(context.Background(), feat, cat, params)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		if *jsonOutput {
			if err := report.WriteJSON(stdout, results); err != nil {
				fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
				return ExitError
			}
		}
		if *outputDir != "" {
			if exit := writeOutputs(results, *outputDir, stderr); exit != ExitOK {
				return exit
			}
		}

		if results.Failed() {
			return ExitError
		}
		return ExitOK
	}
}

// loadFeatureAndCatalog parses the feature document and compiles the
// implementation catalog, reporting any fatal error before execution.
func loadFeatureAndCatalog(featurePath string, implFiles []string, settings runSettings, stderr io.Writer) (*feature.Feature, *catalog.Catalog, bool) {
	data, err := os.ReadFile(featurePath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read feature file: %v\n", err)
		return nil, nil, false
	}
	feat, err := feature.Parse(featurePath, data)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to parse feature file: %v\n", err)
		return nil, nil, false
	}

	provider := settings.provider(implFiles, filepath.Dir(featurePath))
	cat, warnings, err := catalog.Build(provider)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to build implementation catalog: %v\n", err)
		return nil, nil, false
	}
	for _, warning := range warnings {
		fmt.Fprintf(stderr, "Warning: %s\n", warning)
	}
	return feat, cat, true
}

func writeOutputs(results runner.Results, outputDir string, stderr io.Writer) int {
	runID, err := runner.NewRunID()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create run ID: %v\n", err)
		return ExitError
	}
	if _, err := runner.WriteRunOutputs(results, outputDir, runID); err != nil {
		fmt.Fprintf(stderr, "Failed to write outputs: %v\n", err)
		return ExitError
	}
	return ExitOK
}
