package cli

import (
	"flag"
	"fmt"
	"io"

	"featrun/internal/feature"
	"featrun/internal/runner"
)

// runValidate builds the handler for the validate command: a dry run
// that resolves every step against the catalog without spawning any
// process.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := registerCommonFlags(fs)
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

		settings, err := common.resolve()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		feat, cat, ok := loadFeatureAndCatalog(fs.Arg(0), fs.Args()[1:], settings, stderr)
		if !ok {
			return ExitError
		}

		total := 0
		var undefined []string
		checkStep := func(scenarioName string, step feature.Step) {
			total++
			if _, ok := runner.Resolve(cat, step); !ok {
				undefined = append(undefined, fmt.Sprintf("%s %s (scenario %q)", step.Keyword, step.Text, scenarioName))
			}
		}
		for _, scenario := range feat.Scenarios {
			for _, step := range feat.Background {
				checkStep(scenario.Name, step)
			}
			for _, step := range scenario.Steps {
				checkStep(scenario.Name, step)
			}
		}

		if len(undefined) > 0 {
			fmt.Fprintf(stderr, "%d of %d steps have no implementation:\n", len(undefined), total)
			for _, line := range undefined {
				fmt.Fprintf(stderr, "  ? %s\n", line)
			}
			return ExitError
		}
		fmt.Fprintf(stdout, "OK: all %d steps have implementations\n", total)
		return ExitOK
	}
}
