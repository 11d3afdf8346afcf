package cli

import (
	"flag"
	"fmt"
	"io"

	"featrun/internal/catalog"
)

// runSteps builds the handler for the steps command, which lists the
// compiled catalog in resolution order.
func runSteps(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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

		settings, err := common.resolve()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		cat, warnings, err := catalog.Build(settings.provider(fs.Args(), ""))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to build implementation catalog: %v\n", err)
			return ExitError
		}
		for _, warning := range warnings {
			fmt.Fprintf(stderr, "Warning: %s\n", warning)
		}

		fmt.Fprintf(stdout, "%d step implementations:\n", len(cat.Entries))
		for i, entry := range cat.Entries {
			fmt.Fprintf(stdout, "%3d. %s  (%s)\n", i+1, entry.Raw, entry.Source)
		}
		return ExitOK
	}
}
