package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "vedit [file]",
		Short:        "Turn natural-language editing commands into video edit instructions",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return run(cmd, file)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("script", "", "Read commands from a file instead of stdin")
	root.Flags().String("vocab", "", "YAML file with keyword vocabulary overrides")
	root.Flags().Bool("json", false, "Print instructions as JSON instead of simulating")

	// Hidden tuning flag (internal)
	root.Flags().Duration("delay", 0, "Simulated model latency per command")
	_ = root.Flags().MarkHidden("delay")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
