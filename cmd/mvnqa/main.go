package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mvnqa",
		Short: "mvnqa - build quality aggregation for Maven projects",
		Long: `mvnqa aggregates the quality reports a Maven build leaves behind.
It normalizes Surefire test results, JaCoCo coverage, and PMD findings
into one consistent view, and generates boundary value test inputs.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(testsCmd())
	rootCmd.AddCommand(coverageCmd())
	rootCmd.AddCommand(violationsCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(bvaCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(mcpCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("mvnqa version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
