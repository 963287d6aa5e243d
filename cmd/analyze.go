package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/profdoc/profdoc/internal/profile"
	"github.com/profdoc/profdoc/internal/profile/tui"
	"github.com/profdoc/profdoc/utils"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	outputPath   string
	nodeCount    int
)

var profileExtensions = []string{".pb.gz", ".pprof", ".prof", ".txt", ".top", ".out"}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [profile-or-top-file]",
	Short: "Analyze a CPU profile and report performance hotspots",
	Long: `Analyze classifies the functions of a CPU profile into performance-issue
categories and emits a prioritized report.

Binary profiles (.pb.gz, .pprof, .prof) are rendered through
'go tool pprof -top' first; text files (.txt, .top, .out) are expected to
already contain a top table.

Examples:
  profdoc analyze cpu.pb.gz               # styled terminal summary
  profdoc analyze cpu.pb.gz -o md         # write cpu_analysis.md
  profdoc analyze top.txt -o tui          # interactive findings browser`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension(profileExtensions),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		validFormats := []string{"cli", "md", "tui"}
		if !slices.Contains(validFormats, outputFormat) {
			return fmt.Errorf("invalid output format: %s. Valid options: %v", outputFormat, validFormats)
		}

		if _, err := os.Stat(args[0]); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", args[0])
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		raw, err := profile.LoadTopOutput(cmd.Context(), path, nodeCount)
		if err != nil {
			return err
		}

		report := profile.Analyze(raw)
		report.ProfilePath = path
		report.ProfileName = profile.ProfileName(path)

		switch outputFormat {
		case "md":
			written, err := profile.WriteMarkdown(report, outputPath)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Parsed %d functions\n", len(report.Stats))
			fmt.Printf("✓ Identified %d hotspots\n", len(report.Hotspots))
			fmt.Printf("✓ Generated %d recommendations\n", len(report.Recommendations))
			fmt.Printf("📄 Analysis report generated: %s\n", written)
		case "tui":
			if err := tui.Start(report); err != nil {
				return fmt.Errorf("unable to start TUI: %w", err)
			}
		default:
			profile.PrintReport(report)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", "cli", "Output format")
	analyzeCmd.Flags().StringVarP(&outputPath, "file", "f", "", "Report file path (md output, default <profile>_analysis.md)")
	analyzeCmd.Flags().IntVarP(&nodeCount, "nodecount", "n", profile.DefaultNodeCount, "Max functions requested from pprof")

	// When user types: profdoc analyze cpu.pb.gz -o <TAB>
	analyzeCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"cli", "md", "tui"}, cobra.ShellCompDirectiveNoFileComp
	})
}
