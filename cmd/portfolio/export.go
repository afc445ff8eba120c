package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaswanthreddy/portfolio/internal/content"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write portfolio content as normalised JSON or YAML",
	Long: `Loads and validates portfolio content, then writes it back in canonical form.
Useful for converting between formats or seeding a content file from the built-in portfolio.
The format follows --format, then the --out extension, then defaults to YAML.`,
	RunE: runExport,
}

var (
	exportContentPath string
	exportFormat      string
	exportOutputFile  string
)

func init() {
	exportCmd.Flags().StringVar(&exportContentPath, "content", "", "Path to portfolio content (JSON or YAML); built-in content when empty")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to output file")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := exportFormatFor(exportFormat, exportOutputFile)
	if err != nil {
		return err
	}

	portfolio, err := loadPortfolio(exportContentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	data, err := content.Encode(portfolio, format)
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	if exportOutputFile == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	outputDir := filepath.Dir(exportOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s content to %s\n", format, exportOutputFile)
	return nil
}

func exportFormatFor(flag, outPath string) (content.Format, error) {
	switch strings.ToLower(flag) {
	case "json":
		return content.FormatJSON, nil
	case "yaml", "yml":
		return content.FormatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q", flag)
	}
	if outPath == "" {
		return content.FormatYAML, nil
	}
	return content.FormatFromPath(outPath)
}
