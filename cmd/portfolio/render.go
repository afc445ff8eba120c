package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one kind of record as HTML cards",
	Long:  "Renders every record of the given kind in content order, cards separated by a blank line. Writes to stdout unless --out is set.",
	RunE:  runRender,
}

var (
	renderKind        string
	renderContentPath string
	renderTemplateDir string
	renderOutputFile  string
)

func init() {
	renderCmd.Flags().StringVarP(&renderKind, "kind", "k", "", "Record kind: experience, project, publication or certification (required)")
	renderCmd.Flags().StringVar(&renderContentPath, "content", "", "Path to portfolio content (JSON or YAML); built-in content when empty")
	renderCmd.Flags().StringVarP(&renderTemplateDir, "templates", "t", "", "Directory of card templates overriding the built-in set")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file")

	if err := renderCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	kind, ok := types.ParseKind(strings.ToLower(renderKind))
	if !ok {
		return fmt.Errorf("unknown kind %q", renderKind)
	}

	portfolio, err := loadPortfolio(renderContentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	cards, err := loadCards(renderTemplateDir)
	if err != nil {
		return fmt.Errorf("failed to load card templates: %w", err)
	}

	fragments, err := cards.RenderKind(portfolio, kind)
	if err != nil {
		return fmt.Errorf("failed to render %s cards: %w", kind, err)
	}

	var sb strings.Builder
	for i, f := range fragments {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(string(f))
		sb.WriteString("\n")
	}

	if renderOutputFile == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
		return err
	}

	outputDir := filepath.Dir(renderOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutputFile, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d %s cards to %s\n", len(fragments), kind, renderOutputFile)
	return nil
}
