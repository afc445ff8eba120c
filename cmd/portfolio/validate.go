package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaswanthreddy/portfolio/internal/chart"
	"github.com/yaswanthreddy/portfolio/internal/content"
	"github.com/yaswanthreddy/portfolio/internal/observability"
	"github.com/yaswanthreddy/portfolio/internal/rendering"
	"github.com/yaswanthreddy/portfolio/internal/schemas"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a portfolio content file",
	Long: `Checks a JSON or YAML content file against the portfolio schema, renders every card and builds both charts.

With --schema the content is also checked against an extra JSON Schema file,
for example a stricter house style for a particular deployment.`,
	RunE: runValidate,
}

var (
	validateContentPath string
	validateSchemaPath  string
	validateVerbose     bool
)

func init() {
	validateCmd.Flags().StringVar(&validateContentPath, "content", "", "Path to portfolio content file (required)")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to an extra JSON Schema the content must also satisfy")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a summary of the content")

	if err := validateCmd.MarkFlagRequired("content"); err != nil {
		panic(fmt.Sprintf("failed to mark content flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())

	portfolio, err := content.Load(validateContentPath)
	if err != nil {
		var verr *schemas.ValidationError
		if validateVerbose && errors.As(err, &verr) {
			printer.PrintValidationErrors(verr)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	if validateSchemaPath != "" {
		if err := validateAgainstSchema(validateSchemaPath, validateContentPath); err != nil {
			var verr *schemas.ValidationError
			if validateVerbose && errors.As(err, &verr) {
				printer.PrintValidationErrors(verr)
			}
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if err := checkRenders(portfolio); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if validateVerbose {
		printer.PrintPortfolio(portfolio)
		printer.PrintSkills(portfolio.Skills)
		printer.PrintTimeline(portfolio.Timeline)
		printer.PrintProjects(portfolio.Projects)
		printer.PrintValidationErrors(nil)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateContentPath)
	return nil
}

// validateAgainstSchema checks a content file against a user-supplied schema.
// YAML content is normalised to JSON first.
func validateAgainstSchema(schemaPath, contentPath string) error {
	format, err := content.FormatFromPath(contentPath)
	if err != nil {
		return err
	}
	if format == content.FormatJSON {
		return schemas.ValidateJSON(schemaPath, contentPath)
	}

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	data, err := os.ReadFile(contentPath)
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	doc, err := content.ToJSON(data, format)
	if err != nil {
		return err
	}
	return schemas.ValidateJSONString(string(schema), string(doc))
}

// checkRenders renders every card kind and both charts, catching what the schema cannot.
func checkRenders(p *types.Portfolio) error {
	cards, err := rendering.NewCards()
	if err != nil {
		return err
	}
	for _, kind := range types.Kinds() {
		if _, err := cards.RenderKind(p, kind); err != nil {
			return err
		}
	}

	charts := chart.Plotly{}
	if _, err := charts.SkillRadar(p.Skills); err != nil {
		return err
	}
	if _, err := charts.Timeline(p.Timeline); err != nil {
		return err
	}
	return nil
}
