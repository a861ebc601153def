package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	recrender "github.com/bnema/evaldash/internal/adapters/render/recommendations"
	"github.com/bnema/evaldash/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type sectionOutput struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Code            string    `json:"code"`
	Display         string    `json:"display"`
	HasData         bool      `json:"has_data"`
	TotalPercentage float64   `json:"total_percentage"`
	Evaluations     int       `json:"evaluations"`
	CategoryScores  []float64 `json:"category_scores"`
}

func newSectionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Inspect and import evaluation sections",
	}

	cmd.AddCommand(
		newSectionsListCmd(app),
		newSectionsShowCmd(app),
		newSectionsImportCmd(app),
	)

	return cmd
}

func newSectionsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List selectable sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sections, err := app.service.ListSections(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, toSectionOutputs(sections))
			}
			if len(sections) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no sections in %s, run `evaldash sections import` first\n", app.repo.Path())
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), sectionsTable(sections))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSectionsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the evaluation summary of one section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := app.service.ResolveSection(cmd.Context(), domain.SectionID(args[0]))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, toSectionOutput(section))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), recrender.RenderEvaluation(section))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSectionsImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the local dashboard snapshot with an evaluation export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard, err := app.importer.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d class sections into %s\n", len(dashboard.Sections), app.repo.Path())
			return err
		},
	}
}

func sectionsTable(sections []domain.Section) string {
	rows := make([][]string, 0, len(sections))
	for _, section := range sections {
		total := "-"
		if section.Data.HasData {
			total = strconv.FormatFloat(section.Data.TotalPercentage, 'f', 2, 64) + "%"
		}
		rows = append(rows, []string{
			string(section.ID),
			string(section.Kind),
			section.DisplayName(),
			total,
			strconv.Itoa(section.Data.Evaluations()),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "KIND", "SECTION", "TOTAL", "EVALUATIONS").
		Rows(rows...).
		String()
}

func toSectionOutputs(sections []domain.Section) []sectionOutput {
	out := make([]sectionOutput, 0, len(sections))
	for _, section := range sections {
		out = append(out, toSectionOutput(section))
	}
	return out
}

func toSectionOutput(section domain.Section) sectionOutput {
	scores := section.Data.CategoryScores
	if scores == nil {
		scores = []float64{}
	}

	return sectionOutput{
		ID:              string(section.ID),
		Kind:            string(section.Kind),
		Code:            section.APICode(),
		Display:         section.DisplayName(),
		HasData:         section.Data.HasData,
		TotalPercentage: section.Data.TotalPercentage,
		Evaluations:     section.Data.Evaluations(),
		CategoryScores:  scores,
	}
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
