package cmd

import (
	"fmt"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/spf13/cobra"
)

type recommendationOutput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	ActionItems     []string `json:"action_items"`
	EstimatedImpact string   `json:"estimated_impact,omitempty"`
	Reason          string   `json:"reason,omitempty"`
}

func newRecommendCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend <id>",
		Short: "Fetch AI recommendations for one section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, app, domain.SectionID(args[0]), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runRecommend(cmd *cobra.Command, app *app, id domain.SectionID, asJSON bool) error {
	section, err := app.service.ResolveSection(cmd.Context(), id)
	if err != nil {
		return err
	}

	coord := app.newCoordinator("cli")
	token, outcome, err := issueRecommendation(cmd.Context(), app, coord, section)
	if err != nil {
		return err
	}

	if asJSON {
		coord.Wait()
	} else if err := waitWithProgress(cmd.Context(), cmd.ErrOrStderr(), section, token, coord); err != nil {
		return err
	}
	if outcome.err != nil {
		return outcome.err
	}
	if asJSON {
		return writeJSON(cmd, toRecommendationOutputs(outcome.items))
	}

	rendered, err := app.itemsRender(outcome.items)
	if err != nil {
		return fmt.Errorf("render recommendations: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toRecommendationOutputs(items []domain.RecommendationItem) []recommendationOutput {
	out := make([]recommendationOutput, 0, len(items))
	for i, item := range items {
		actions := item.ActionItems
		if actions == nil {
			actions = []string{}
		}
		out = append(out, recommendationOutput{
			Title:           item.DisplayTitle(i),
			Description:     item.DisplayDescription(),
			Priority:        string(item.DisplayPriority()),
			ActionItems:     actions,
			EstimatedImpact: item.EstimatedImpact,
			Reason:          item.Reason,
		})
	}
	return out
}
