package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/btc-haven/haven-cli/internal/catalog"
	"github.com/btc-haven/haven-cli/internal/model"
)

var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "Browse the jurisdiction catalog",
	Long:  "Commands for listing and inspecting the static jurisdiction catalog the scorer runs against.",
}

var jurisdictionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog jurisdictions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, err := catalog.Load()
		if err != nil {
			return err
		}

		honorable, _ := cmd.Flags().GetBool("honorable-mentions")
		includeAll, _ := cmd.Flags().GetBool("all")

		var list []model.Jurisdiction
		switch {
		case includeAll:
			list = all
		case honorable:
			list = catalog.HonorableMentions(all)
		default:
			list = catalog.Top(all)
		}

		formatJurisdictionsList(os.Stdout, list)
		return nil
	},
}

var jurisdictionsShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one jurisdiction's full catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := catalog.Load()
		if err != nil {
			return err
		}

		j := catalog.BySlug(all, args[0])
		if j == nil {
			return eris.Errorf("jurisdictions: unknown slug %q", args[0])
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(j)
	},
}

func init() {
	jurisdictionsListCmd.Flags().Bool("honorable-mentions", false, "list honorable mentions instead of the main list")
	jurisdictionsListCmd.Flags().Bool("all", false, "list the full catalog")

	jurisdictionsCmd.AddCommand(jurisdictionsListCmd)
	jurisdictionsCmd.AddCommand(jurisdictionsShowCmd)
	rootCmd.AddCommand(jurisdictionsCmd)
}

// formatJurisdictionsList writes a tabular catalog listing to w.
func formatJurisdictionsList(out io.Writer, list []model.Jurisdiction) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "RANK\tSLUG\tNAME\tCOUNTRY\tCLIMATE\tSAFETY\tVISA ROUTES")
	_, _ = fmt.Fprintln(w, "----\t----\t----\t-------\t-------\t------\t-----------")

	for _, j := range list {
		routes := make([]string, 0, len(j.Tags.VisaRoutes))
		for _, r := range j.Tags.VisaRoutes {
			routes = append(routes, string(r))
		}

		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.Rank,
			j.Slug,
			j.Name,
			j.Country,
			j.Tags.Climate,
			j.Tags.SafetyTier,
			strings.Join(routes, ","),
		)
	}
	_ = w.Flush()
}
