package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/btc-haven/haven-cli/internal/catalog"
	"github.com/btc-haven/haven-cli/internal/scorer"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score jurisdictions against your situation",
	Long: `Scores every jurisdiction in the catalog against your answers and
prints a ranked list.

Answers come from flags, or from an encoded query string produced by the
web quiz (--answers). The weight preset can be picked explicitly, tuned
per criterion with --weight, or chosen automatically from your answers
with --preset auto.

Examples:
  # Ranked list with defaults (non-American hodler working remotely)
  score

  # American business owner with kids, tax-focused weighting
  score --citizenship american --usage business --kids --preset tax-efficiency

  # Hard requirements and a custom criterion weight
  score --deal-breakers very-safe,fast-internet --weight education=1.5

  # Resume a quiz from its share URL and save the run
  score --answers "cit=american&bu=trade&db=12" --save

  # Export the top five to CSV
  score --top 5 --format csv --output scores.csv`,
	RunE: runScore,
}

func init() {
	registerAnswerFlags(scoreCmd)

	f := scoreCmd.Flags()
	f.String("preset", "", "weight preset: balanced, tax-efficiency, family-first, safety-stability, custom, auto (default from config)")
	f.StringArray("weight", nil, "per-criterion weight override, criterion=value (repeatable)")
	f.Int("top", 0, "only output the top N results (0=all)")
	f.String("format", "table", "output format: table, csv, or json")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "persist the run to the store")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "csv" && format != "json" {
		return eris.Errorf("score: --format must be table, csv, or json (got %q)", format)
	}

	answers, err := answersFromFlags(cmd)
	if err != nil {
		return err
	}

	presetFlag, _ := cmd.Flags().GetString("preset")
	if presetFlag == "" {
		presetFlag = cfg.Scoring.DefaultPreset
	}
	preset := scorer.Preset(presetFlag)
	if presetFlag == "auto" {
		preset = scorer.RecommendPreset(answers)
	}

	weightPairs, _ := cmd.Flags().GetStringArray("weight")
	overrides, err := parseWeightOverrides(weightPairs)
	if err != nil {
		return err
	}
	effective := scorer.PresetWeights(preset)
	if overrides != nil {
		effective = overrides.Apply(effective)
	}
	if err := effective.Validate(); err != nil {
		return err
	}

	jurisdictions, err := catalog.Load()
	if err != nil {
		return err
	}

	results := scorer.ScoreJurisdictions(jurisdictions, answers, preset, overrides)

	if top, _ := cmd.Flags().GetInt("top"); top > 0 && top < len(results) {
		results = results[:top]
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if err := outputScoreResults(results, format, outputPath); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		run, err := st.SaveRun(ctx, answers, preset, overrides, results)
		if err != nil {
			return eris.Wrap(err, "score: save run")
		}
		fmt.Printf("Saved run %s\n", run.ID)
		zap.L().Info("run saved", zap.String("run_id", run.ID), zap.String("preset", string(preset)))
	}

	return nil
}

func outputScoreResults(results []scorer.ScoredJurisdiction, format, outputPath string) error {
	var w io.Writer = os.Stdout
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer file.Close() //nolint:errcheck
		w = file
	}

	switch format {
	case "csv":
		return writeScoreCSV(w, results)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(results), "score: encode JSON")
	default:
		return writeScoreTable(w, results)
	}
}

func writeScoreCSV(w io.Writer, results []scorer.ScoredJurisdiction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"slug", "name", "country", "score", "american_modifier", "matched_preferences", "warnings"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "score: write CSV header")
	}

	for _, r := range results {
		row := []string{
			r.Slug,
			r.Name,
			r.Country,
			fmt.Sprintf("%.2f", r.FinalScore),
			strconv.Itoa(r.AmericanModifier),
			strings.Join(r.MatchedPreferences, "; "),
			strings.Join(r.Warnings, "; "),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "score: write CSV row")
		}
	}
	return nil
}

func writeScoreTable(w io.Writer, results []scorer.ScoredJurisdiction) error {
	header := fmt.Sprintf("%-4s %-22s %-20s %7s %8s %8s\n",
		"#", "Jurisdiction", "Country", "Score", "Matches", "Warnings")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "score: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 75)); err != nil {
		return eris.Wrap(err, "score: write table separator")
	}

	for i, r := range results {
		name := r.Name
		if len(name) > 22 {
			name = name[:19] + "..."
		}
		line := fmt.Sprintf("%-4d %-22s %-20s %7.2f %8d %8d\n",
			i+1, name, r.Country, r.FinalScore, len(r.MatchedPreferences), len(r.Warnings))
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "score: write table row")
		}
	}
	return nil
}
