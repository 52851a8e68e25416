package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mindrng/internal/bootstrap"
	gamedto "mindrng/internal/modules/game/dto"
	"mindrng/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "mindrng",
		Short:         "Mind vs Machine RNG trial recorder and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "data", "data directory")

	root.AddCommand(newPlayCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newDistributionCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newClearCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newTUICmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func warn(cmd *cobra.Command, warning string) {
	if warning != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}
}

func newPlayCmd(dataDir *string) *cobra.Command {
	var prediction, minVal, maxVal int
	var mode, algorithm string

	play := &cobra.Command{
		Use:   "play [--predict N]",
		Short: "Generate a number against an optional prediction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			input := gamedto.PlayInput{GameMode: mode, Algorithm: algorithm}
			if cmd.Flags().Changed("predict") {
				input.Prediction = &prediction
			}
			if cmd.Flags().Changed("min") {
				input.MinVal = &minVal
			}
			if cmd.Flags().Changed("max") {
				input.MaxVal = &maxVal
			}
			out, err := app.GameCLI.Play(cmd.Context(), input)
			if err != nil {
				return err
			}
			warn(cmd, out.Warning)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "generated %d in [%d, %d] (%s)\n", out.Generated, out.MinVal, out.MaxVal, out.Algorithm)
			switch {
			case out.Hit:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "hit! streak=%d\n", out.CurrentStreak)
			case out.Distance != nil:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "miss, distance=%d\n", *out.Distance)
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no prediction recorded")
			}
			return nil
		},
	}
	play.Flags().IntVar(&prediction, "predict", 0, "predicted number (omit to skip predicting)")
	play.Flags().IntVar(&minVal, "min", 0, "range minimum (defaults to settings)")
	play.Flags().IntVar(&maxVal, "max", 0, "range maximum (defaults to settings)")
	play.Flags().StringVar(&mode, "mode", "", "game mode: exact_match|range_prediction|high_low")
	play.Flags().StringVar(&algorithm, "algorithm", "", "algorithm: standard|secrets|time_based")
	return play
}

func newStatsCmd(dataDir *string) *cobra.Command {
	var topN, special int

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show running statistics over the trial history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			var specialPtr *int
			if cmd.Flags().Changed("special") {
				specialPtr = &special
			}
			out, err := app.GameCLI.Stats(cmd.Context(), topN, specialPtr)
			if err != nil {
				return err
			}
			warn(cmd, out.Warning)
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "attempts: %d\npredictions: %d\nhits: %d\nhit rate: %.1f%%\n", out.TotalAttempts, out.TotalPredictions, out.TotalHits, out.HitRate)
			if out.AverageDistance != nil {
				_, _ = fmt.Fprintf(w, "average distance: %.2f\n", *out.AverageDistance)
			} else {
				_, _ = fmt.Fprintln(w, "average distance: n/a")
			}
			_, _ = fmt.Fprintf(w, "current streak: %d\nlongest streak: %d\n", out.CurrentStreak, out.LongestStreak)
			if len(out.HotNumbers) > 0 {
				hot := make([]string, 0, len(out.HotNumbers))
				for _, nc := range out.HotNumbers {
					hot = append(hot, fmt.Sprintf("%d(x%d)", nc.Value, nc.Count))
				}
				_, _ = fmt.Fprintf(w, "hot: %s\n", strings.Join(hot, " "))
			}
			if len(out.ColdNumbers) > 0 {
				cold := make([]string, 0, len(out.ColdNumbers))
				for _, v := range out.ColdNumbers {
					cold = append(cold, fmt.Sprintf("%d", v))
				}
				_, _ = fmt.Fprintf(w, "cold: %s\n", strings.Join(cold, " "))
			}
			_, _ = fmt.Fprintf(w, "special %d seen %d times\n", out.SpecialNumber, out.SpecialCount)
			return nil
		},
	}
	stats.Flags().IntVar(&topN, "top", 0, "hot/cold list size (defaults to settings)")
	stats.Flags().IntVar(&special, "special", 0, "special number to count (defaults to settings)")
	return stats
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	var last int

	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent trials, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.GameCLI.History(cmd.Context(), last)
			if err != nil {
				return err
			}
			warn(cmd, out.Warning)
			if len(out.Records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no trials recorded")
				return nil
			}
			for _, r := range out.Records {
				prediction := "-"
				if r.Prediction != nil {
					prediction = fmt.Sprintf("%d", *r.Prediction)
				}
				result := "miss"
				if r.Hit {
					result = "hit"
				} else if r.Prediction == nil {
					result = "n/a"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tpredicted=%s generated=%d %s\n", r.Timestamp, prediction, r.Generated, result)
			}
			return nil
		},
	}
	history.Flags().IntVar(&last, "last", 10, "number of trials to show")
	return history
}

func newDistributionCmd(dataDir *string) *cobra.Command {
	var bins int

	distribution := &cobra.Command{
		Use:   "distribution",
		Short: "Show the binned frequency distribution of generated numbers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.GameCLI.Distribution(cmd.Context(), bins)
			if err != nil {
				return err
			}
			warn(cmd, out.Warning)
			if len(out.Labels) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no trials recorded")
				return nil
			}
			for i, label := range out.Labels {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", label, out.Counts[i], strings.Repeat("#", out.Counts[i]))
			}
			return nil
		},
	}
	distribution.Flags().IntVar(&bins, "bins", 0, "bucket count (defaults to settings)")
	return distribution
}

func newExportCmd(dataDir *string) *cobra.Command {
	var outPath string

	export := &cobra.Command{
		Use:   "export",
		Short: "Export the trial history to CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.GameCLI.ExportCSV(cmd.Context(), outPath)
			if err != nil {
				return err
			}
			warn(cmd, out.Warning)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d trials to %s\n", out.Records, out.Path)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "output path (defaults to <data>/exports/sessions_<timestamp>.csv)")
	return export
}

func newClearCmd(dataDir *string) *cobra.Command {
	var yes bool

	clear := &cobra.Command{
		Use:   "clear --yes",
		Short: "Delete all recorded trials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all trial data without --yes")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.GameCLI.Clear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all trial data cleared")
			return nil
		},
	}
	clear.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return clear
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite history index from the session file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.GameCLI.Reindex(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show or change persisted preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.GameCLI.GetSettings(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "range: [%d, %d]\nmode: %s\nalgorithm: %s\nbins: %d\ntop_n: %d\nspecial_number: %d\n",
				out.MinVal, out.MaxVal, out.GameMode, out.Algorithm, out.Bins, out.TopN, out.SpecialNumber)
			return nil
		},
	})

	var minVal, maxVal, bins, topN, special int
	var mode, algorithm string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings (only provided flags are updated)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			input := gamedto.SettingsInput{}
			if cmd.Flags().Changed("min") {
				input.MinVal = &minVal
			}
			if cmd.Flags().Changed("max") {
				input.MaxVal = &maxVal
			}
			if cmd.Flags().Changed("mode") {
				input.GameMode = &mode
			}
			if cmd.Flags().Changed("algorithm") {
				input.Algorithm = &algorithm
			}
			if cmd.Flags().Changed("bins") {
				input.Bins = &bins
			}
			if cmd.Flags().Changed("top") {
				input.TopN = &topN
			}
			if cmd.Flags().Changed("special") {
				input.SpecialNumber = &special
			}
			out, err := app.GameCLI.UpdateSettings(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "settings saved: range=[%d, %d] mode=%s algorithm=%s bins=%d top_n=%d special=%d\n",
				out.MinVal, out.MaxVal, out.GameMode, out.Algorithm, out.Bins, out.TopN, out.SpecialNumber)
			return nil
		},
	}
	set.Flags().IntVar(&minVal, "min", 0, "range minimum")
	set.Flags().IntVar(&maxVal, "max", 0, "range maximum")
	set.Flags().StringVar(&mode, "mode", "", "game mode: exact_match|range_prediction|high_low")
	set.Flags().StringVar(&algorithm, "algorithm", "", "algorithm: standard|secrets|time_based")
	set.Flags().IntVar(&bins, "bins", 0, "distribution bucket count")
	set.Flags().IntVar(&topN, "top", 0, "hot/cold list size")
	set.Flags().IntVar(&special, "special", 0, "special number")
	settings.AddCommand(set)

	return settings
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the statistics dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}
