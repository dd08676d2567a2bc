package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"SmartSprinkler.dashboard/internal/client"
	"SmartSprinkler.dashboard/internal/config"
	"SmartSprinkler.dashboard/internal/irrigation"
	"SmartSprinkler.dashboard/internal/models"
	"SmartSprinkler.dashboard/internal/repository"
	"SmartSprinkler.dashboard/internal/service"
)

func analyzeCmd() *cobra.Command {
	var (
		remote     string
		token      string
		labelsFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze VALUE...",
		Short: "Recommend sprinkler states for 20 sensor values",
		Long: `Analyze classifies 20 sensor values (0 to 1, in sensor order) and prints
the recommendation for every parcel together with the totals.

With --remote the values are sent to a running dashboard server instead of
being classified locally.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("value %d: %q is not a number", i, a)
				}
				values[i] = repository.Clamp(v)
			}

			var (
				resp models.AnalysisResponse
				err  error
			)
			if remote != "" {
				resp, err = client.New(remote, token).Classify(cmd.Context(), values)
			} else {
				resp, err = classifyLocal(labelsFile, values)
			}
			if err != nil {
				return err
			}
			return printAnalysis(cmd.OutOrStdout(), resp.Display)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Base URL of a running dashboard server")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token for --remote")
	cmd.Flags().StringVar(&labelsFile, "labels", "", "YAML file with the 20 sensor labels")
	return cmd
}

func classifyLocal(labelsFile string, values []float64) (models.AnalysisResponse, error) {
	labels, err := config.LoadLabels(labelsFile)
	if err != nil {
		return models.AnalysisResponse{}, err
	}
	state, err := repository.NewInputState(labels)
	if err != nil {
		return models.AnalysisResponse{}, err
	}
	svc := service.NewDashboardService(state, irrigation.NewDefaultClassifier(), nil)
	return svc.Classify(values)
}

func printAnalysis(out io.Writer, a models.AnalysisView) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PARCEL\tSENSOR\tVALUE\tSTATUS")
	for _, p := range a.Parcels {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Parcel, p.Label, p.Value, p.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nSprinklers ON: %d  OFF: %d  Water saved: %s%%\nAverage: %s  Highest: %s  Lowest: %s\n",
		a.Totals.CountOn, a.Totals.CountOff, a.Totals.WaterSaved,
		a.Summary.Average, a.Summary.Highest, a.Summary.Lowest)
	return err
}
