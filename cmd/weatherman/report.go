package main

import (
	"github.com/spf13/cobra"

	"github.com/hmraza/weatherman/internal/weather"
)

var (
	yearlyDates    []string
	averageDates   []string
	dualBarDates   []string
	singleBarDates []string
)

var reportCmd = &cobra.Command{
	Use:   "report PATH",
	Short: "Generate weather reports from a weatherfiles directory",
	Long: `Generate weather reports from a directory of monthly weather files.

Each flag may be given several times; flag groups are processed in
yearly, average, chart, bar order with one shared report counter.`,
	Example: `  weatherman report ./weatherfiles -e 2004 -a 2011/7 -c 2011/7 -b 2011/7`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := weather.NewService(args[0])
		svc.SetOutput(cmd.OutOrStdout())

		groups := []struct {
			dates  []string
			strat  weather.Strategy
			yearly bool
		}{
			{yearlyDates, weather.StrategyExtremes, true},
			{averageDates, weather.StrategyAverages, false},
			{dualBarDates, weather.StrategyDualBar, false},
			{singleBarDates, weather.StrategySingleBar, false},
		}

		reportNum := 1
		for _, g := range groups {
			if len(g.dates) == 0 {
				continue
			}
			if _, err := svc.Run(g.dates, reportNum, g.strat, g.yearly); err != nil {
				return err
			}
			reportNum += len(g.dates)
		}
		return nil
	},
}

func init() {
	flags := reportCmd.Flags()
	flags.StringSliceVarP(&yearlyDates, "yearly", "e", nil, "yearly extremes report for the given years")
	flags.StringSliceVarP(&averageDates, "average", "a", nil, "monthly average report for the given YYYY/M dates")
	flags.StringSliceVarP(&dualBarDates, "chart", "c", nil, "monthly dual bar chart for the given YYYY/M dates")
	flags.StringSliceVarP(&singleBarDates, "bar", "b", nil, "monthly single bar chart for the given YYYY/M dates")
}
