package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"homewatt/internal/advisor"
	"homewatt/internal/estimator"
	"homewatt/internal/report"
	"homewatt/internal/service"
	"homewatt/internal/tariff"
)

type opts struct {
	housing       string
	rooms         string
	temps         string
	ratePerKWh    float64
	weeksPerMonth float64
	pdfPath       string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "wattcalc",
		Short: "Weekly household energy estimation from daily temperatures",
		Long: `wattcalc estimates a week of household energy consumption for a housing
configuration (flat/tenement, 1BHK..3BHK) from one temperature per day.
It prints the per-day breakdown, the weekly summary and a tariff-based
cost projection.

Examples:
  wattcalc --housing flat --rooms 2BHK --temps 25,26,28,31,35,24,22
  wattcalc --housing tenement --rooms 1BHK --temps 40,38 --rate 8 --pdf week.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o)
		},
	}

	root.Flags().StringVar(&o.housing, "housing", "flat", "housing type: flat or tenement")
	root.Flags().StringVar(&o.rooms, "rooms", "2BHK", "room configuration: 1BHK, 2BHK or 3BHK")
	root.Flags().StringVarP(&o.temps, "temps", "t", "", "comma separated daily temperatures in °C, Monday first (1..7 values)")
	root.Flags().Float64Var(&o.ratePerKWh, "rate", tariff.DefaultRatePerKWh, "tariff rate per kWh")
	root.Flags().Float64Var(&o.weeksPerMonth, "weeks-per-month", tariff.DefaultWeeksPerMonth, "weeks per month projection factor")
	root.Flags().StringVar(&o.pdfPath, "pdf", "", "also write the weekly report as a PDF file")
	_ = root.MarkFlagRequired("temps")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(o opts) error {
	temps, err := parseTemps(o.temps)
	if err != nil {
		return err
	}

	housing := estimator.HousingType(o.housing)
	rooms := estimator.RoomConfig(o.rooms)
	if _, ok := estimator.LookupBaseProfile(housing, rooms); !ok {
		return fmt.Errorf("unsupported housing configuration %s/%s", o.housing, o.rooms)
	}

	t := tariff.New(o.ratePerKWh, o.weeksPerMonth)
	week := estimator.Week()

	var (
		days    []service.DayReport
		records []estimator.DayRecord
		tempSum float64
	)
	for i, tempC := range temps {
		day := week[i]
		breakdown, err := estimator.EstimateDaily(housing, rooms, tempC)
		if err != nil {
			return err
		}
		days = append(days, service.DayReport{
			Day:          day,
			TemperatureC: tempC,
			Weather:      estimator.WeatherLabel(tempC),
			Breakdown:    breakdown,
			Cost:         t.Cost(breakdown.Total),
		})
		records = append(records, estimator.DayRecord{Day: day, Breakdown: breakdown})
		tempSum += tempC
	}

	summary, err := estimator.SummarizeWeek(records)
	if err != nil {
		return err
	}
	avgTemp := tempSum / float64(len(temps))

	printTable(days)

	fmt.Println()
	fmt.Printf("weekly summary (%s/%s, %d days):\n", housing, rooms, summary.Days)
	fmt.Printf("- total energy:    %.2f kWh\n", summary.TotalKWh)
	fmt.Printf("- daily average:   %.2f kWh\n", summary.AverageKWh)
	fmt.Printf("- peak day:        %s (%.2f kWh)\n", summary.PeakDay, summary.PeakDayTotal)
	fmt.Printf("- weekly cost:     %.2f\n", t.Cost(summary.TotalKWh))
	fmt.Printf("- monthly bill:    %.2f (x%.1f weeks)\n", t.MonthlyProjection(summary.TotalKWh), t.WeeksPerMonth)

	recs := advisor.WeeklyRecommendations(advisor.WeekProfile{
		AvgTempC:    avgTemp,
		AvgDailyKWh: summary.AverageKWh,
		HousingType: housing,
	})
	fmt.Println()
	fmt.Println("energy saving tips:")
	for i, rec := range recs {
		fmt.Printf("%d. %s\n", i+1, rec)
	}

	if o.pdfPath != "" {
		r := &service.WeeklyReport{
			SessionID:       "wattcalc",
			HousingType:     housing,
			RoomConfig:      rooms,
			Days:            days,
			Summary:         summary,
			AvgTemperatureC: avgTemp,
			WeeklyCost:      t.Cost(summary.TotalKWh),
			MonthlyCost:     t.MonthlyProjection(summary.TotalKWh),
			Recommendations: recs,
		}
		pdf, err := report.WeeklyPDF(r)
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		if err := os.WriteFile(o.pdfPath, pdf, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		fmt.Printf("\nreport written to %s\n", o.pdfPath)
	}

	return nil
}

func parseTemps(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) == 0 || len(parts) > 7 {
		return nil, fmt.Errorf("expected 1..7 temperatures, got %d", len(parts))
	}

	temps := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad temperature %q: %w", p, err)
		}
		temps = append(temps, f)
	}
	return temps, nil
}

func printTable(days []service.DayReport) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTEMP (°C)\tWEATHER\tLIGHTING\tFAN/AC\tAPPLIANCES\tWATER HEATER\tFRIDGE\tTOTAL (kWh)\tCOST")
	for _, d := range days {
		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			d.Day, d.TemperatureC, d.Weather,
			d.Breakdown.Lighting, d.Breakdown.FanAC, d.Breakdown.Appliances,
			d.Breakdown.WaterHeater, d.Breakdown.Refrigerator, d.Breakdown.Total, d.Cost,
		)
	}
	tw.Flush()
}
