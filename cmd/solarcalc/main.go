package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/api"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/calculation"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/config"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/output"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/store"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "solarcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadConfig parses and validates a scenario file, exiting on failure.
func loadConfig(inputFile string) *domain.Configuration {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// newEngine builds a calculation engine honoring the --debug flag.
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	engine.Debug = debugMode
	return engine
}

var rootCmd = &cobra.Command{
	Use:   "solarcalc",
	Short: "Solar panel investment calculator CLI",
	Long:  "Investment calculator for Danish residential solar installations: costs, payback, tax scenarios, CO2 and 25-year projections",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the full investment calculation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])

		result, err := newEngine(cmd).RunCalculation(cfg)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		data, err := output.NewReportGenerator().Generate(result, outputFormat)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var projectionCmd = &cobra.Command{
	Use:   "projection [input-file]",
	Short: "Print the 25-year savings projection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])

		projection, err := newEngine(cmd).RunProjection(cfg)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("25-YEAR SAVINGS PROJECTION")
		fmt.Println("==========================")
		for _, y := range projection.Years {
			fmt.Printf("Year %2d: production %s kWh, net %s kr, cumulative %s kr\n",
				y.Year,
				y.ProductionKwh.StringFixed(0),
				y.NetSavingsNominal.StringFixed(2),
				y.CumulativeNominal.StringFixed(2))
		}
		fmt.Println()
		if projection.Summary.BreakEvenYearNominal > 0 {
			fmt.Printf("Break-even (nominal): year %d\n", projection.Summary.BreakEvenYearNominal)
		} else {
			fmt.Println("Break-even (nominal): not reached within 25 years")
		}
		fmt.Printf("Total nominal savings: %s\n", output.FormatCurrency(projection.Summary.TotalSavingsNominal))
		fmt.Printf("25-year ROI: %s%%\n", projection.Summary.ROI25Year.StringFixed(2))
	},
}

var taxCompareCmd = &cobra.Command{
	Use:   "tax-compare [input-file]",
	Short: "Compare the available tax treatment scenarios",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])

		result, err := newEngine(cmd).RunCalculation(cfg)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("TAX SCENARIO COMPARISON")
		fmt.Println("=======================")
		for _, scenario := range result.TaxScenarios {
			fmt.Printf("\n%s\n", scenario.Scenario)
			fmt.Printf("  Tax deduction:     %s\n", output.FormatCurrency(scenario.TaxDeduction))
			fmt.Printf("  Effective cost:    %s\n", output.FormatCurrency(scenario.EffectiveCost))
			fmt.Printf("  Effective payback: %s years\n", scenario.EffectivePaybackYears.StringFixed(2))
			for _, assumption := range scenario.Assumptions {
				fmt.Printf("  - %s\n", assumption)
			}
		}
	},
}

var co2Cmd = &cobra.Command{
	Use:   "co2 [input-file]",
	Short: "Print the CO2 savings estimate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])

		result, err := newEngine(cmd).RunCalculation(cfg)
		if err != nil {
			log.Fatal(err)
		}

		co2 := result.CO2Savings
		fmt.Println("CO2 SAVINGS")
		fmt.Println("===========")
		fmt.Printf("Annual:   %s kg (%s tonnes)\n", co2.AnnualCO2SavingsKg.StringFixed(2), co2.AnnualCO2SavingsTonnes.StringFixed(2))
		fmt.Printf("Lifetime: %s tonnes over 25 years\n", co2.LifetimeCO2SavingsTonnes.StringFixed(2))
		fmt.Printf("Equivalent to %s km of driving per year\n", co2.EquivalentCarKm.StringFixed(2))
		fmt.Printf("Equivalent to %s trees absorbing CO2 per year\n", co2.EquivalentTreesYear.StringFixed(2))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(inputFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Scenario file %s is valid\n", inputFile)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		serverConfig := config.LoadServerConfig()

		var scenarios store.ScenarioStore
		noStore, _ := cmd.Flags().GetBool("no-store")
		if !noStore {
			gormStore, err := store.Connect(serverConfig)
			if err != nil {
				log.Fatalf("database connection failed: %v (use --no-store to serve without persistence)", err)
			}
			scenarios = gormStore
		}

		server := api.NewServer(newEngine(cmd), scenarios)
		log.Printf("listening on :%s", serverConfig.AppPort)
		if err := server.Listen(":" + serverConfig.AppPort); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	projectionCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	taxCompareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	co2Cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	serveCmd.Flags().Bool("no-store", false, "Serve calculation endpoints without a database")
	serveCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(projectionCmd)
	rootCmd.AddCommand(taxCompareCmd)
	rootCmd.AddCommand(co2Cmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	calculation.ConfigureDecimal()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
