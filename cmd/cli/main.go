package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"swarm-utilization/internal/analysis"
	"swarm-utilization/internal/config"
	"swarm-utilization/internal/data"
	"swarm-utilization/internal/explore"
	"swarm-utilization/internal/logger"
	"swarm-utilization/internal/model"
	"swarm-utilization/internal/render"
	"swarm-utilization/internal/strategy"
)

// Command line flags
var (
	// Global flags
	configPath string
	dataPath   string
	logLevel   string

	// View command flags
	asJSON    bool
	showRaw   bool
	histogram bool
	chartOut  string
	barWidth  int

	// Rank command flags
	rankKind  string
	rankLimit int

	// Export command flags
	exportFormat string
	exportOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "swarm",
		Short:        "Explore adaptive swarm utilization results",
		Version:      "1.0.0",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "Path to YAML config")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Results CSV (overrides dataset.path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides log.level)")

	rootCmd.AddCommand(
		buildViewCmd(),
		buildRankCmd(),
		buildExportCmd(),
		buildStrategiesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session is what every command needs: config, logger and the dataset.
type session struct {
	cfg *config.Config
	log zerolog.Logger
	ds  *model.Dataset
}

func openSession() (*session, error) {
	cfg, err := config.LoadUnchecked(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if dataPath != "" {
		cfg.Dataset.Path = dataPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Colored: cfg.Log.UseColor(),
		JSON:    cfg.Log.UseJSON(),
		Out:     os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	opts, err := cfg.CSVOptions()
	if err != nil {
		return nil, err
	}
	ds, err := data.LoadDataset(cfg.Dataset.Path, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", cfg.Dataset.Path).Int("rows", ds.Len()).Msg("dataset loaded")

	return &session{cfg: cfg, log: log, ds: ds}, nil
}

func buildViewCmd() *cobra.Command {
	sel := &selectionFlags{}
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Filter the results and chart the selected tick rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.OutOrStdout(), sel)
		},
	}
	sel.register(viewCmd)
	viewCmd.Flags().BoolVar(&asJSON, "json", false, "Print the render cycle as JSON")
	viewCmd.Flags().BoolVar(&showRaw, "raw", false, "Also print the raw data table")
	viewCmd.Flags().BoolVar(&histogram, "hist", false, "Print a value histogram per metric")
	viewCmd.Flags().StringVarP(&chartOut, "out", "o", "", "Write the chart to a .png or .svg file")
	viewCmd.Flags().IntVar(&barWidth, "width", 40, "Terminal bar width")
	return viewCmd
}

func runView(w io.Writer, flags *selectionFlags) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	sel, err := flags.selection(s.cfg.Selection)
	if err != nil {
		return err
	}

	p := s.cfg.ExplorePalette()
	res := explore.New(p).Run(s.ds, sel)
	bars := render.Bars(res, analysis.DefaultSummarizer().Summarize(res.Series), p)
	s.log.Debug().Int("filtered", len(res.Filtered)).Int("bars", len(bars)).Msg("render cycle")

	if asJSON {
		return printJSON(w, map[string]interface{}{
			"can_render": res.CanRender,
			"message":    res.Message,
			"filtered":   res.Filtered,
			"series":     res.Series,
			"colors":     res.Colors,
			"bars":       bars,
		})
	}

	if !res.CanRender {
		if err := render.Notice(w, res.Message); err != nil {
			return err
		}
	} else {
		if err := render.TerminalChart(w, "", bars, barWidth); err != nil {
			return err
		}
		if histogram {
			for _, k := range res.Kinds {
				if err := render.Histogram(w, res.Series, k, 10, barWidth); err != nil {
					return err
				}
			}
		}
		if chartOut != "" {
			if err := writeChartFile(chartOut, bars); err != nil {
				return err
			}
			s.log.Info().Str("path", chartOut).Msg("chart written")
		}
	}

	fmt.Fprintln(w)
	render.RowsTable(w, "Filtered data", res.Filtered)
	if showRaw {
		fmt.Fprintln(w)
		render.RowsTable(w, "Raw data", s.ds.Rows)
	}
	return nil
}

func writeChartFile(path string, bars []render.Bar) error {
	format, err := render.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	if len(bars) == 0 {
		return fmt.Errorf("chart %s: %w", path, render.ErrNothingToDraw)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.WriteChart(f, bars, format, render.ChartOptions{})
}

func buildRankCmd() *cobra.Command {
	sel := &selectionFlags{}
	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank strategies by mean tick rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd.OutOrStdout(), sel)
		},
	}
	sel.registerFilters(rankCmd)
	rankCmd.Flags().StringVarP(&rankKind, "kind", "k", "all", "Metric to rank by: all, friendly or enemy")
	rankCmd.Flags().IntVarP(&rankLimit, "limit", "n", 0, "Show only the top N (0 = all)")
	return rankCmd
}

func runRank(w io.Writer, flags *selectionFlags) error {
	kind, ok := model.ParseMetricKind(rankKind)
	if !ok {
		return fmt.Errorf("unknown metric kind %q", rankKind)
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	sel, err := flags.selection(s.cfg.Selection)
	if err != nil {
		return err
	}
	sel.Metrics = model.MetricFlags{}.With(kind)

	res := explore.New(s.cfg.ExplorePalette()).Run(s.ds, sel)
	ranked := analysis.RankByMean(analysis.DefaultSummarizer().Summarize(res.Series), kind)
	if rankLimit > 0 && rankLimit < len(ranked) {
		ranked = ranked[:rankLimit]
	}
	if len(ranked) == 0 {
		return render.Notice(w, render.NoRowsMessage)
	}
	render.RankTable(w, ranked)
	return nil
}

func buildExportCmd() *cobra.Command {
	sel := &selectionFlags{}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered rows as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), sel)
		},
	}
	sel.registerFilters(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "Output file ('-' for stdout)")
	return exportCmd
}

func runExport(stdout io.Writer, flags *selectionFlags) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	sel, err := flags.selection(s.cfg.Selection)
	if err != nil {
		return err
	}
	rows := explore.Filter(s.ds.Rows, sel)

	w := stdout
	if exportOut != "-" {
		if err := os.MkdirAll(filepath.Dir(exportOut), 0o755); err != nil {
			return err
		}
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch exportFormat {
	case "csv":
		opts, err := s.cfg.CSVOptions()
		if err != nil {
			return err
		}
		err = data.WriteResultsCSV(w, rows, opts)
		if err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	case "json":
		if err := data.WriteResultsJSON(w, rows); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", exportFormat)
	}

	if exportOut != "-" {
		s.log.Info().Int("rows", len(rows)).Str("path", exportOut).Msg("export written")
	}
	return nil
}

func buildStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the strategy options of the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range strategy.Options(s.ds.Rows) {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	out, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
