package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/vladglv/Performance-Tools/internal/analyzer"
	"github.com/vladglv/Performance-Tools/internal/config"
	apperrors "github.com/vladglv/Performance-Tools/internal/errors"
	"github.com/vladglv/Performance-Tools/internal/logger"
	"github.com/vladglv/Performance-Tools/internal/report"
	"github.com/vladglv/Performance-Tools/internal/trace"
	"github.com/vladglv/Performance-Tools/pkg/version"
)

const usage = `Usage: fpa [flags] frametimes_csv [stutter_margin] [report_file]

Analyzes a FRAPS-style frametimes CSV and writes an augmented copy as a
sibling file (<name>_fpa.<ext>) plus a smoothness report.

Arguments:
  frametimes_csv  input trace with "Frame, Time (ms)" columns
  stutter_margin  stutter margin in ms, on ]%.2f, %.1f[
  report_file     report destination (default: stdout)

Flags:
`

func main() {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage,
			analyzer.StutterMarginMin, analyzer.StutterMarginMax)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Show version and exit if requested
	if showVersion {
		fmt.Println(version.GetInfo().String())
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 3 {
		flag.Usage()
		os.Exit(2)
	}

	handler := apperrors.NewErrorHandler(log)

	marginMS := cfg.Analysis.StutterMargin
	if len(args) >= 2 {
		marginMS, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid parameter stutter_margin: %q\n", args[1])
			flag.Usage()
			os.Exit(2)
		}
	}
	// Reject a bad margin before touching any file
	if err := analyzer.ValidateStutterMargin(marginMS); err != nil {
		os.Exit(handler.Handle(err))
	}

	reportPath := ""
	if len(args) == 3 {
		reportPath = args[2]
	}

	runLog := logger.NewLogrusAdapter(logger.NewEntry(log))
	if err := run(runLog, args[0], marginMS, reportPath); err != nil {
		os.Exit(handler.Handle(err))
	}
}

// run performs one analysis pass: read trace, analyze, write the augmented
// table next to the input, then emit the report. Any error aborts before the
// report is written.
func run(log logger.Logger, inputPath string, marginMS float64, reportPath string) error {
	log.WithFields(logger.Fields{
		"input":     inputPath,
		"margin_ms": marginMS,
	}).Info("Starting frame trace analysis")

	samples, header, err := trace.Read(inputPath)
	if err != nil {
		return err
	}

	records, summary, err := analyzer.Analyze(samples, marginMS)
	if err != nil {
		return err
	}

	outPath := trace.OutputPath(inputPath)
	if err := trace.WriteAugmented(outPath, header, samples, records); err != nil {
		return err
	}

	if reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return apperrors.WrapOutputWriteError(err, reportPath)
		}
		defer f.Close()
		if err := report.Write(f, summary); err != nil {
			return apperrors.WrapOutputWriteError(err, reportPath)
		}
	} else if err := report.Write(os.Stdout, summary); err != nil {
		return apperrors.WrapOutputWriteError(err, "stdout")
	}

	log.WithFields(logger.Fields{
		"samples":        len(samples),
		"stutter":        summary.StutterSamples,
		"smooth":         summary.SmoothSamples,
		"augmented_path": outPath,
		"rating":         summary.Rating.Label,
	}).Info("Analysis completed")

	return nil
}
