// wxindex
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/udawtr/wxindex-go/wxindex"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("wxindex", "Derives VPD, WBGT and relative humidity from observation tables")

	mode := parser.Selector("m", "mode", []string{"VPD", "WBGT", "RH", "RHX"}, &argparse.Options{
		Required: true,
		Help:     "Quantity to compute: VPD, WBGT, RH (dew point and pressure) or RHX (daily RHx/RHave)"})

	input := parser.String("i", "input", &argparse.Options{
		Required: true,
		Help:     "Input CSV (.csv or .csv.gz). Hourly ta/tdew table in RHX mode"})

	daily := parser.String("", "daily", &argparse.Options{
		Default: "",
		Help:    "Daily tmax/tmin CSV, required in RHX mode"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (stdout when empty)"})

	configPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "YAML settings file"})

	rangeMode := parser.Selector("", "range", []string{"integer", "continuous"}, &argparse.Options{
		Help: "Fahrenheit range test for the WBGT heat index correction"})

	workers := parser.Int("w", "workers", &argparse.Options{
		Default: 0,
		Help:    "Worker goroutines per batch (0 = settings or GOMAXPROCS)"})

	startYear := parser.Int("", "start_year", &argparse.Options{
		Default: 0,
		Help:    "First year to use when the input has a date column"})

	endYear := parser.Int("", "end_year", &argparse.Options{
		Default: 0,
		Help:    "Last year to use when the input has a date column"})

	metricsFile := parser.String("", "metrics_file", &argparse.Options{
		Default: "",
		Help:    "Write Prometheus textfile metrics to this path"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Help: "Log level"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// 設定ファイルの読み込み (引数が優先)
	settings := wxindex.DefaultSettings()
	if *configPath != "" {
		s, err := wxindex.LoadSettings(*configPath)
		if err != nil {
			exitWith(err)
		}
		settings = s
	}
	if *rangeMode != "" {
		settings.RangeMode = *rangeMode
	}
	if *workers > 0 {
		settings.Workers = *workers
	}
	if *logLevel != "" {
		settings.Log = *logLevel
	}

	logger, _, err := setupLogging(os.Stderr, settings.Log)
	if err != nil {
		exitWith(err)
	}
	defer logging.Shutdown()

	opts := settings.Options()
	var reg *prometheus.Registry
	if *metricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, wxindex.WithMetrics(wxindex.NewMetrics(reg)))
	}

	// 計算
	req := request{
		mode:      *mode,
		input:     *input,
		daily:     *daily,
		startYear: *startYear,
		endYear:   *endYear,
		columns:   settings.Columns,
		opts:      opts,
	}

	buf := bytes.NewBuffer([]byte{})
	if err := run(req, buf); err != nil {
		exitWith(err)
	}

	// 保存
	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("saving %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), 0o644); err != nil {
			exitWith(err)
		}
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(*metricsFile, reg); err != nil {
			exitWith(err)
		}
	}

	logger.Infof("done")
}

func exitWith(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	logging.Shutdown()
	os.Exit(1)
}
