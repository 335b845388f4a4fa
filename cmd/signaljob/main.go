package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/alejandrodnm/signaljob/internal/adapters/notify"
	"github.com/alejandrodnm/signaljob/internal/adapters/report"
	"github.com/alejandrodnm/signaljob/internal/job"
	"github.com/alejandrodnm/signaljob/internal/logging"
)

func main() {
	inputPath := flag.String("input", "", "path to input CSV file")
	configPath := flag.String("config", "", "path to configuration document")
	outputPath := flag.String("output", "", "path to write JSON report")
	logPath := flag.String("log-file", "", "path to append log lines")
	flag.Parse()

	if *inputPath == "" || *configPath == "" || *outputPath == "" || *logPath == "" {
		fmt.Fprintln(os.Stderr, "signaljob: --input, --config, --output and --log-file are required")
		flag.Usage()
		os.Exit(2)
	}

	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	logger, err := logging.NewFileLogger(*logPath, os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "signaljob: open log file: %v\n", err)
		os.Exit(1)
	}

	runner := job.New(logger.Logger, notify.NewConsole(), report.NewWriter())
	code := runner.Run(context.Background(), job.Options{
		ConfigPath: *configPath,
		InputPath:  *inputPath,
		OutputPath: *outputPath,
	})

	logger.Close()
	os.Exit(code)
}
