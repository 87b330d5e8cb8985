// Command gemcall reads a YAML call file describing one structured
// generation call, invokes the Gemini API, and prints the JSON result to
// stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skosovsky/gemcall"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		callPath string
		model    string
		apiKey   string
		timeout  time.Duration
		verbose  bool
	)
	flag.StringVar(&callPath, "call", "call.yaml", "Path to YAML call file (systemPrompt, userMessage, schema, ...)")
	flag.StringVar(&model, "model", "", "Override the model named in the call file")
	flag.StringVar(&apiKey, "key", os.Getenv(gemcall.EnvAPIKey), "Gemini API key")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "Overall call timeout")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(callPath, model, apiKey, timeout); err != nil {
		log.Fatal().Err(err).Msg("gemcall failed")
	}
}

func run(callPath, model, apiKey string, timeout time.Duration) error {
	cf, err := loadCallFile(callPath)
	if err != nil {
		return err
	}
	req := cf.toRequest(model, apiKey)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := gemcall.NewClient(gemcall.WithLogger(log.Logger))
	value, err := client.Invoke(ctx, req)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
