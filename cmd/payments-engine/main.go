// Command payments-engine reads an ordered CSV stream of transactions,
// applies it to an in-memory ledger, and writes the final account snapshots
// as CSV on stdout. Logs go to stderr so the two streams never mix.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	uncommonslog "github.com/LerianStudio/lib-uncommons/v2/uncommons/log"
	uncommonszap "github.com/LerianStudio/lib-uncommons/v2/uncommons/zap"

	"github.com/LerianStudio/payments-engine/csv"
	"github.com/LerianStudio/payments-engine/engine"
)

// Config holds the shell's runtime settings.
type Config struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"logLevel"`
}

func defaultConfig() Config {
	return Config{Environment: "local"}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("payments-engine: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("payments-engine", flag.ContinueOnError)
	configPath := flags.String("config", "", "optional YAML config file")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return errors.New("usage: payments-engine [-config file] <transactions.csv>")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, err := uncommonszap.New(uncommonszap.Config{
		Environment:     uncommonszap.Environment(cfg.Environment),
		Level:           cfg.LogLevel,
		OTelLibraryName: "github.com/LerianStudio/payments-engine",
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	ctx := context.Background()
	defer func() { _ = logger.Sync(ctx) }()

	runLogger := logger.With(uncommonslog.String("run_id", uuid.NewString()))

	in, err := os.Open(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	ledger := engine.New(runLogger)
	reader := csv.NewReader(in)

	for {
		tx, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("decode input: %w", err)
		}

		ledger.Apply(ctx, tx)
	}

	if err := csv.NewWriter(out).WriteAll(ledger.Snapshots()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
