package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/survaudit/compare"
)

type Config struct {
	ExportsDir string
	MasterPath string
	OutputDir  string
	AliasFile  string
	Threshold  float64
	Language   string
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(name string, args []string) (Config, error) {
	// Optional .env for local runs; a missing file is fine.
	_ = godotenv.Load()

	var cfg Config
	var threshold string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&cfg.ExportsDir, "exports-dir", "", "Directory containing JSON exports")
	fs.StringVar(&cfg.MasterPath, "master", "", "Path to the master YAML file")
	fs.StringVar(&cfg.OutputDir, "output-dir", "", "Output directory for data.json and index.html")
	fs.StringVar(&cfg.AliasFile, "aliases", "", "Section alias YAML file (optional)")
	fs.StringVar(&threshold, "threshold", "", "Similarity threshold in (0,1]")
	fs.StringVar(&cfg.Language, "language", "", "Default display language")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables, then defaults
	if cfg.ExportsDir == "" {
		cfg.ExportsDir = os.Getenv("EXPORTS_DIR")
	}
	if cfg.ExportsDir == "" {
		cfg.ExportsDir = "data/exports"
	}

	if cfg.MasterPath == "" {
		cfg.MasterPath = os.Getenv("MASTER_PATH")
	}
	if cfg.MasterPath == "" {
		cfg.MasterPath = "master/master.yaml"
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = os.Getenv("OUTPUT_DIR")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "docs"
	}

	if cfg.AliasFile == "" {
		cfg.AliasFile = os.Getenv("SECTION_ALIASES")
	}
	if cfg.AliasFile == "" {
		cfg.AliasFile = "config/section_aliases.yaml"
	}

	if threshold == "" {
		threshold = os.Getenv("SIMILARITY_THRESHOLD")
	}
	if threshold == "" {
		cfg.Threshold = compare.DefaultThreshold
	} else {
		v, err := strconv.ParseFloat(threshold, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid threshold %q: %w", threshold, err)
		}
		cfg.Threshold = v
	}
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		return Config{}, errors.New("threshold must be in (0,1]")
	}

	if cfg.Language == "" {
		cfg.Language = os.Getenv("REPORT_LANGUAGE")
	}
	if cfg.Language == "" {
		cfg.Language = "de-CH"
	}

	return cfg, nil
}
