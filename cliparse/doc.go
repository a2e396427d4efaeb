// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags("report", os.Args[2:])

# Config Fields

  - ExportsDir: directory of survey JSON exports (default: data/exports)
  - MasterPath: master YAML path (default: master/master.yaml)
  - OutputDir: output directory for data.json / index.html (default: docs)
  - AliasFile: section alias YAML (default: config/section_aliases.yaml)
  - Threshold: similarity threshold in (0,1] (default: 0.9)
  - Language: default report display language (default: de-CH)

# CLI Flags

	--exports-dir  Exports directory
	--master       Master YAML path
	--output-dir   Output directory
	--aliases      Section alias file
	--threshold    Similarity threshold
	--language     Display language

# Environment Variables

Flags fall back to environment variables, loaded from an optional .env
file first:

	EXPORTS_DIR          → --exports-dir
	MASTER_PATH          → --master
	OUTPUT_DIR           → --output-dir
	SECTION_ALIASES      → --aliases
	SIMILARITY_THRESHOLD → --threshold
	REPORT_LANGUAGE      → --language

CLI flags take precedence over environment variables; every setting has a
working default, so all flags are optional.
*/
package cliparse
