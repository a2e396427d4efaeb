package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/survaudit/cliparse"
	"github.com/danielhkuo/survaudit/compare"
	"github.com/danielhkuo/survaudit/export"
	"github.com/danielhkuo/survaudit/master"
	"github.com/danielhkuo/survaudit/models"
	"github.com/danielhkuo/survaudit/parse"
	"github.com/danielhkuo/survaudit/render"
	"github.com/danielhkuo/survaudit/sections"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := os.Args[1]

	cfg, err := cliparse.ParseFlags(command, os.Args[2:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting run", "run_id", uuid.NewString(), "command", command)

	switch command {
	case "master":
		err = runMaster(cfg)
	case "report":
		err = runReport(cfg)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("Run failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: survaudit <master|report> [flags]")
	fmt.Fprintln(os.Stderr, "  master  merge all dated exports into the master YAML")
	fmt.Fprintln(os.Stderr, "  report  compare every export against the master and write data.json + index.html")
}

// listExports returns the export files in the configured directory, oldest
// first by filename date.
func listExports(cfg cliparse.Config) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(cfg.ExportsDir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no JSON exports found in %s", cfg.ExportsDir)
	}
	return parse.SortFilesByDate(files), nil
}

// runMaster merges all exports, oldest to newest, into the master YAML.
func runMaster(cfg cliparse.Config) error {
	files, err := listExports(cfg)
	if err != nil {
		return err
	}

	var masters []master.Master
	for _, file := range files {
		questions, err := parse.LoadAndParse(file)
		if err != nil {
			return err
		}
		masters = append(masters, master.Extract(questions))
		slog.Info("Parsed export", "file", filepath.Base(file),
			"date", parse.ExtractDate(filepath.Base(file)), "questions", len(questions))
	}

	merged := master.Merge(masters...)
	slog.Info("Merged master", "codes", len(merged))

	if err := master.Save(merged, cfg.MasterPath); err != nil {
		return err
	}
	slog.Info("Master written", "path", cfg.MasterPath)
	return nil
}

// runReport compares each export against the master and writes the
// data.json payload plus the HTML report.
func runReport(cfg cliparse.Config) error {
	m, err := master.Load(cfg.MasterPath)
	if err != nil {
		return fmt.Errorf("%w (run the master command first)", err)
	}
	masterQuestions := master.ToQuestions(m)
	slog.Info("Loaded master", "questions", len(masterQuestions))

	files, err := listExports(cfg)
	if err != nil {
		return err
	}

	sources := []sections.Source{{Name: "master", Questions: masterQuestions}}
	var results []models.ComparisonResult
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		questions, err := parse.LoadAndParse(file)
		if err != nil {
			return err
		}
		sources = append(sources, sections.Source{Name: name, Questions: questions})

		result := compare.CompareSurveys(masterQuestions, questions, "master", name, cfg.Threshold)
		results = append(results, result)
		slog.Info("Compared against master", "source", name,
			"matched", len(result.Matched()), "added", len(result.Added()), "removed", len(result.Removed()))
	}

	aliases, err := sections.LoadAliases(cfg.AliasFile)
	if err != nil {
		return err
	}
	norm := sections.Build(sources, "master", aliases)

	data := export.Build(results, sources, norm, "master")
	dataPath := filepath.Join(cfg.OutputDir, "data.json")
	if err := export.Save(data, dataPath); err != nil {
		return err
	}
	slog.Info("Data written", "path", dataPath)

	html, err := render.Report(data, cfg.Language)
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(cfg.OutputDir, "index.html")
	if err := render.Save(html, htmlPath); err != nil {
		return err
	}
	slog.Info("Report written", "path", htmlPath)
	return nil
}
