// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the survaudit command-line tool.

Survaudit ingests successive JSON exports of a multilingual survey
questionnaire, maintains a stable "master" reference set of questions, and
computes structured differences between exports so that questionnaire
evolution can be audited across localized text, answer choices, and matrix
sub-structures.

# Commands

Build or refresh the master baseline from all dated exports:

	survaudit master --exports-dir data/exports --master master/master.yaml

Compare every export against the master and write the report:

	survaudit report --output-dir docs

# Architecture

  - models: questionnaire data model, code normalization, diff types
  - parse: survey JSON export → Question lists, filename date handling
  - compare: text similarity, coded-item/question/survey differs
  - sections: canonical section-name taxonomy across sources
  - master: master baseline extract/merge/round-trip (YAML)
  - export: comparison payload assembly (JSON)
  - render: self-contained HTML report
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
