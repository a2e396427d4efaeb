// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render turns the export payload into a self-contained HTML
comparison report.

The report lists every section in reference order with each question's
code, display text (in the configured language, falling back to any
available one), and one status badge per comparison pair. The template is
embedded in the binary, so the generated file has no external assets.
*/
package render
