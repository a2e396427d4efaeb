// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export assembles the comparison results into the structured
payload consumed by the rendering layer.

The payload has three parts:

  - meta: source identifiers and short display names, the reference
    source, the sorted union of language codes, the ordered section
    grouping (with alias annotations), the distinct normalized-code
    count, and worst-status summary counts
  - questions: per source, per normalized code, the full question
    projection (flattened matrix rows/columns or choices)
  - diffs: per directed pair key ("<A> → <B>"), per normalized code, the
    full diff including nested per-language text diffs

Save writes the payload as indented JSON. Output is deterministic: map
keys serialize sorted and every list is built in a defined order.
*/
package export
