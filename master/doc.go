// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package master builds, merges, and round-trips the canonical "master"
question set used as the long-lived comparison baseline.

The master is a YAML mapping from normalized question code to a compact,
hand-editable record:

	UnternehmenArt:
	  element_type: SingleChoice
	  section_name: Firmenprofil
	  texts:
	    de-ch: Art des Unternehmens
	  choices:
	    - code: "1"
	      texts:
	        de-ch: Startup

Extract produces one master from a parsed export; Merge folds per-export
masters oldest-to-newest so the newest export wins on colliding codes;
Save/Load round-trip the mapping losslessly, including manual edits made
to the file in between; ToQuestions reconstructs Question values for the
comparison pipeline.
*/
package master
