/*
Package checklist runs declarative verification checklists.

# Overview

A checklist is a named list of checks loaded from YAML or JSON. Each
check names a left operand, an optional comparator alias, and an
optional right operand. The engine captures and evaluates every check
through the verify package, so outcomes carry the same decomposed
rendering that in-code captures produce.

# Checklist Files

Load a checklist from YAML or JSON:

	name: smoke
	checks:
	  - source: replicas >= 1
	    left: 3
	    comparator: ">="
	    right: 1
	  - left: ready
	    comparator: eq
	    right: true

	list, err := checklist.FromFile("smoke.yaml")
	if err != nil {
	    log.Fatal(err)
	}

Comparator aliases are case-insensitive. The built-in aliases are
"==", "eq", "equal", "!=", "ne", "not-equal", "<=", "le", ">=", "ge",
"<", "lt", ">", "gt". RegisterAlias adds custom spellings.

A check without a comparator evaluates the truthiness of its left
operand. A check with negate: true records the inverted result.

# Running

Run a checklist with an engine:

	engine := checklist.NewEngine(
	    checklist.WithJournal(store),
	    checklist.WithLogger(logger),
	)

	summary, err := engine.Run(ctx, list)
	if err != nil {
	    log.Fatal(err)
	}
	for _, outcome := range summary.Outcomes {
	    fmt.Println(outcome.Source, "=>", outcome.Rendered)
	}

Checks are evaluated independently: a failed or errored check never
stops the run. Run itself fails only for an invalid list or a
cancelled context.

# Thread Safety

Engine is safe for concurrent use. Checklist and Item are plain data
and safe to share once loaded.
*/
package checklist
