// Package schema defines the canonical record model and its YAML front end.
//
// A Record is the single source of truth for a variant family: a name, an
// ordered field list, raw record-level annotations, and the list of extra
// variant names to derive. Field and record annotations are carried as raw
// directive strings; package rule parses them.
//
// # Schema Overview
//
// The schema file has the following structure:
//
//	version: "1"
//	record: Person
//	package: person
//	variants: [PersonSummary, NewPerson]
//	attrs:
//	  - attr_for(PersonSummary, "easyjson:json")
//	fields:
//	  - name: name
//	    type: string
//	  - name: age
//	    type: uint8
//	    annotations: [only_in_self, default]
//	  - name: created_at
//	    type: time.Time
//	    import: time
//	    annotations: [not_in(NewPerson)]
//	    default_expr: time.Now()
package schema
