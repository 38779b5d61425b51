// Package analyze loads a canonical record from an annotated Go struct.
//
// It uses golang.org/x/tools/go/packages to load the target package, then
// reads derivation directives from doc comments:
//
//	//variantgen:variants PersonSummary NewPerson
//	//variantgen:attr_for(PersonSummary, "easyjson:json")
//	type Person struct {
//	        Name string
//	        // variantgen: only_in_self, default
//	        Age uint8
//	}
//
// The result is the same schema.Record the YAML front end produces, so
// everything downstream is shared. This front end supports zero-value
// defaults only; declared fallback expressions need the YAML schema.
package analyze
