// Package registry resolves template identifiers to their asset location and
// placeholder schema.
//
// A registry is loaded once and never mutated afterwards, so a single
// *Registry may be shared by any number of concurrent pipeline runs.
//
// # Registry files
//
// Registries are described in YAML:
//
//	templates:
//	  - id: basic
//	    name: Basic flyer
//	    asset: embed://basic.html
//	    placeholders:
//	      - key: title
//	        selector: "{{title}}"
//
// Placeholders are kept in file order; that order is the merge order.
//
// # Built-in templates
//
// [Default] returns a registry with the "basic" template whose asset is
// compiled into the binary. Its files are exposed through [Assets] so a loader
// can serve "embed://" locations without network or disk access.
package registry
