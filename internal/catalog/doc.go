// Package catalog supplies the seed activity catalog loaded at startup. A
// catalog comes from the built-in defaults, a YAML file, or a SQLite
// database; every source is validated against the activity invariants before
// it reaches the store.
package catalog
