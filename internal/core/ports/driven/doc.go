// Package driven defines the interfaces that core services call OUT to
// infrastructure: loading survey files, loading configuration, and
// fetching translation artifacts from remote sources.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters under
// internal/adapters/driven implement them.
//
// Import rules: this package may import domain only, never an adapter.
package driven
