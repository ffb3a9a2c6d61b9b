// Package config defines the format-agnostic mission model for the
// application, along with the Loader interface for reading it from a
// concrete source.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete implementations of Loader, such as for HCL, are provided in
// separate packages.
package config
