// Package internal contains the core implementation packages for rt.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - options: flag table, camelCase normalisation, viper layering and help
//   - config: the immutable per-invocation Configuration and its validation
//   - targets: the embedded table of supported target versions
//   - dispatch: extension to conversion mode and output path
//   - build: external compiler, file converter and the per-file failure boundary
//   - services: the sequential batch over the positional files
//   - errors: diagnostic records, the append-only ErrorContext and compiler
//     output parsing
//   - report: stylish and json rendering, exit code
//   - watcher: debounced file watching for --watch
//   - logging: structured logging on log/slog
//   - validation: argument checks before anything reaches exec
//   - version: build version for --version
//
// # Flow
//
// One invocation resolves options once, then converts each file in input
// order. Every failure is recorded with the file it belongs to and the batch
// moves on; the records are rendered together at the end.
package internal
