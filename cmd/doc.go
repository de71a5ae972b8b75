// Package cmd provides the command-line interface for rt.
//
// There is a single root command. Flag parsing is handed to the options
// package, and the command then does exactly one of the following, in this
// order of precedence:
//
//   - --version: print "v<version>"
//   - --help [option]: print the full help, or the entry of one option
//   - --listTargetVersion: print the supported target versions
//   - files: convert every file in input order and report the problems
//
// With no files and no action flag the help is printed.
//
// # Exit Codes
//
//   - 0: success, nothing reported
//   - 1: the options could not be parsed
//   - N: N problems were reported, capped at 125
//
// # Configuration Integration
//
// Options respect configuration from multiple sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (RT_*)
//  3. Configuration file (--config, RT_CONFIG_FILE or .rtrc.yml)
//  4. Default values (lowest priority)
//
// # Watch Mode
//
// With --watch the process stays up after the first report and converts
// changed inputs again, reporting each batch on its own, until interrupted.
package cmd
