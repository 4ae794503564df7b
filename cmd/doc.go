// Package cmd implements the command-line interface for classmate.
//
// This package provides the following commands:
//   - menu: Run the interactive Classroom menu (default)
//   - auth: Re-run the Google authorization flow
//   - version: Display version information
package cmd
