// Package config provides configuration loading, merging, and validation
// facilities for the crrd server.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Zero fields are then filled from the Default* constants and the result is
// validated. The main entry point is [GetStructuredConfig].
package config
