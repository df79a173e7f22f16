// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// The central value is [Environment]: the immutable set of deployment-specific
// values (API base URL, deployment mode and identity-provider identifiers)
// that every binary reads at startup. It is built once in main and passed
// explicitly to the components that need it.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Deployment-target preset (development or production)
//
// The main entry points are [GetServerConfig] for the API server and
// [GetClientConfig] for the terminal client.
package config
