// Package config provides configuration loading, merging, and validation
// facilities for the founder directory client and its development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (and a .env file)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] for the sync client and
// [GetServerConfig] for the development server.
package config
