// Package levelconfig loads and validates the YAML configuration that
// drives a crawl: map dimensions, the master seed, and which reference
// graph generator to run.
package levelconfig
