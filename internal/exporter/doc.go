// Package exporter writes the CSV report artifacts consumed by the CI
// workflow. Files are written with a UTF-8 BOM so Excel opens them
// cleanly, and are truncated on every run.
package exporter
