// Package model defines the data structures shared by the sshbatch layers.
package model

// Path represents a file system path.
type Path string

// OutputFormat selects how resolutions are rendered.
type OutputFormat string

const (
	// FormatTable renders a human readable table.
	FormatTable OutputFormat = "table"
	// FormatYAML renders machine readable YAML.
	FormatYAML OutputFormat = "yaml"
)
