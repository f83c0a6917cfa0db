package config

// Config is the root configuration structure for nodeclass.
type Config struct {
	// Logging controls the structured logger used by the CLI.
	Logging LoggingConfig `yaml:"logging"`

	// Render selects how trees are printed.
	Render RenderConfig `yaml:"render"`

	// Sample sizes the demonstration tree and chain.
	Sample SampleConfig `yaml:"sample"`

	// Metrics controls the Prometheus node event counters.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains configuration for structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Format is the log output format: "json", "text" or "console".
	// Default: "text"
	Format string `yaml:"format" validate:"oneof=json text console"`

	// AddSource adds the source file and line to every log entry.
	AddSource bool `yaml:"add_source"`
}

// RenderConfig contains configuration for printing trees.
type RenderConfig struct {
	// Style is "tab" for the tab-indented ReprTree output or "box" for
	// box-drawing characters.
	// Default: "tab"
	Style string `yaml:"style" validate:"oneof=tab box"`

	// Separator joins node representations when printing a path.
	// Default: " => "
	Separator string `yaml:"separator" validate:"required"`
}

// SampleConfig sizes the demonstration structures built by the CLI.
type SampleConfig struct {
	// RootName is the name of the sample tree root.
	// Default: "root"
	RootName string `yaml:"root_name" validate:"required"`

	// Children is the number of unnamed children added to the root.
	// Default: 3
	Children int `yaml:"children" validate:"gte=0,lte=1000"`

	// FirstBranch is the number of children added to the first child.
	// Default: 2
	FirstBranch int `yaml:"first_branch" validate:"gte=0,lte=1000"`

	// SecondBranch is the number of children added to the second child.
	// Default: 3
	SecondBranch int `yaml:"second_branch" validate:"gte=0,lte=1000"`

	// ChainLength is the number of unnamed links placed on each side of
	// the "middle" node of the sample chain.
	// Default: 2
	ChainLength int `yaml:"chain_length" validate:"gte=0,lte=1000"`
}

// MetricsConfig contains configuration for Prometheus metrics.
type MetricsConfig struct {
	// Enabled turns on node event counting.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "nodeclass"
	Namespace string `yaml:"namespace" validate:"omitempty,metric_name"`

	// Subsystem is the second metric name segment.
	// Default: "nodes"
	Subsystem string `yaml:"subsystem" validate:"omitempty,metric_name"`
}
