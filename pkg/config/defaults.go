package config

// Default values for configuration fields.
const (
	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// Render defaults
	DefaultRenderStyle     = "tab"
	DefaultRenderSeparator = " => "

	// Sample defaults
	DefaultSampleRootName     = "root"
	DefaultSampleChildren     = 4
	DefaultSampleFirstBranch  = 4
	DefaultSampleSecondBranch = 2
	DefaultSampleChainLength  = 2

	// Metrics defaults
	DefaultMetricsNamespace = "nodeclass"
	DefaultMetricsSubsystem = "nodes"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "nodeclass.yaml"

// ApplyDefaults fills every zero-valued field of cfg with its default.
// Zero counts in the sample section are treated as unset.
func ApplyDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	// Render defaults
	if cfg.Render.Style == "" {
		cfg.Render.Style = DefaultRenderStyle
	}
	if cfg.Render.Separator == "" {
		cfg.Render.Separator = DefaultRenderSeparator
	}

	// Sample defaults
	if cfg.Sample.RootName == "" {
		cfg.Sample.RootName = DefaultSampleRootName
	}
	if cfg.Sample.Children == 0 {
		cfg.Sample.Children = DefaultSampleChildren
	}
	if cfg.Sample.FirstBranch == 0 {
		cfg.Sample.FirstBranch = DefaultSampleFirstBranch
	}
	if cfg.Sample.SecondBranch == 0 {
		cfg.Sample.SecondBranch = DefaultSampleSecondBranch
	}
	if cfg.Sample.ChainLength == 0 {
		cfg.Sample.ChainLength = DefaultSampleChainLength
	}

	// Metrics defaults
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
