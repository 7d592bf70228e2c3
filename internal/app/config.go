package app

// BookFilename is the recipe book name searched for in the project tree.
const BookFilename = "traymake.hcl"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Target is the recipe to run. Empty means "list recipes".
	Target string

	// BookPath is an explicit recipe book path. When empty, the book is
	// discovered by walking up from ProjectRoot, falling back to the
	// embedded builtin book.
	BookPath string

	// ProjectRoot is the working directory for every action. When empty it
	// defaults to the directory containing the discovered book, or the
	// current directory for the builtin book.
	ProjectRoot string

	// DryRun prints the resolved actions instead of executing them.
	DryRun bool

	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults and returns a validated configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return &cfg, nil
}
