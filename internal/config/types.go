package config

// Default values.
const (
	DefaultDriver        = "sqlite"
	DefaultStorageKey    = "tasks"
	DefaultDateLayout    = "02/01/2006"
	DefaultTimeLayout    = "15:04"
	DefaultTitle         = "My Tasks"
	DefaultLogLevel      = "warn"
	DefaultNoticeSeconds = 3
	DefaultDataDir       = "~/.daylist"
)

// Config holds the full configuration for daylist.
type Config struct {
	// Storage
	Driver     string `toml:"driver"` // sqlite, mysql, postgres
	DSN        string `toml:"dsn"`    // file path for sqlite
	StorageKey string `toml:"storage_key"`

	// Display
	DateLayout    string `toml:"date_layout"`
	TimeLayout    string `toml:"time_layout"`
	Title         string `toml:"title"`
	NoticeSeconds int    `toml:"notice_seconds"`

	// Analytics events file; empty means ~/.daylist/events.jsonl, "-" disables the collector.
	EventsFile string `toml:"events_file"`

	LogLevel string `toml:"log_level"`

	// Files that contributed to this config, in load order (computed).
	Files []string `toml:"-"`
}

// Overrides carries values set on the command line. Empty fields are unset.
type Overrides struct {
	ConfigFile string
	Driver     string
	DSN        string
	LogLevel   string
	// WorkDir is where project config files are looked up; "." if empty.
	WorkDir string
}

func setDefaults(cfg *Config) {
	cfg.Driver = DefaultDriver
	cfg.StorageKey = DefaultStorageKey
	cfg.DateLayout = DefaultDateLayout
	cfg.TimeLayout = DefaultTimeLayout
	cfg.Title = DefaultTitle
	cfg.NoticeSeconds = DefaultNoticeSeconds
	cfg.LogLevel = DefaultLogLevel
}
