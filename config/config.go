package config

const (
	EmptyPath            = ""
	DefaultFilename      = "chronoset.yaml"
	DefaultFileExtension = "yaml"
	EnvPrefix            = "CHRONOSET"
)

var (
	BuildVersion = "dev"
	BuildCommit  = ""
)

type Version int

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (l LogLevel) String() string {
	return string(l)
}

type LogConfig struct {
	Level LogLevel `default:"INFO" mapstructure:"level"`
}

type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputYAML  OutputFormat = "yaml"
	OutputJSON  OutputFormat = "json"
)
