package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ClientConfig struct {
	Version  Version       `default:"1"   mapstructure:"version"`
	Log      LogConfig     `mapstructure:"log"`
	Location string        `default:"UTC" mapstructure:"location"` // IANA location daily windows are read in
	Output   OutputConfig  `mapstructure:"output"`
	Overlap  OverlapConfig `mapstructure:"overlap"`
}

type OutputConfig struct {
	Format OutputFormat `default:"table" mapstructure:"format"`
}

type OverlapConfig struct {
	Minimum int `default:"2" mapstructure:"minimum"` // sets that must cover a stretch for it to count as shared
}

func (c *ClientConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Version, validation.Min(Version(1))),
		validation.Field(&c.Location, validation.By(func(value interface{}) error {
			_, err := c.LoadLocation()
			return err
		})),
		validation.Field(&c.Log, validation.By(func(interface{}) error {
			return validation.Validate(c.Log.Level,
				validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError))
		})),
		validation.Field(&c.Output, validation.By(func(interface{}) error {
			return validation.Validate(c.Output.Format, validation.In(OutputTable, OutputYAML, OutputJSON))
		})),
		validation.Field(&c.Overlap, validation.By(func(interface{}) error {
			return validation.Validate(c.Overlap.Minimum, validation.Min(1))
		})),
	)
}

func (c *ClientConfig) LoadLocation() (*time.Location, error) {
	return time.LoadLocation(c.Location)
}
