package window

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/duration"
)

const (
	EntityWindow = "window"

	Incremental Type = "incremental"
	Custom      Type = "custom"
)

type Type string

// SimpleConfig describes a custom window: Size is how far back the window reaches from its end,
// Delay shifts the whole window back, TruncateTo aligns the end to a unit in Location.
type SimpleConfig struct {
	Size       string `json:"size" yaml:"size" mapstructure:"size"`
	Delay      string `json:"delay" yaml:"delay" mapstructure:"delay"`
	Location   string `json:"location" yaml:"location" mapstructure:"location"`
	TruncateTo string `json:"truncate_to" yaml:"truncate_to" mapstructure:"truncate_to"`
}

func (c SimpleConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Size, validation.Required, validation.By(validDuration)),
		validation.Field(&c.Delay, validation.By(validDuration)),
		validation.Field(&c.Location, validation.By(validLocation)),
		validation.Field(&c.TruncateTo, validation.In("", "None", "h", "d", "w", "M", "y")),
	)
}

func validDuration(value interface{}) error {
	s, _ := value.(string)
	return duration.Validate(s)
}

func validLocation(value interface{}) error {
	s, _ := value.(string)
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown location %q", s)
	}
	return nil
}

type Config struct {
	windowType Type

	simple SimpleConfig
}

func NewConfig(size, delay, location, truncateTo string) (Config, error) {
	simple := SimpleConfig{
		Size:       size,
		Delay:      delay,
		Location:   location,
		TruncateTo: truncateTo,
	}
	if err := simple.Validate(); err != nil {
		return Config{}, errors.InvalidArgument(EntityWindow, "invalid window config: "+err.Error())
	}

	return Config{
		windowType: Custom,
		simple:     simple,
	}, nil
}

func NewIncrementalConfig() Config {
	return Config{windowType: Incremental}
}

func (c Config) Type() Type {
	return c.windowType
}

func (c Config) GetSimpleConfig() SimpleConfig {
	return c.simple
}

func (c Config) String() string {
	if c.windowType == Incremental {
		return string(Incremental)
	}
	return fmt.Sprintf("%s(size=%s, delay=%s, truncate_to=%s, location=%s)",
		c.windowType, c.simple.Size, c.simple.Delay, c.simple.TruncateTo, c.simple.Location)
}
