// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. A command-line flag:      --config=/path/to/config.yaml
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  3. Neither: environment variables and built-in defaults only.
//
// Every scalar can also be overridden by its ONBOARD_* environment
// variable. The parsed values are returned as a *Config pointer so the
// struct is shared by reference rather than copied everywhere.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aanand-mishra/onboard/internal/types"
	"github.com/aanand-mishra/onboard/internal/utils/validation"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "CONFIG_PATH"

// Config is the root configuration structure.
// Every field maps to a key in the YAML (or JSON) file AND can be
// overridden by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" json:"env" env:"ONBOARD_ENV" env-default:"dev" env-description:"dev, staging or prod" validate:"oneof=dev staging prod"`

	// Banner is the first line the session prints.
	Banner string `yaml:"banner" json:"banner" env:"ONBOARD_BANNER" env-default:"Hello from NERD Dev Onboarding!" env-description:"first line printed"`

	// DateLayout is a time.Format layout for the "Current date" line.
	DateLayout string `yaml:"date_layout" json:"date_layout" env:"ONBOARD_DATE_LAYOUT" env-default:"1/2/2006" env-description:"Go time layout of the current date line"`

	// ClientID replaces the identifier derived from the Go runtime.
	ClientID string `yaml:"client_id" json:"client_id" env:"ONBOARD_CLIENT_ID" env-description:"client identifier, derived from the Go runtime when empty"`

	// Format is the profile report rendering: "text" or "json".
	Format string `yaml:"format" json:"format" env:"ONBOARD_FORMAT" env-default:"text" env-description:"profile report format: text or json" validate:"oneof=text json"`

	Greet   Greet   `yaml:"greet" json:"greet"`
	Profile Profile `yaml:"profile" json:"profile"`
}

// Greet holds the greeter settings. Nested under greet: in the YAML file.
type Greet struct {
	Name string `yaml:"name" json:"name" env:"ONBOARD_GREET_NAME" env-description:"display name to welcome (Developer when no config file is used)"`
}

// Profile is the literal profile reported at startup.
// Attributes keep the order they are written in the file.
//
// The greet and profile fields carry no env-default: cleanenv would put
// the default back over an explicit zero from the file (age: 0, name: "").
// Their defaults come from Defaults and apply only without a config file.
type Profile struct {
	Name       string     `yaml:"name" json:"name" env:"ONBOARD_PROFILE_NAME" env-description:"profile name (Nerd when no config file is used)"`
	Age        int        `yaml:"age" json:"age" env:"ONBOARD_PROFILE_AGE" env-description:"profile age (30 when no config file is used)"`
	Attributes Attributes `yaml:"attributes" json:"attributes"`
}

// Build validates the configured profile and returns it.
func (p Profile) Build() (types.Profile, error) {
	return types.NewProfile(p.Name, p.Age, p.Attributes...)
}

var validate = validation.New()

// Defaults returns the built-in session used when no config file is given:
// the "Nerd" profile greeted as "Developer".
func Defaults() Config {
	return Config{
		Greet:   Greet{Name: "Developer"},
		Profile: Profile{Name: "Nerd", Age: 30},
	}
}

// Load reads, validates, and returns the application config.
//
// path wins over CONFIG_PATH. With neither set, only the environment,
// Defaults and the env-default values are used. A config file is taken
// literally: greet and profile values it sets, or leaves out, are not
// replaced by Defaults.
func Load(path string) (*Config, error) {
	// ── 1. Resolve the config path ───────────────────────────────────────
	if path == "" {
		path = os.Getenv(PathEnv)
	}

	var cfg Config

	// ── 2. Read file and/or environment ──────────────────────────────────
	if path == "" {
		// ReadEnv only overwrites fields whose variable is set, so the
		// defaults survive unless the environment says otherwise.
		cfg = Defaults()
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Verify the file exists before trying to read it, so the message
		// names the path rather than a cryptic "open: no such file".
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		// cleanenv.ReadConfig picks the parser from the file extension,
		// populates the struct, then applies env:"..." overrides and
		// env-default values.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	// ── 3. Normalise and validate ────────────────────────────────────────
	// "JSON" from a file must mean the same as --format=JSON.
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", validation.FromValidator(err))
	}

	return &cfg, nil
}

// Describe lists every environment variable Config understands.
func Describe() (string, error) {
	header := "Environment variables:"
	return cleanenv.GetDescription(&Config{}, &header)
}
