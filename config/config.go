// Package config holds the explicit configuration of a jmapper run. Values
// are layered by viper (defaults, config file, JMAPPER_* environment, bound
// flags) and checked with validator struct tags. Library packages never read
// configuration themselves; the CLI turns a Config into options.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/persistence"
)

// ErrInvalid is returned when a loaded Config fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. JMAPPER_ALPHA.
const EnvPrefix = "JMAPPER"

// Keys of the viper namespace.
const (
	KeyCover            = "cover"
	KeyOutputDir        = "output_dir"
	KeyForce            = "force"
	KeyMinIntersections = "min_intersection"
	KeyAlpha            = "alpha"
	KeyCurvature        = "curvature"
	KeyUseMax           = "use_max"
	KeyOrder            = "order"
	KeyWorkers          = "workers"
	KeyResilient        = "resilient"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

// Config is the full set of run parameters.
type Config struct {
	CoverPath string `validate:"required"`
	OutputDir string `validate:"required"`
	Force     bool

	MinIntersections []int   `validate:"required,min=1,dive,gte=1"`
	Alpha            float64 `validate:"gte=0,lt=1"`
	Curvature        string  `validate:"oneof=ollivier-ricci forman"`
	UseMax           bool
	Order            string `validate:"oneof=sublevel superlevel"`
	Workers          int    `validate:"gte=0"`
	Resilient        bool

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`
}

var validate = validator.New()

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyOutputDir, "outputs/curvature")
	v.SetDefault(KeyMinIntersections, []int{1})
	v.SetDefault(KeyAlpha, 0.0)
	v.SetDefault(KeyCurvature, "ollivier-ricci")
	v.SetDefault(KeyOrder, persistence.Sublevel.String())
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if non-empty) into v and decodes a validated Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		CoverPath:        v.GetString(KeyCover),
		OutputDir:        v.GetString(KeyOutputDir),
		Force:            v.GetBool(KeyForce),
		MinIntersections: intSlice(v, KeyMinIntersections),
		Alpha:            v.GetFloat64(KeyAlpha),
		Curvature:        v.GetString(KeyCurvature),
		UseMax:           v.GetBool(KeyUseMax),
		Order:            v.GetString(KeyOrder),
		Workers:          v.GetInt(KeyWorkers),
		Resilient:        v.GetBool(KeyResilient),
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// intSlice reads key as []int, accepting "1,2,3" strings from the environment.
func intSlice(v *viper.Viper, key string) []int {
	if out := v.GetIntSlice(key); len(out) > 0 {
		return out
	}
	var out []int
	for _, f := range strings.FieldsFunc(v.GetString(key), func(r rune) bool { return r == ',' || r == ' ' }) {
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		out = append(out, k)
	}

	return out
}

// Validate checks cfg against its struct tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "gte", "lt":
		return fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// PersistenceOrder maps Order to persistence.Order.
func (c *Config) PersistenceOrder() persistence.Order {
	o, err := persistence.ParseOrder(c.Order)
	if err != nil {
		return persistence.Sublevel
	}

	return o
}

// CurvatureFunc returns the strategy named by Curvature.
func (c *Config) CurvatureFunc() curvature.Func {
	if c.Curvature == "forman" {
		return curvature.Forman{}
	}

	return curvature.OllivierRicci{Alpha: c.Alpha}
}

// UseMin reports whether vertices take the minimum of incident edge values.
func (c *Config) UseMin() bool { return !c.UseMax }

// Logger builds the process logger: JSON output uses zap's production
// preset, console output the development preset. Level overrides both.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	var zc zap.Config
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}
