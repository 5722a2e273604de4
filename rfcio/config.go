package rfcio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rainflow/rfc"
)

// Config is the YAML-facing mirror of the arguments rfc.New and its
// functional options take, for hosts that keep counter configuration in
// a file rather than Go literals.
type Config struct {
	ClassCount  int     `yaml:"class_count"`
	ClassWidth  float64 `yaml:"class_width"`
	ClassOffset float64 `yaml:"class_offset"`
	Hysteresis  float64 `yaml:"hysteresis"`

	CountingMethod string `yaml:"counting_method,omitempty"` // "4ptm" (default) or "hcm"

	Woehler *WoehlerConfig `yaml:"woehler,omitempty"`
}

// WoehlerConfig mirrors rfc.WoehlerCurve for YAML decoding.
type WoehlerConfig struct {
	SD       float64 `yaml:"sd"`
	ND       float64 `yaml:"nd"`
	K        float64 `yaml:"k"`
	K2       float64 `yaml:"k2,omitempty"`
	Omission float64 `yaml:"omission,omitempty"`
}

// Decode parses a YAML document into a Config. It does not validate the
// result against rfc.New's argument rules; call NewContext for that.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("rfcio: Decode: %w", err)
	}
	if cfg.ClassCount == 0 {
		return Config{}, ErrEmptyConfig
	}
	return cfg, nil
}

// options translates Config into the rfc.Option list NewContext passes
// to rfc.New, beyond the positional class/hysteresis arguments.
func (cfg Config) options() []rfc.Option {
	var opts []rfc.Option

	if cfg.CountingMethod == "hcm" {
		opts = append(opts, rfc.WithCountingMethod(rfc.CountingHCM))
	}

	if cfg.Woehler != nil {
		w := rfc.WoehlerCurve{
			SD:       cfg.Woehler.SD,
			ND:       cfg.Woehler.ND,
			K:        cfg.Woehler.K,
			K2:       cfg.Woehler.K2,
			Omission: cfg.Woehler.Omission,
		}
		if w.K2 == 0 {
			w.K2 = w.K
		}
		opts = append(opts, rfc.WithWoehler(w))
	}

	return opts
}

// NewContext builds an rfc.Context from a decoded Config, appending any
// extra opts after the ones Config itself translates (so a caller's opts
// win on conflict, since rfc.New applies them in order).
func NewContext(cfg Config, opts ...rfc.Option) (*rfc.Context, error) {
	all := append(cfg.options(), opts...)
	c, err := rfc.New(cfg.ClassCount, cfg.ClassWidth, cfg.ClassOffset, cfg.Hysteresis, all...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return c, nil
}

// LoadContext decodes a YAML document from r and builds an rfc.Context
// from it in one step.
func LoadContext(r io.Reader, opts ...rfc.Option) (*rfc.Context, error) {
	cfg, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return NewContext(cfg, opts...)
}
