package cli

import (
	"github.com/henderiw/rangelist/pkg/rangelist"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is read from .rangelist.yaml, RANGELIST_* environment variables
// and command line flags, in increasing order of precedence.
type Config struct {
	Debug bool `mapstructure:"debug"`
	Trace bool `mapstructure:"trace"`
	// Initial seeds the list before any operation runs, e.g. ["1-5", "[10, 20)"].
	Initial []string `mapstructure:"initial"`
}

func LoadConfig(cfgFile string, cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".rangelist")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("RANGELIST")
	v.AutomaticEnv()
	v.SetDefault("debug", false)
	v.SetDefault("trace", false)
	v.SetDefault("initial", []string{})

	flags := cmd.Root().PersistentFlags()
	for _, key := range []string{"debug", "trace"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "cannot read config")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "cannot decode config")
	}
	return &config, nil
}

// InitialList builds the list seeded with the configured ranges.
func (c *Config) InitialList() (*rangelist.RangeList, error) {
	l := rangelist.New()
	for _, s := range c.Initial {
		r, err := rangelist.ParseRange(s)
		if err != nil {
			return nil, errors.Wrap(err, "initial")
		}
		if err := l.Add(r); err != nil {
			return nil, errors.Wrap(err, "initial")
		}
	}
	return l, nil
}
