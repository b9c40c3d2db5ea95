// Package config binds command line flags, environment variables and config
// files to the options of the isea commands.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables of all commands.
const EnvPrefix = "ISEA"

// SubCommand pairs a command with the configuration its flags are bound to.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// Bind creates the configuration of s from the flags of its command and the
// persistent flags of the root. Flag values take precedence over the
// environment, which takes precedence over a config file.
func (s *SubCommand) Bind(persistent *pflag.FlagSet) error {
	s.Conf = viper.New()
	if err := s.Conf.BindPFlags(s.Cmd.Flags()); err != nil {
		return errors.Wrapf(err, "binding flags of %s", s.Cmd.Name())
	}
	if err := s.Conf.BindPFlags(persistent); err != nil {
		return errors.Wrapf(err, "binding persistent flags of %s", s.Cmd.Name())
	}
	if s.EnvPrefix == "" {
		s.EnvPrefix = EnvPrefix
	}
	s.Conf.SetEnvPrefix(s.EnvPrefix)
	s.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.Conf.AutomaticEnv()
	return nil
}

// ReadConfigFile merges the config file at path into the configuration.
func (s *SubCommand) ReadConfigFile(path string) error {
	s.Conf.SetConfigFile(path)
	return errors.Wrapf(s.Conf.ReadInConfig(), "reading config %s", path)
}
