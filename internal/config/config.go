package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/noctalia-dev/plugin-registry/internal/branding"
)

const fileType = "yaml"

// Keys understood in the config file and bound to flags.
const (
	KeyRoot      = "root"
	KeyOutput    = "output"
	KeyExclude   = "exclude"
	KeyCheck     = "check"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"root":       KeyRoot,
	"output":     KeyOutput,
	"exclude":    KeyExclude,
	"check":      KeyCheck,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
}

// Config holds the resolved settings for one invocation.
type Config struct {
	Root      string   // absolute plugin root
	Output    string   // absolute registry file path
	Exclude   []string // extra directory name globs
	Check     bool
	LogLevel  string
	LogFormat string
	File      string // config file that was read, empty if none
}

// New returns a viper instance with defaults applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyExclude, []string{})
	return v
}

// BindFlags binds every known flag present in flags to its config key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// FilePath returns the default config file location for a plugin root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Load resolves the configuration. The root falls back to the current
// working directory. configFile, when set, must exist; otherwise the
// default file in the root is read if present. A relative output path is
// resolved against the root.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	root := v.GetString(KeyRoot)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	file, err := readConfigFile(v, root, configFile)
	if err != nil {
		return nil, err
	}

	output := v.GetString(KeyOutput)
	if output == "" {
		output = branding.RegistryFile()
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	return &Config{
		Root:      root,
		Output:    output,
		Exclude:   v.GetStringSlice(KeyExclude),
		Check:     v.GetBool(KeyCheck),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		File:      file,
	}, nil
}

// readConfigFile merges the config file into v and returns its path, or ""
// when the implicit default file does not exist.
func readConfigFile(v *viper.Viper, root, explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = FilePath(root)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading config file %s: %w", path, err)
	}
	return path, nil
}
