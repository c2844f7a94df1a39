package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/circles/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "CIRCLE"

	cfgKeyPrecision = "precision"
	cfgKeyRound     = "round"
	cfgKeyJSON      = "json"
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Precision *int `yaml:"precision,omitempty"`
	Round     bool `yaml:"round"`
	JSON      bool `yaml:"json"`
}

const defaultConfigHeader = `# circle CLI configuration
#
# precision: decimal places kept in pi (0-15); omit to use full precision.
# round:     round the last kept digit instead of truncating.
# json:      print results as JSON.
`

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error. CIRCLE_PRECISION, CIRCLE_ROUND and CIRCLE_JSON override the file.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyRound, false)
	v.SetDefault(cfgKeyJSON, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyPrecision, cfgKeyRound, cfgKeyJSON} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(configDir string) (bool, error) {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(defaultConfigHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// configValue returns the raw value stored under key. Values that arrive as
// text (environment variables, quoted YAML) are converted when they parse as
// a number or boolean; otherwise the text is returned unchanged so that the
// circle package rejects it with a type mismatch.
func configValue(v *viper.Viper, key string) any {
	raw := v.Get(key)
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	if b, err := strconv.ParseBool(s); err == nil && (key == cfgKeyRound || key == cfgKeyJSON) {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && key == cfgKeyPrecision {
		return f
	}
	return s
}
