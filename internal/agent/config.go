package agent

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the agent's configuration. Everything has a usable default;
// a YAML file overrides selectively.
type Config struct {
	// SystemPrefixes marks modules as system by path prefix. System
	// code is not instrumented and bypasses the reference codec.
	SystemPrefixes []string `yaml:"system_prefixes"`

	// SystemClassPrefixes skips binding interception for methods whose
	// declaring class matches, e.g. "java/lang".
	SystemClassPrefixes []string `yaml:"system_class_prefixes"`

	// InstrumentAll synthesizes trampolines even for system bindings.
	InstrumentAll bool `yaml:"instrument_all"`

	// RegisterNatives also synthesizes trampolines for natives
	// registered dynamically through RegisterNatives.
	RegisterNatives bool `yaml:"register_natives"`

	// Passthrough lists JNI slot names left pointing at the VM's
	// original implementation.
	Passthrough []string `yaml:"passthrough"`

	// RefMask is the XOR mask of the default reference codec, as a hex
	// string. "0" disables the transform.
	RefMask string `yaml:"ref_mask"`

	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`
}

// DefaultConfig mirrors the hard-coded lists of the pre-configuration
// drafts.
func DefaultConfig() Config {
	return Config{
		SystemPrefixes: []string{
			"/system/",
			"/apex/",
			"/vendor/",
			"/usr/lib",
		},
		SystemClassPrefixes: []string{
			"java/lang",
			"java/util",
			"dalvik/system",
		},
		RefMask: "0",
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Mask parses RefMask into the codec mask value.
func (c *Config) Mask() (uint64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(c.RefMask), "0x")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("ref_mask %q: %w", c.RefMask, err)
	}
	return v, nil
}

// IsSystemClass reports whether a class descriptor (e.g.
// "Ljava/lang/String;") matches the system-class prefix list.
func (c *Config) IsSystemClass(desc string) bool {
	name := strings.TrimSuffix(strings.TrimPrefix(desc, "L"), ";")
	for _, p := range c.SystemClassPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
