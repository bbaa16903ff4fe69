// Package config manages application configuration.
package config

// Config represents the application configuration.
type Config struct {
	DefaultProfile string             `yaml:"default_profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
	Match          MatchConfig        `yaml:"match"`
}

// Profile represents a render profile configuration.
type Profile struct {
	Format     string `yaml:"format"`
	AssetBase  string `yaml:"asset_base,omitempty"`
	SkipStyles bool   `yaml:"skip_styles"`
	MathMode   bool   `yaml:"math_mode"`
}

// MatchConfig contains excerpt matching options.
type MatchConfig struct {
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
	Normalize      bool    `yaml:"normalize"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile: "latex",
		Profiles: map[string]Profile{
			"latex": {
				Format: "latex",
			},
			"markdown": {
				Format:    "markdown",
				AssetBase: "${SCITOKENS_ASSET_BASE}",
			},
			"plain": {
				Format:     "copytext",
				SkipStyles: true,
			},
		},
		Match: MatchConfig{
			FuzzyThreshold: 0.7,
			Normalize:      true,
		},
	}
}

// GetProfile returns the profile configuration by name.
func (c *Config) GetProfile(name string) (*Profile, bool) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

// GetDefaultProfile returns the default profile configuration.
func (c *Config) GetDefaultProfile() (*Profile, bool) {
	return c.GetProfile(c.DefaultProfile)
}
