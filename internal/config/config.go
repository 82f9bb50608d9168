package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Typing struct {
	MinDelayMs int `yaml:"min_delay_ms,omitempty"`
	MaxDelayMs int `yaml:"max_delay_ms,omitempty"`
}

type Config struct {
	Theme        string   `yaml:"theme"`
	TabWidth     int      `yaml:"tabwidth,omitempty"`
	Typing       Typing   `yaml:"typing,omitempty"`
	StartPauseMs int      `yaml:"start_pause_ms,omitempty"`
	ActionGapMs  int      `yaml:"action_gap_ms,omitempty"`
	SidebarWidth int      `yaml:"sidebar_width,omitempty"`
	Blacklist    []string `yaml:"blacklist,omitempty"`
}

// Default blacklist hides version control and build output in the sidebar.
var DefaultBlacklist = []string{".git", "target"}

func Default() Config {
	return Config{
		Theme:        "demoplay",
		TabWidth:     4,
		Typing:       Typing{MinDelayMs: 35, MaxDelayMs: 85},
		StartPauseMs: 1000,
		ActionGapMs:  50,
		SidebarWidth: 24,
		Blacklist:    append([]string{}, DefaultBlacklist...),
	}
}

// GetConfig reads DEMOPLAY_CONF (or demoplay.yaml) over the defaults.
// A missing or broken file yields the defaults.
func GetConfig() Config {
	conffilename, exists := os.LookupEnv("DEMOPLAY_CONF")
	if !exists {
		conffilename = "demoplay.yaml"
	}

	data, err := os.ReadFile(conffilename)
	if err != nil {
		return Default()
	}

	config, err := Parse(data)
	if err != nil {
		return Default()
	}
	return config
}

// Parse overrides the defaults with every field set in data.
func Parse(data []byte) (Config, error) {
	config := Default()

	var yamlConfig Config
	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return config, err
	}

	if yamlConfig.Theme != "" {
		config.Theme = yamlConfig.Theme
	}
	if yamlConfig.TabWidth > 0 {
		config.TabWidth = yamlConfig.TabWidth
	}
	if yamlConfig.Typing.MinDelayMs > 0 {
		config.Typing.MinDelayMs = yamlConfig.Typing.MinDelayMs
	}
	if yamlConfig.Typing.MaxDelayMs > 0 {
		config.Typing.MaxDelayMs = yamlConfig.Typing.MaxDelayMs
	}
	if config.Typing.MaxDelayMs < config.Typing.MinDelayMs {
		config.Typing.MaxDelayMs = config.Typing.MinDelayMs
	}
	if yamlConfig.StartPauseMs > 0 {
		config.StartPauseMs = yamlConfig.StartPauseMs
	}
	if yamlConfig.ActionGapMs > 0 {
		config.ActionGapMs = yamlConfig.ActionGapMs
	}
	if yamlConfig.SidebarWidth > 0 {
		config.SidebarWidth = yamlConfig.SidebarWidth
	}
	// extra entries, the defaults always stay hidden
	config.Blacklist = append(config.Blacklist, yamlConfig.Blacklist...)

	return config, nil
}

func (c Config) TypingDelay() (min, max time.Duration) {
	return time.Duration(c.Typing.MinDelayMs) * time.Millisecond, time.Duration(c.Typing.MaxDelayMs) * time.Millisecond
}

func (c Config) StartPause() time.Duration {
	return time.Duration(c.StartPauseMs) * time.Millisecond
}

func (c Config) ActionGap() time.Duration {
	return time.Duration(c.ActionGapMs) * time.Millisecond
}
