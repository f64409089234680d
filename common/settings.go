package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cardgen-ai/cardgen/logger"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	LanguageRussian = "ru-RU"
)

// DefaultModels is the model used for each provider when none is configured
var DefaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
}

// DefaultModel returns the model for provider, or "" to let the client pick
func DefaultModel(provider string) string {
	return DefaultModels[provider]
}

// SettingsFileNames are looked up in the working directory first, then in subdirectories
var SettingsFileNames = []string{"cardgen.yml", "cardgen.yaml"}

type Server struct {
	Addr      string  `yaml:"addr"`
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
	Tracing   bool    `yaml:"tracing"`
}

type LLM struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

type Settings struct {
	Language string `yaml:"language"`
	Tone     string `yaml:"tone_instructions"`
	// Endpoint overrides the hosted generation URL used by the generate command
	Endpoint string `yaml:"endpoint"`
	Server   Server `yaml:"server"`
	LLM      LLM    `yaml:"llm"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Language: LanguageRussian,
		Server: Server{
			Addr:      ":8080",
			RateLimit: 2,
			Burst:     5,
		},
		LLM: LLM{
			Provider:    ProviderOpenAI,
			Model:       DefaultModel(ProviderOpenAI),
			MaxTokens:   800,
			Temperature: 0.8,
		},
	}
}

// WithYamlFile returns the defaults overlaid with the first settings file found
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	filePath := findSettingsFile(".")
	if filePath == "" {
		logger.Infof("No settings file found in the current directory or subdirectories. Using default settings.")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Failed to read settings file %s: %v", filePath, err)
		return settings
	}
	// A file that names a provider but no model gets that provider's default
	settings.LLM.Model = ""
	if err := yaml.Unmarshal(data, &settings); err != nil {
		logger.Warnf("Failed to parse YAML file %s: %v", filePath, err)
		return WithDefaultSettings()
	}
	if settings.LLM.Model == "" {
		settings.LLM.Model = DefaultModel(settings.LLM.Provider)
	}

	logger.Infof("Using settings from YAML file: %s", filePath)
	return settings
}

// LoadEnv reads a .env file into the process environment when one is present
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No .env file found, using environment variables")
			return
		}
		logger.Warnf("Failed to load .env file: %v", err)
	}
}

func findSettingsFile(root string) string {
	for _, name := range SettingsFileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	var found string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		for _, name := range SettingsFileNames {
			if d.Name() == name {
				found = path
				return fs.SkipAll
			}
		}
		return nil
	})
	return found
}
