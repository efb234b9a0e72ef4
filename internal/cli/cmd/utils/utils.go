package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager"
	"github.com/tidwall/pretty"
)

// CanonicalPath expands a leading ~ to $HOME.
func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" {
		return os.Getenv("HOME")
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(os.Getenv("HOME"), path[2:])
	}

	return path
}

func PrintJSONColored(data any) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}

	log.Info(string(pretty.Color(j, nil)))
}

// ConfigPath is where InstallDefaultConfig writes.
func ConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "slidepager", "slidepager.toml")
}

// InstallDefaultConfig writes the embedded default config unless a config
// file already exists. It returns the path written or found.
func InstallDefaultConfig() (string, error) {
	configPath := ConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		log.Warnf("Config file already exists at %v", configPath)
		return configPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(configPath, []byte(slidepager.DefaultConfig), 0644); err != nil {
		return "", err
	}

	log.Infof("Installed default config file at %v", configPath)
	return configPath, nil
}
