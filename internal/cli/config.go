package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/types"
	"github.com/spf13/viper"
)

// SetDefaults mirrors the embedded default config so the daemon runs
// without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", 960)
	v.SetDefault("height", 480)
	v.SetDefault("steps", 12)
	v.SetDefault("pages", "~/Pictures")
	v.SetDefault("shuffle", false)
	v.SetDefault("scale_mode", string(types.ScalingModeStretch))
	v.SetDefault("before_url", "https://upload.wikimedia.org/wikipedia/commons/thumb/9/99/Unofficial_JavaScript_logo_2.svg/480px-Unofficial_JavaScript_logo_2.svg.png")
	v.SetDefault("after_url", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/1f/WebAssembly_Logo.svg/480px-WebAssembly_Logo.svg.png")
	v.SetDefault("fetch_timeout", 10)
	v.SetDefault("debug", false)
}

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidepager")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/slidepager")
		viper.AddConfigPath("/etc/xdg/slidepager")
	}

	SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("slidepager")
	viper.AutomaticEnv() // read environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			log.Fatalf("Error reading config: %v", err)
		}
		log.Debug("No config file found, using defaults")
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}

// ValidateConfig checks the settings the daemon cannot start without.
func ValidateConfig(v *viper.Viper) error {
	if v.GetInt("width") <= 0 || v.GetInt("height") <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", v.GetInt("width"), v.GetInt("height"))
	}
	if v.GetInt("steps") <= 0 {
		return fmt.Errorf("steps must be positive, got %d", v.GetInt("steps"))
	}
	switch types.ScalingMode(v.GetString("scale_mode")) {
	case types.ScalingModeCenter, types.ScalingModeStretch, types.ScalingModeFitHorizontal, types.ScalingModeFitVertical:
	default:
		return fmt.Errorf("unknown scale_mode %q", v.GetString("scale_mode"))
	}
	return nil
}
