// Package settings declares the environment variables recognized by
// the generator and their defaults.
package settings

import (
	"github.com/apex/log"
	"github.com/spf13/viper"
)

const (
	LOG_LEVEL = "LOG_LEVEL"

	KEA_CTRL_URL             = "KEA_CTRL_URL"
	KEA_CTRL_TIMEOUT_SECONDS = "KEA_CTRL_TIMEOUT_SECONDS"
	KEA_CTRL_TLS_CA_FILE     = "KEA_CTRL_TLS_CA_FILE"
	KEA_CTRL_TLS_CERT_FILE   = "KEA_CTRL_TLS_CERT_FILE"
	KEA_CTRL_TLS_KEY_FILE    = "KEA_CTRL_TLS_KEY_FILE"
	KEA_CTRL_TLS_INSECURE    = "KEA_CTRL_TLS_INSECURE"
	KEA_CTRL_TLS_SERVER_NAME = "KEA_CTRL_TLS_SERVER_NAME"
)

// Init sets the defaults and wires environment variables into viper
func Init() {
	viper.SetDefault(LOG_LEVEL, "info")
	viper.SetDefault(KEA_CTRL_TIMEOUT_SECONDS, 10)

	// Read environment variables automatically
	viper.AutomaticEnv()

	printEnvironmentSettings()
}

func printEnvironmentSettings() {
	settings := []string{
		LOG_LEVEL,
		KEA_CTRL_URL,
		KEA_CTRL_TIMEOUT_SECONDS,
		KEA_CTRL_TLS_CA_FILE,
		KEA_CTRL_TLS_CERT_FILE,
		KEA_CTRL_TLS_KEY_FILE,
		KEA_CTRL_TLS_INSECURE,
		KEA_CTRL_TLS_SERVER_NAME,
	}

	for _, s := range settings {
		if viper.Get(s) != nil {
			log.Debugf("%s=%s", s, viper.GetString(s))
		}
	}
}
