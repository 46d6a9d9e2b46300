// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("datapath", "data/")
	viper.SetDefault("uploadpath", "uploads/")
	viper.SetDefault("maxuploadmb", 64)

	viper.SetDefault("webserver.host", "")
	viper.SetDefault("webserver.port", "5000")

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.path", "wellatlas.log")
	viper.SetDefault("log.maxsize", 10)
	viper.SetDefault("log.maxage", 30)
}
