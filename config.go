package astrokit

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

const (
	defaultSectorBaseSize = 1e12 // meters, level-0 cell side
	defaultHubbleConstant = 70.0 // km/s/Mpc
)

var (
	cfgOnce sync.Once
	config  _astroconfig
)

// _astroconfig is a "hidden" struct, just use `astroConfig`
type _astroconfig struct {
	SectorBaseSize float64
	HubbleConstant float64
}

// astroConfig returns the astrokit configuration. The configuration file is
// optional: with no ASTROKIT_CONFIG directory or no conf.toml in it, the
// defaults apply and no I/O happens on later calls. The config is published
// only once fully loaded, so concurrent first callers never observe a
// partially applied file.
func astroConfig() _astroconfig {
	cfgOnce.Do(loadConfig)
	return config
}

func loadConfig() {
	cfg := _astroconfig{SectorBaseSize: defaultSectorBaseSize, HubbleConstant: defaultHubbleConstant}
	if confPath := os.Getenv("ASTROKIT_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err == nil {
			if viper.IsSet("sector.base_size") {
				cfg.SectorBaseSize = viper.GetFloat64("sector.base_size")
			}
			if viper.IsSet("cosmology.hubble_constant") {
				cfg.HubbleConstant = viper.GetFloat64("cosmology.hubble_constant")
			}
		}
	}
	config = cfg
}
