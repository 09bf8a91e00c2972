package cmd

import (
	"kumoov/pkg/config"
	"kumoov/pkg/store"
	"kumoov/pkg/tui"
)

// openStore loads the configuration and opens the schedule database it points to.
func openStore() (*config.AppConfig, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	st, err := tui.OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}
