package commands

import (
	"github.com/vburojevic/pocket-cli/internal/models"
	"github.com/vburojevic/pocket-cli/internal/output"
)

func ConfigGet(store ConfigStore, key string, f *output.Formatter) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	v, err := cfg.Get(key)
	if err != nil {
		return err
	}
	return f.Write(models.ConfigValue{Key: key, Value: v})
}

// ConfigSet stores value under key. An empty value clears the key.
func ConfigSet(store ConfigStore, key, value string, f *output.Formatter) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := store.Save(cfg); err != nil {
		return err
	}
	return f.Write(models.ConfigValue{Key: key, Value: value})
}

func ConfigView(store ConfigStore, f *output.Formatter) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	return f.Write(models.Settings{ConsumerKey: cfg.ConsumerKey, AccessToken: cfg.AccessToken})
}
