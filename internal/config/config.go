package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrUnknownKey = errors.New("unknown config key")

const (
	KeyConsumerKey = "consumer_key"
	KeyAccessToken = "access_token"
)

type Config struct {
	ConsumerKey string `toml:"consumer_key,omitempty" json:"consumer_key,omitempty" yaml:"consumer_key,omitempty"`
	AccessToken string `toml:"access_token,omitempty" json:"access_token,omitempty" yaml:"access_token,omitempty"`
}

// fields maps each settable key to its storage.
func (c *Config) fields() map[string]*string {
	return map[string]*string{
		KeyConsumerKey: &c.ConsumerKey,
		KeyAccessToken: &c.AccessToken,
	}
}

func Keys() []string {
	keys := make([]string, 0, 2)
	for k := range (&Config{}).fields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) Get(key string) (string, error) {
	p, ok := c.fields()[key]
	if !ok {
		return "", unknownKey(key)
	}
	return *p, nil
}

// Set stores value under key; an empty value clears it.
func (c *Config) Set(key, value string) error {
	p, ok := c.fields()[key]
	if !ok {
		return unknownKey(key)
	}
	*p = value
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
}

func Load(path string) (*Config, error) {
	c := &Config{}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return c, nil
	}
	if _, err := toml.Decode(string(b), c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Save(path string) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return err
	}
	// Windows can't replace existing files via rename.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(path)
		if err2 := os.Rename(tmp, path); err2 != nil {
			_ = os.Remove(tmp)
			return err2
		}
	}
	return nil
}

// FileStore reads and writes the config at a fixed path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (*Config, error) { return Load(s.path) }

func (s *FileStore) Save(c *Config) error { return c.Save(s.path) }
