package config

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

const (
	defaultListen         = ":8000"
	defaultCacheTTL       = 10 * time.Minute
	defaultVerdictChannel = "recognizer.verdict"
)

// memcached reads larger expirations as unix timestamps.
const maxCacheTTL = 30 * 24 * time.Hour

type Config struct {
	Server    Server    `yaml:"server"`
	Log       Log       `yaml:"log"`
	Validator Validator `yaml:"validator"`
}

// Server holds listen and infrastructure settings.
// An empty address disables the component that needs it.
type Server struct {
	Listen         string `yaml:"listen"`
	PostgresDsn    string `yaml:"postgresDsn"`
	RedisAddr      string `yaml:"redisAddr"`
	RedisDB        int    `yaml:"redisDB"`
	MemcachedAddr  string `yaml:"memcachedAddr"`
	EnableTrace    bool   `yaml:"enableTrace"`
	TraceEndpoint  string `yaml:"traceEndpoint"`
	VerdictChannel string `yaml:"verdictChannel"`
}

type Log struct {
	Level string `yaml:"level"` // panic, fatal, error, warn, info, debug, trace
}

type Validator struct {
	StrictChecksum bool     `yaml:"strictChecksum"`
	CacheTTL       string   `yaml:"cacheTTL"`
	SampleNumbers  []string `yaml:"sampleNumbers"`

	// CacheTTLDuration is CacheTTL parsed by Load.
	CacheTTLDuration time.Duration `yaml:"-"`
}

// TTL parses CacheTTL, falling back to the default when unset.
func (v Validator) TTL() (time.Duration, error) {
	if v.CacheTTL == "" {
		return defaultCacheTTL, nil
	}
	ttl, err := time.ParseDuration(v.CacheTTL)
	if err != nil {
		return 0, errors.Wrap(err, "validator.cacheTTL")
	}
	if ttl < 0 {
		return 0, errors.Errorf("validator.cacheTTL: negative duration %s", v.CacheTTL)
	}
	if ttl > maxCacheTTL {
		return 0, errors.Errorf("validator.cacheTTL: %s exceeds %s", v.CacheTTL, maxCacheTTL)
	}
	return ttl, nil
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if config.Server.Listen == "" {
		config.Server.Listen = defaultListen
	}
	if config.Server.VerdictChannel == "" {
		config.Server.VerdictChannel = defaultVerdictChannel
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	config.Validator.CacheTTLDuration, err = config.Validator.TTL()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}
