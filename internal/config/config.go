package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	KeypairPath string `yaml:"keypair-path" env:"KEYPAIR_PATH"`
	Ledger      Ledger `yaml:"ledger"`
	Poll        Poll   `yaml:"poll"`
	Redis       Redis  `yaml:"redis"`
}

type Ledger struct {
	RPCEndpoint     string        `yaml:"rpc-endpoint" env:"LEDGER_RPC" env-default:"https://api.devnet.solana.com"`
	ProgramID       string        `yaml:"program-id" env:"LEDGER_PROGRAM_ID" env-default:"7Y8kCjUujms2w26ruzHUpayKQMtzJcnVPJzVuVWgBio1"`
	Commitment      string        `yaml:"commitment" env:"LEDGER_COMMITMENT" env-default:"confirmed"`
	ConfirmInterval time.Duration `yaml:"confirm-interval" env-default:"1s"`
	ConfirmTimeout  time.Duration `yaml:"confirm-timeout" env-default:"90s"`
}

// Poll configures the game session loop. A zero timeout polls until the game ends.
type Poll struct {
	Interval time.Duration `yaml:"interval" env:"POLL_INTERVAL" env-default:"2s"`
	Timeout  time.Duration `yaml:"timeout" env:"POLL_TIMEOUT" env-default:"0s"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
