package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis             Redis     `yaml:"redis"`
	SQLiteStoragePath string    `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./results.db"`
	Session           Session   `yaml:"session"`
	TicTacToe         TicTacToe `yaml:"tictactoe"`
	Snake             Snake     `yaml:"snake"`
	RandomSeed        int64     `yaml:"random-seed" env:"RANDOM_SEED" env-default:"0"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
}

type TicTacToe struct {
	BoardSize       int           `yaml:"board-size" env-default:"3"`
	BotDelay        time.Duration `yaml:"bot-delay" env-default:"500ms"`
	DefaultStrategy string        `yaml:"default-strategy" env-default:"random"`
	MinimaxDepth    int           `yaml:"minimax-depth" env-default:"0"`
}

type Snake struct {
	GridSize     int           `yaml:"grid-size" env-default:"20"`
	TickInterval time.Duration `yaml:"tick-interval" env-default:"150ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
