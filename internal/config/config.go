package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile      string        `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	FrameRate    int           `yaml:"frame-rate" env:"FRAME_RATE" env-default:"60"`
	RestartDelay time.Duration `yaml:"restart-delay" env:"RESTART_DELAY" env-default:"1s"`
	Replay       Replay        `yaml:"replay"`
}

// Replay - headless mode: plays Moves and writes one PNG per move into Dir.
// Disabled while Dir is empty.
type Replay struct {
	Dir       string        `yaml:"dir" env:"REPLAY_DIR"`
	Size      int           `yaml:"size" env:"REPLAY_SIZE" env-default:"400"`
	First     string        `yaml:"first" env:"REPLAY_FIRST" env-default:"X"`
	Moves     []int         `yaml:"moves" env:"REPLAY_MOVES" env-separator:","`
	FrameStep time.Duration `yaml:"frame-step" env:"REPLAY_FRAME_STEP" env-default:"16ms"`
}

// MustLoad - load all configurations in config.yml file, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

// FrameInterval - time between animation frames, 60 fps when unset.
func (that *Config) FrameInterval() time.Duration {
	if that.FrameRate <= 0 {
		return time.Second / 60
	}

	return time.Second / time.Duration(that.FrameRate)
}

func (that *Replay) Enabled() bool {
	return that.Dir != ""
}
