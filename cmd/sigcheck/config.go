package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/snehendu098/mxverify/pkg/log"
)

const (
	configDirPathEnv     = "SIGCHECK_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Config describes one verification request.
type Config struct {
	Address   string `env:"SIGCHECK_ADDRESS" env-required:"true"`
	Signature string `env:"SIGCHECK_SIGNATURE"` // hex; overrides the transaction's own signature
	Message   string `env:"SIGCHECK_MESSAGE"`
	TxFile    string `env:"SIGCHECK_TX_FILE"` // plain JSON transaction object
	Log       log.Config
}

// LoadConfig reads the optional .env file and then the environment.
// Variables already set in the environment win over the .env file.
func LoadConfig() (*Config, error) {
	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	dotEnvPath := filepath.Join(configDirPath, ".env")
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, err
		}
	}

	var conf Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, err
	}

	if (conf.Message == "") == (conf.TxFile == "") {
		return nil, errors.New("exactly one of SIGCHECK_MESSAGE and SIGCHECK_TX_FILE must be set")
	}
	if conf.Message != "" && conf.Signature == "" {
		return nil, errors.New("SIGCHECK_SIGNATURE is required to verify a message")
	}
	return &conf, nil
}
