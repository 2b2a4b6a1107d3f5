package config

import (
	"errors"
	"os"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ApplyEnvOverrides loads dotenvPath (".env" when empty) if it exists and then
// overwrites every field whose env variable is set. Variables already present
// in the process environment win over the dotenv file.
func ApplyEnvOverrides(cfg *GlobalConfig, dotenvPath string) error {
	if dotenvPath == "" {
		dotenvPath = ".env"
	}
	if err := godotenv.Load(dotenvPath); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return errorwrapper.NewError("load %s file: %w", dotenvPath, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return errorwrapper.NewError("parse environment overrides: %w", err)
	}
	return nil
}
