package shared

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const CONFIG_PREFIX = "DAYSTAR"

type AppConfig struct {
	PgUsername             string `split_words:"true" default:"postgres"`
	PgPassword             string `split_words:"true" default:"postgres"`
	PgContactPoint         string `split_words:"true" default:"127.0.0.1"`
	PgContactPort          string `split_words:"true" default:"5432"`
	PgDbName               string `split_words:"true" default:"daystar"`
	SqlMigrationsSourceDir string `split_words:"true" default:"sql"`

	JwtSecret            string `split_words:"true" default:"change-me"`
	TokenValidityInHours int    `split_words:"true" default:"24"`

	ListenAddress    string `split_words:"true" default:"0.0.0.0:5000"`
	StartupMigration bool   `split_words:"true" default:"false"`
}

func InitAppConfiguration() (config *AppConfig, err error) {
	config = &AppConfig{}

	if err := envconfig.Process(CONFIG_PREFIX, config); err != nil {
		return nil, fmt.Errorf("failed to parse env vars: %v", err)
	}

	return
}
