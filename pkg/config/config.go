package config

import (
	"github.com/raywall/users-quick-service/envloader"
)

// ServiceConfig concentra toda a configuração do serviço. Os valores são
// carregados do ambiente uma única vez no startup e injetados nos
// construtores; nenhum estado global mutável depois disso.
type ServiceConfig struct {
	Table   TableConf
	Logging LoggingConf
	Metrics MetricsConf
}

// TableConf define a tabela DynamoDB dos usuários.
type TableConf struct {
	Name string `env:"USERS_TABLE" envDefault:"Users" validate:"required"`
}

// LoggingConf controla o logger zerolog global.
type LoggingConf struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
	Enabled bool   `env:"LOG_ENABLED" envDefault:"true"`
}

// MetricsConf controla o envio de métricas via statsd.
type MetricsConf struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	Addr    string `env:"STATSD_ADDR" envDefault:"127.0.0.1:8125"`
}

// Load carrega a configuração do ambiente e valida o resultado.
func Load() (*ServiceConfig, error) {
	var cfg ServiceConfig
	if err := envloader.Load(&cfg); err != nil {
		return nil, err
	}
	if err := NewValidator().Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
