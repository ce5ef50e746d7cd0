package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/raywall/users-quick-service/pkg/config"
)

func TestConfigure_Level(t *testing.T) {
	Configure(config.LoggingConf{Level: "debug", Format: "json", Enabled: true})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	// nível inválido cai para info
	Configure(config.LoggingConf{Level: "loud", Format: "json", Enabled: true})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestConfigure_DisabledProducesNoOutput(t *testing.T) {
	logger := Configure(config.LoggingConf{Level: "info", Enabled: false})

	// não deve panicar nem escrever em stdout
	logger.Info().Str("k", "v").Msg("discarded")
}
