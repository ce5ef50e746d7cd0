package envloader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Addr string `env:"NESTED_ADDR" envDefault:"localhost:8125"`
}

type sample struct {
	Name    string `env:"SAMPLE_NAME" envDefault:"fallback"`
	Port    int    `env:"SAMPLE_PORT" envDefault:"8080"`
	Enabled bool   `env:"SAMPLE_ENABLED" envDefault:"false"`
	Ignored string
	Nested  nested
}

func TestLoad_Defaults(t *testing.T) {
	var cfg sample
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.Ignored)
	assert.Equal(t, "localhost:8125", cfg.Nested.Addr)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "from-env")
	t.Setenv("SAMPLE_PORT", "9090")
	t.Setenv("SAMPLE_ENABLED", "TRUE")
	t.Setenv("NESTED_ADDR", "statsd:8125")

	var cfg sample
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "statsd:8125", cfg.Nested.Addr)
}

func TestLoad_EmptyEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "")

	var cfg sample
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
}

func TestLoad_InvalidInt(t *testing.T) {
	t.Setenv("SAMPLE_PORT", "not-a-number")

	var cfg sample
	err := Load(&cfg)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Port", fieldErr.FieldName)
	assert.Equal(t, "SAMPLE_PORT", fieldErr.EnvVar)
	assert.Equal(t, "not-a-number", fieldErr.Value)
}

func TestLoad_NotAPointer(t *testing.T) {
	var cfg sample
	err := Load(cfg)
	require.Error(t, err)

	var invalidErr *InvalidConfigError
	assert.True(t, errors.As(err, &invalidErr))
}

func TestLoad_UnsupportedFieldType(t *testing.T) {
	type bad struct {
		Ratio float64 `env:"BAD_RATIO" envDefault:"1.5"`
	}

	var cfg bad
	err := Load(&cfg)
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	assert.True(t, errors.As(err, &unsupported))
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Setenv("SAMPLE_PORT", "boom")

	var cfg sample
	assert.Panics(t, func() { MustLoad(&cfg) })
}
