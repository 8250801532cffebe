package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcsv/internal/config"
	"github.com/katalvlaran/gridcsv/stream"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "float64", cfg.Element)
	assert.Len(t, cfg.CSV.ReaderOptions(), 3)
	assert.Len(t, cfg.CSV.WriterOptions(), 2)
	assert.Empty(t, cfg.CSV.ArrayOptions())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty delimiter", func(c *config.Config) { c.CSV.Delimiter = "" }},
		{"long quote", func(c *config.Config) { c.CSV.Quote = "''" }},
		{"newline delimiter", func(c *config.Config) { c.CSV.Delimiter = "\n" }},
		{"same delimiter and quote", func(c *config.Config) { c.CSV.Quote = "," }},
		{"unknown element", func(c *config.Config) { c.Element = "complex128" }},
		{"negative limit", func(c *config.Config) { c.MaxBytes = -1 }},
		{"bad level", func(c *config.Config) { c.Log.Level = "chatty" }},
		{"bad encoding", func(c *config.Config) { c.Log.Encoding = "xml" }},
		{"unknown compression", func(c *config.Config) { c.Compression = "brotli" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridcsv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
csv:
  delimiter: ";"
  skip_header: true
element: int32
max_bytes: 1024
`), 0o600))
	t.Setenv("GRIDCSV_ELEMENT", "uint8")
	t.Setenv("GRIDCSV_CSV_TRIM_SPACE", "true")

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, `"`, cfg.CSV.Quote, "unset keys keep defaults")
	assert.True(t, cfg.CSV.SkipHeader)
	assert.True(t, cfg.CSV.TrimSpace)
	assert.Equal(t, "uint8", cfg.Element, "environment wins over the file")
	assert.EqualValues(t, 1024, cfg.MaxBytes)
	assert.Len(t, cfg.CSV.ArrayOptions(), 2)
}

func TestLoadErrors(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := config.Load(v)
	assert.Error(t, err)

	t.Setenv("GRIDCSV_CSV_DELIMITER", "ab")
	_, err = config.Load(viper.New())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := config.Default()
	cfg.CSV.Delimiter = "\t"
	cfg.CSV.CRLF = true
	cfg.Metrics = true
	cfg.Compression = "zstd"
	require.NoError(t, config.Save(path, cfg))

	v := viper.New()
	v.SetConfigFile(path)
	got, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Len(t, got.CSV.WriterOptions(), 3)
	assert.Len(t, got.OutputOptions(), 1)
}

func TestCompression(t *testing.T) {
	cfg := config.Default()
	assert.Empty(t, cfg.OutputOptions(), "the output extension decides by default")

	t.Setenv("GRIDCSV_COMPRESSION", "GZIP")
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "GZIP", cfg.Compression)
	assert.Len(t, cfg.OutputOptions(), 1)

	t.Setenv("GRIDCSV_COMPRESSION", "rar")
	_, err = config.Load(viper.New())
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, stream.ErrUnknownCompression)
}
