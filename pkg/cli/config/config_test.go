package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/labchain/anamnesis/pkg/cli/config"
	"github.com/labchain/anamnesis/pkg/service/index"
	"github.com/labchain/anamnesis/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[search]
default_limit = 10
overfetch_factor = 3
embedding_dimension = 256
`)

	cfg, err := config.LoadAppConfiguration(path)
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.Search.DefaultLimit).Equal(10)
	gt.Value(t, cfg.Search.OverfetchFactor).Equal(3)
	gt.Value(t, cfg.Search.EmbeddingDimension).Equal(256)
}

func TestLoadAppConfiguration_NegativeValue(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[search]
default_limit = -1
`)

	_, err := config.LoadAppConfiguration(path)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
}

func TestLoadAppConfiguration_MalformedTOML(t *testing.T) {
	path := writeTempFile(t, "config.toml", "[search\ndefault_limit = 10")

	_, err := config.LoadAppConfiguration(path)
	gt.Error(t, err)
}

func TestLoadAppConfiguration_MissingFile(t *testing.T) {
	_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "absent.toml"))
	gt.Error(t, err)
}

func TestAppConfig_ConfigureDefaults(t *testing.T) {
	cfg := config.NewAppConfigForTest("")
	gt.NoError(t, cfg.Configure()).Required()

	gt.Value(t, cfg.Search.DefaultLimit).Equal(usecase.DefaultSimilarLimit)
	gt.Value(t, cfg.Search.OverfetchFactor).Equal(usecase.DefaultOverfetchFactor)
	gt.Value(t, cfg.Search.EmbeddingDimension).Equal(index.DefaultEmbeddingDimension)
}

func TestAppConfig_ConfigureFillsPartialFile(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[search]
default_limit = 7
`)

	cfg := config.NewAppConfigForTest(path)
	gt.NoError(t, cfg.Configure()).Required()

	gt.Value(t, cfg.Search.DefaultLimit).Equal(7)
	gt.Value(t, cfg.Search.OverfetchFactor).Equal(usecase.DefaultOverfetchFactor)
	gt.Value(t, cfg.Search.EmbeddingDimension).Equal(index.DefaultEmbeddingDimension)
}
