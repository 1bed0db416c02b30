package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jmapper/config"
	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/persistence"
)

func TestLoad_Defaults(t *testing.T) {
	v := config.New()
	v.Set(config.KeyCover, "cover.yaml")

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "cover.yaml", cfg.CoverPath)
	assert.Equal(t, []int{1}, cfg.MinIntersections)
	assert.Equal(t, 0.0, cfg.Alpha)
	assert.True(t, cfg.UseMin())
	assert.Equal(t, persistence.Sublevel, cfg.PersistenceOrder())
	assert.Equal(t, curvature.OllivierRicci{}, cfg.CurvatureFunc())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jmapper.yaml")
	doc := `cover: plants.yaml
min_intersection: [1, 2, 3]
alpha: 0.5
curvature: forman
use_max: true
order: superlevel
workers: 4
resilient: true
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, cfg.MinIntersections)
	assert.Equal(t, 0.5, cfg.Alpha)
	assert.Equal(t, curvature.Forman{}, cfg.CurvatureFunc())
	assert.False(t, cfg.UseMin())
	assert.Equal(t, persistence.Superlevel, cfg.PersistenceOrder())
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Resilient)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("JMAPPER_COVER", "env.yaml")
	t.Setenv("JMAPPER_ALPHA", "0.25")
	t.Setenv("JMAPPER_MIN_INTERSECTION", "2,4")
	t.Setenv("JMAPPER_LOG_LEVEL", "warn")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.CoverPath)
	assert.Equal(t, 0.25, cfg.Alpha)
	assert.Equal(t, []int{2, 4}, cfg.MinIntersections)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]func(cfg map[string]any){
		"missing cover":     func(m map[string]any) { delete(m, config.KeyCover) },
		"alpha one":         func(m map[string]any) { m[config.KeyAlpha] = 1.0 },
		"zero intersection": func(m map[string]any) { m[config.KeyMinIntersections] = []int{1, 0} },
		"unknown order":     func(m map[string]any) { m[config.KeyOrder] = "sideways" },
		"unknown level":     func(m map[string]any) { m[config.KeyLogLevel] = "loud" },
		"unknown strategy":  func(m map[string]any) { m[config.KeyCurvature] = "ricci-flow" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			values := map[string]any{config.KeyCover: "cover.yaml"}
			mutate(values)
			v := config.New()
			for k, val := range values {
				v.Set(k, val)
			}
			_, err := config.Load(v, "")
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := &config.Config{LogLevel: "debug", LogFormat: format}
		l, err := cfg.Logger()
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
	_, err := (&config.Config{LogLevel: "loud"}).Logger()
	assert.Error(t, err)
}
