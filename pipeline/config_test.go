package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/norman/pipeline"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	assert.Equal(t, 6, cfg.Indent)
	assert.Equal(t, "amr-missing", cfg.MissingConcept)
	assert.False(t, cfg.CanonicalRoles)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "norman.yaml", `canonical_roles: true
reify: builtin
collapse: tables/co.tsv
indent: -1
prefix: r
keep_comments: true
`)
	cfg, err := pipeline.LoadConfig(path)
	require.NoError(t, err)

	want := pipeline.DefaultConfig()
	want.CanonicalRoles = true
	want.Reify = pipeline.BuiltinTable
	want.Collapse = "tables/co.tsv"
	want.Indent = -1
	want.Prefix = "r"
	want.KeepComments = true
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := pipeline.LoadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := pipeline.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = pipeline.LoadConfig(writeFile(t, "typo.yaml", "indnt: 3\n"))
	assert.Error(t, err)

	_, err = pipeline.LoadConfig(writeFile(t, "bad.yaml", "indent: -4\n"))
	assert.True(t, errors.Is(err, pipeline.ErrInvalidConfig))
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*pipeline.Config)
		ok   bool
	}{
		{"defaults", func(*pipeline.Config) {}, true},
		{"compact", func(c *pipeline.Config) { c.Indent = -1 }, true},
		{"indent too low", func(c *pipeline.Config) { c.Indent = -2 }, false},
		{"prefix with space", func(c *pipeline.Config) { c.Prefix = "a b" }, false},
		{"prefix with slash", func(c *pipeline.Config) { c.Prefix = "a/" }, false},
		{"missing concept with paren", func(c *pipeline.Config) { c.MissingConcept = "x)" }, false},
		{"no missing concept", func(c *pipeline.Config) { c.MissingConcept = "" }, true},
		{"conceptualize", func(c *pipeline.Config) { c.Conceptualize = true }, true},
		{
			"conceptualize without missing concept",
			func(c *pipeline.Config) { c.Conceptualize, c.MissingConcept = true, "" },
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := pipeline.DefaultConfig()
			tc.mod(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
		})
	}
}
