package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/twsort/internal/extract"
	"github.com/grindlemire/twsort/internal/order"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)
	require.False(t, cfg.AllowDuplicates)
	require.Empty(t, cfg.CustomRegex)
	require.Empty(t, cfg.OrderFile)
	require.Empty(t, cfg.SortOrder)
	require.Empty(t, cfg.IgnoredFiles)
	require.Zero(t, cfg.Workers)
	require.False(t, cfg.WarnUnknown)

	s, err := cfg.Sorter()
	require.NoError(t, err)
	require.Same(t, order.Default(), s.Table)
	require.Same(t, extract.Default(), s.Extractor)
	require.False(t, s.AllowDuplicates)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "twsort.yaml", `
allow_duplicates: true
workers: 3
ignored_files:
  - dist/
  - "*.min.js"
sort_order:
  - flex
  - p-*
`)

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	require.True(t, cfg.AllowDuplicates)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, []string{"dist/", "*.min.js"}, cfg.IgnoredFiles)

	table, err := cfg.Table()
	require.NoError(t, err)
	require.Equal(t, []string{"flex", "p-*"}, table.Patterns())
}

func TestReadFileMissing(t *testing.T) {
	t.Run("explicit path must exist", func(t *testing.T) {
		err := ReadFile(New(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("default file is optional", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, ReadFile(New(), ""))
	})

	t.Run("default file is read when present", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, DefaultFile, "warn_unknown: true\n")
		t.Chdir(dir)

		v := New()
		require.NoError(t, ReadFile(v, ""))
		cfg, err := Load(v)
		require.NoError(t, err)
		require.True(t, cfg.WarnUnknown)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TWSORT_WORKERS", "7")
	t.Setenv("TWSORT_ALLOW_DUPLICATES", "true")
	t.Setenv("TWSORT_IGNORED_FILES", "a.html,b.html")

	cfg, err := Load(New())
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Workers)
	require.True(t, cfg.AllowDuplicates)
	require.Equal(t, []string{"a.html", "b.html"}, cfg.IgnoredFiles)
}

func TestBindFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "twsort.yaml", "workers: 2\ncustom_regex: 'x'\n")

	fs := pflag.NewFlagSet("twsort", pflag.ContinueOnError)
	fs.Int("workers", 0, "")
	fs.String("custom-regex", "", "")
	fs.Bool("allow-duplicates", false, "")
	require.NoError(t, fs.Parse([]string{"--workers", "5", "--custom-regex", `tw\("([^"]*)"\)`}))

	v := New()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Workers, "flag should override file")
	require.Equal(t, `tw\("([^"]*)"\)`, cfg.CustomRegex)
	require.False(t, cfg.AllowDuplicates, "unset flag keeps default")
}

func TestValidate(t *testing.T) {
	type tc struct {
		cfg       Config
		wantField string
	}

	tests := map[string]tc{
		"valid": {
			cfg: Config{Workers: 4, CustomRegex: `tw\("([^"]*)"\)`, SortOrder: []string{"flex"}},
		},
		"negative workers": {
			cfg:       Config{Workers: -1},
			wantField: "workers",
		},
		"order file and sort order": {
			cfg:       Config{OrderFile: "order.yaml", SortOrder: []string{"flex"}},
			wantField: "sort_order",
		},
		"regex does not compile": {
			cfg:       Config{CustomRegex: `class="(`},
			wantField: "custom_regex",
		},
		"regex without group": {
			cfg:       Config{CustomRegex: `class`},
			wantField: "custom_regex",
		},
		"duplicate sort order": {
			cfg:       Config{SortOrder: []string{"flex", "flex"}},
			wantField: "sort_order",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr), "want *Error, got %v", err)
			require.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestOrderFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "order.yaml", "classes:\n  - text-center\n  - flex\n")

	cfg := &Config{OrderFile: path}
	s, err := cfg.Sorter()
	require.NoError(t, err)
	require.Equal(t, "text-center flex custom", s.SortClasses("custom flex text-center"))

	cfg = &Config{OrderFile: filepath.Join(dir, "missing.yaml")}
	_, err = cfg.Sorter()
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "order_file", cfgErr.Field)
}
