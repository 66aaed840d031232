package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grindlemire/twsort/internal/order"
	"github.com/grindlemire/twsort/internal/report"
)

const (
	unsorted = `<div class="text-white p-4 flex">Button</div>` + "\n"
	sorted   = `<div class="flex p-4 text-white">Button</div>` + "\n"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// project creates a directory with one unsorted and one sorted file and
// makes it the working directory.
func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.html"), []byte(unsorted), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.html"), []byte(sorted), 0644))
	t.Chdir(dir)
	return dir
}

func TestSortModes(t *testing.T) {
	type tc struct {
		args        []string
		wantOut     []string
		wantErr     string
		wantWritten bool
	}

	tests := map[string]tc{
		"console is the default": {
			args:    []string{"."},
			wantOut: []string{report.BannerConsole, sorted},
		},
		"dry run": {
			args:    []string{"--dry-run", "."},
			wantOut: []string{report.BannerDryRun, "  * src/a.html"},
		},
		"write": {
			args:        []string{"--write", "./..."},
			wantOut:     []string{report.BannerWrite, "  * src/a.html"},
			wantWritten: true,
		},
		"check": {
			args:    []string{"--check-formatted"},
			wantOut: []string{report.BannerCheck, "  * src/a.html"},
			wantErr: "1 file(s) not sorted",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := project(t)

			stdout, _, err := execute(t, "", tt.args...)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				require.Contains(t, stdout, want)
			}
			require.NotContains(t, stdout, "* b.html")

			data, err := os.ReadFile(filepath.Join(dir, "src", "a.html"))
			require.NoError(t, err)
			if tt.wantWritten {
				require.Equal(t, sorted, string(data))
			} else {
				require.Equal(t, unsorted, string(data))
			}
		})
	}
}

func TestSortInterrupted(t *testing.T) {
	dir := project(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--write", "."})
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)

	err := cmd.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorContains(t, err, "sorting interrupted")

	require.Contains(t, stdout.String(), report.BannerWrite)
	require.Contains(t, stdout.String(), "0 file(s) checked, 0 changed, 2 file(s) had errors")

	data, err := os.ReadFile(filepath.Join(dir, "src", "a.html"))
	require.NoError(t, err)
	require.Equal(t, unsorted, string(data))
}

func TestSortStdin(t *testing.T) {
	stdout, _, err := execute(t, unsorted, "--stdin")
	require.NoError(t, err)
	require.Equal(t, sorted, stdout)

	_, _, err = execute(t, unsorted, "--stdin", "a.html")
	require.EqualError(t, err, "paths cannot be combined with --stdin")
}

func TestSortFlagConflicts(t *testing.T) {
	project(t)
	_, _, err := execute(t, "", "--write", "--dry-run", ".")
	require.Error(t, err)
	require.Contains(t, err.Error(), "none of the others can be")
}

func TestSortOptions(t *testing.T) {
	type tc struct {
		stdin string
		args  []string
		want  string
	}

	tests := map[string]tc{
		"duplicates removed": {
			stdin: `<p class="flex p-4 flex">`,
			want:  `<p class="flex p-4">`,
		},
		"allow duplicates": {
			stdin: `<p class="flex p-4 flex">`,
			args:  []string{"--allow-duplicates"},
			want:  `<p class="flex flex p-4">`,
		},
		"custom regex": {
			stdin: `tw("p-4 flex") <p class="p-4 flex">`,
			args:  []string{"--custom-regex", `tw\("([^"]*)"\)`},
			want:  `tw("flex p-4") <p class="p-4 flex">`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			stdout, _, err := execute(t, tt.stdin, append([]string{"--stdin"}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.want, stdout)
		})
	}
}

func TestSortConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".twsort.yaml"), []byte("sort_order:\n  - text-white\n  - flex\n"), 0644))

	stdout, _, err := execute(t, unsorted, "--stdin")
	require.NoError(t, err)
	require.Equal(t, `<div class="text-white flex p-4">Button</div>`+"\n", stdout)
}

func TestSortOrderFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "order.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- p-*\n- text-white\n"), 0644))

	stdout, _, err := execute(t, unsorted, "--stdin", "--order-file", path)
	require.NoError(t, err)
	require.Equal(t, `<div class="p-4 text-white flex">Button</div>`+"\n", stdout)
}

func TestSortInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := execute(t, "", "--stdin", "--workers", "-2")
	require.EqualError(t, err, "config error in field 'workers': must not be negative")
}

func TestSortWarnUnknown(t *testing.T) {
	dir := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.html"), []byte(`<p class="flx">`), 0644))

	_, stderr, err := execute(t, "", "--dry-run", "--warn-unknown", ".")
	require.NoError(t, err)
	require.Contains(t, stderr, "unknown class")
	require.Contains(t, stderr, `"class": "flx"`)
	require.Contains(t, stderr, `"suggestion": "flex"`)
}

func TestSortIgnoredFiles(t *testing.T) {
	project(t)

	stdout, _, err := execute(t, "", "--dry-run", "--ignored-files", "src/", ".")
	require.NoError(t, err)
	require.NotContains(t, stdout, "src/a.html")
}

func TestTableCmd(t *testing.T) {
	stdout, _, err := execute(t, "", "table")
	require.NoError(t, err)

	table, err := order.Decode(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Equal(t, order.Default().Patterns(), table.Patterns())

	path := filepath.Join(t.TempDir(), "order.yaml")
	_, _, err = execute(t, "", "table", "--output", path)
	require.NoError(t, err)
	fromFile, err := order.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, order.Default().Len(), fromFile.Len())
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "twsort version "+version+"\n", stdout)
}

func TestLSPCmd(t *testing.T) {
	t.Chdir(t.TempDir())

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`
	exit := `{"jsonrpc":"2.0","method":"exit"}`
	stdin := fmt.Sprintf("Content-Length: %d\r\n\r\n%sContent-Length: %d\r\n\r\n%s", len(body), body, len(exit), exit)

	stdout, _, err := execute(t, stdin, "lsp")
	require.NoError(t, err)
	require.Contains(t, stdout, `"documentFormattingProvider":true`)
	require.Contains(t, stdout, `"version":"`+version+`"`)
}
