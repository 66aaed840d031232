package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root. Paths use forward slashes.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func rels(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Rel
	}
	return out
}

func TestCollectDirectory(t *testing.T) {
	type tc struct {
		files map[string]string
		opts  Options
		want  []string
	}

	tests := map[string]tc{
		"recursive": {
			files: map[string]string{
				"index.html":          "",
				"src/app.vue":         "",
				"src/components/a.js": "",
			},
			want: []string{"index.html", "src/app.vue", "src/components/a.js"},
		},
		"skips vcs and node_modules": {
			files: map[string]string{
				"a.html":                 "",
				".git/HEAD":              "",
				"node_modules/x/x.js":    "",
				"package-lock.json":      "",
				"sub/node_modules/y.css": "",
			},
			want: []string{"a.html"},
		},
		"skips hidden by default": {
			files: map[string]string{
				"a.html":        "",
				".cache/b.html": "",
				".env":          "",
			},
			want: []string{"a.html"},
		},
		"includes hidden when asked": {
			files: map[string]string{
				"a.html":        "",
				".cache/b.html": "",
			},
			opts: Options{Hidden: true, NoGitignore: true},
			want: []string{".cache/b.html", "a.html"},
		},
		"honours gitignore": {
			files: map[string]string{
				".gitignore":    "dist/\n*.min.js\n",
				"a.html":        "",
				"dist/out.html": "",
				"js/app.min.js": "",
				"js/app.js":     "",
			},
			want: []string{"a.html", "js/app.js"},
		},
		"gitignore disabled": {
			files: map[string]string{
				".gitignore":    "dist/\n",
				"dist/out.html": "",
			},
			opts: Options{NoGitignore: true},
			want: []string{"dist/out.html"},
		},
		"ignored patterns": {
			files: map[string]string{
				"a.html":          "",
				"b.html":          "",
				"vendor/lib.html": "",
			},
			opts: Options{Ignored: []string{"b.html", "vendor"}},
			want: []string{"a.html"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files)

			got, err := Collect([]string{root}, tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, rels(got)); diff != "" {
				t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
			}
			for _, f := range got {
				require.Equal(t, filepath.Join(root, filepath.FromSlash(f.Rel)), f.Path)
			}
		})
	}
}

func TestCollectFileAndPattern(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":   "ignored.html\n",
		"ignored.html": "",
		"sub/a.html":   "",
	})

	direct := filepath.Join(root, "ignored.html")
	pattern := filepath.Join(root, "sub") + "/..."

	got, err := Collect([]string{direct, pattern, direct}, Options{})
	require.NoError(t, err)

	want := []File{
		{Path: direct, Rel: direct},
		{Path: filepath.Join(root, "sub", "a.html"), Rel: "a.html"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectMissingPath(t *testing.T) {
	_, err := Collect([]string{filepath.Join(t.TempDir(), "nope")}, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
