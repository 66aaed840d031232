package order

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	type tc struct {
		input   string
		want    []string
		wantErr string
	}

	tests := map[string]tc{
		"mapping": {
			input: "classes:\n  - flex\n  - p-*\n",
			want:  []string{"flex", "p-*"},
		},
		"bare list": {
			input: "- block\n- text-*\n",
			want:  []string{"block", "text-*"},
		},
		"empty document": {
			input:   "",
			wantErr: "empty",
		},
		"empty list": {
			input:   "classes: []\n",
			wantErr: "empty",
		},
		"scalar": {
			input:   "flex\n",
			wantErr: "must be a list or a mapping",
		},
		"duplicate": {
			input:   "- flex\n- flex\n",
			wantErr: "duplicate",
		},
		"invalid yaml": {
			input:   "classes: [flex\n",
			wantErr: "parsing order table",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			table, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Decode() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if got := table.Patterns(); !slices.Equal(got, tt.want) {
				t.Errorf("Patterns() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default()); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "classes:\n  - container\n") {
		t.Errorf("unexpected encoding prefix: %q", buf.String()[:min(40, buf.Len())])
	}

	table, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !slices.Equal(table.Patterns(), Default().Patterns()) {
		t.Error("decoded table differs from the default table")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.yaml")
	if err := os.WriteFile(path, []byte("classes:\n  - flex\n  - text-*\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if got := table.RankOf("text-red-500"); got != 1 {
		t.Errorf("RankOf(text-red-500) = %d, want 1", got)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile() on a missing file should fail")
	}
}
