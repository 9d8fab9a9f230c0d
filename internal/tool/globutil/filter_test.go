package globutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSet_Keep(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		path    string
		want    bool
	}{
		{"no filters", nil, nil, "a/b.txt", true},
		{"include by base name", []string{"*.go"}, nil, "pkg/a.go", true},
		{"include miss", []string{"*.go"}, nil, "pkg/a.rs", false},
		{"doublestar include", []string{"src/**/*.ts"}, nil, "src/x/y/z.ts", true},
		{"anchored include miss", []string{"src/*.ts"}, nil, "lib/z.ts", false},
		{"alternation", []string{"*.{md,txt}"}, nil, "docs/readme.md", true},
		{"exclude wins", []string{"*.go"}, []string{"*_test.go"}, "a/b_test.go", false},
		{"exclude directory tree", nil, []string{"vendor/**"}, "vendor/x/y.go", false},
		{"exclude miss keeps", nil, []string{"vendor/**"}, "main.go", true},
		{"character class", []string{"file[0-9].txt"}, nil, "file7.txt", true},
		{"single char", []string{"?.c"}, nil, "dir/a.c", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := NewFilterSet(tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fs.Keep(tt.path))
		})
	}
}

func TestNewFilterSet_InvalidPattern(t *testing.T) {
	_, err := NewFilterSet([]string{"*.go"}, []string{"[unclosed"})
	var globErr *InvalidGlobError
	require.ErrorAs(t, err, &globErr)
	assert.Equal(t, "[unclosed", globErr.Pattern)
	assert.True(t, globErr.InvalidInput())
}

func TestFilterSet_NilKeepsAll(t *testing.T) {
	var fs *FilterSet
	assert.True(t, fs.Keep("anything"))
}
