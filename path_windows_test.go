//go:build windows

package fdpath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPath_NoVerbatimPrefix verifies the \\?\ decoration the OS adds to
// GetFinalPathNameByHandle results never reaches the caller.
func TestPath_NoVerbatimPrefix(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "foo.txt"))
	require.NoError(t, err)
	defer f.Close()

	got, err := Path(f)
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(got, `\\?\`),
		"verbatim prefix must be stripped, got %q", got)
	require.Equal(t, "foo.txt", filepath.Base(got))
}

func TestStripVerbatimPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drive path", `\\?\C:\Users\me\foo.txt`, `C:\Users\me\foo.txt`},
		{"UNC path", `\\?\UNC\server\share\foo.txt`, `\\server\share\foo.txt`},
		{"undecorated", `C:\Users\me\foo.txt`, `C:\Users\me\foo.txt`},
		{"plain UNC", `\\server\share\foo.txt`, `\\server\share\foo.txt`},
		{"empty", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, stripVerbatimPrefix(tt.in))
		})
	}
}
