package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDictionary(t *testing.T) {
	t.Run("registers every prefix of every word", func(t *testing.T) {
		d, err := NewDictionary([]string{"cat", "cats", "dog"})
		require.NoError(t, err)

		for _, p := range []string{"", "c", "ca", "cat", "cats", "d", "do", "dog"} {
			require.True(t, d.IsPrefix(p), "%q should be a prefix", p)
		}
		require.False(t, d.IsPrefix("cd"), "Unrelated strings should not be prefixes")
		require.Equal(t, 3, d.Len())
		require.Equal(t, 8, d.Prefixes())
	})

	t.Run("prefix set is closed under truncation", func(t *testing.T) {
		d, err := NewDictionary([]string{"ghost", "ghoul", "gh'st"})
		require.NoError(t, err)

		for p := range d.prefixes {
			for i := 0; i <= len(p); i++ {
				require.True(t, d.IsPrefix(p[:i]), "%q truncated to %q should be a prefix", p, p[:i])
			}
		}
	})

	t.Run("only complete entries are words", func(t *testing.T) {
		d, err := NewDictionary([]string{"cat", "cats"})
		require.NoError(t, err)

		require.True(t, d.IsWord("cat"))
		require.True(t, d.IsWord("cats"))
		require.False(t, d.IsWord("ca"))
		require.False(t, d.IsWord(""))
	})

	t.Run("rejects symbols outside the alphabet", func(t *testing.T) {
		_, err := NewDictionary([]string{"cat", "Dog"})
		require.ErrorIs(t, err, ErrInvalidWord)
	})

	t.Run("rejects an empty word list", func(t *testing.T) {
		_, err := NewDictionary(nil)
		require.ErrorIs(t, err, ErrEmptyDictionary)
	})
}

func TestReadDictionary(t *testing.T) {
	t.Run("parses newline delimited words", func(t *testing.T) {
		d, err := ReadDictionary(strings.NewReader("ab\r\nba\n\nain't\n"))
		require.NoError(t, err)

		require.Equal(t, 3, d.Len(), "Blank lines should be skipped")
		require.True(t, d.IsWord("ab"), "Carriage returns should be stripped")
		require.True(t, d.IsWord("ain't"))
	})

	t.Run("reports the offending line", func(t *testing.T) {
		_, err := ReadDictionary(strings.NewReader("ab\nb4\n"))
		require.ErrorIs(t, err, ErrInvalidWord)
		require.Contains(t, err.Error(), "line 2")
	})

	t.Run("rejects input without words", func(t *testing.T) {
		_, err := ReadDictionary(strings.NewReader("\n\n"))
		require.ErrorIs(t, err, ErrEmptyDictionary)
	})
}

func TestLoadDictionary(t *testing.T) {
	t.Run("loads a dictionary file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dictionary.txt")
		require.NoError(t, os.WriteFile(path, []byte("cat\ncats\n"), 0644))

		d, err := LoadDictionary(path)
		require.NoError(t, err)
		require.Equal(t, 2, d.Len())
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
	})
}

func TestExtensions(t *testing.T) {
	d, err := NewDictionary([]string{"cat", "can't", "cab", "c'mon"})
	require.NoError(t, err)

	require.Equal(t, []Action{'a', '\''}, d.Extensions("c"), "Apostrophe should come after the letters")
	require.Equal(t, []Action{'b', 'n', 't'}, d.Extensions("ca"), "Extensions should follow alphabet order")
	require.Empty(t, d.Extensions("cat"))
}
