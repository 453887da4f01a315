package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	a := assert.New(t)
	a.True(ValidateSnapshot(t, map[string]int{"cash": 990}, 0))

	written := filepath.Join("testdata", "snapshot.TestValidateSnapshot-1.json")
	_ = os.Remove(written)
	defer os.Remove(written)

	a.True(ValidateSnapshot(t, []string{"a"}, 0), "missing snapshot is created")
	b, err := os.ReadFile(written)
	a.NoError(err)
	a.Equal("[\n  \"a\"\n]\n", string(b))
}
