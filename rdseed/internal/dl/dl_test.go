package dl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenMissing(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "librdseed-missing.so"))
	assert.Nil(t, l)
	assert.Error(t, err)
}
