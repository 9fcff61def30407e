package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Pages, 10)
	assert.Len(t, Questions, 5)
	assert.Equal(t, 0.8, PassThreshold)

	seen := make(map[string]bool)
	for _, p := range Pages {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Template)
		assert.False(t, seen[p.Template], "duplicate template %s", p.Template)
		seen[p.Template] = true
	}
	for _, q := range Questions {
		assert.NotEmpty(t, q.Statement)
	}
}
