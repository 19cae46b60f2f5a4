package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBasicStructure(t *testing.T) {
	n := New()

	markdown, err := n.Normalize(`<div><h1>EPG4005</h1><p>Descripción del curso.</p><ul><li>Unidad 1</li></ul></div>`)
	require.NoError(t, err)

	assert.Contains(t, markdown, "# EPG4005")
	assert.Contains(t, markdown, "Descripción del curso.")
	assert.Contains(t, markdown, "- Unidad 1")
}
