package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Output = &buf
	t.Cleanup(func() { Output = nil })
	return &buf
}

func TestPrintMessages(t *testing.T) {
	buf := withBuffer(t)

	PrintInfo("connecting")
	PrintSuccess("done")
	PrintWarning("old server")

	assert.Equal(t, "→ connecting\n✓ done\n! old server\n", buf.String())
}

func TestPrintJSON(t *testing.T) {
	buf := withBuffer(t)

	require.NoError(t, PrintJSON(map[string]int{"total": 2}))
	assert.Equal(t, "{\n  \"total\": 2\n}\n", buf.String())
}

func TestPrintTable(t *testing.T) {
	buf := withBuffer(t)

	err := PrintTable([]string{"ID", "Name"}, [][]string{
		{"d1", "first"},
		{"d2"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "NAME")
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "d2")
}
