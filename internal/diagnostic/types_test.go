package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	require.NoError(t, d.Error())

	d.AddWarning(CodeEmptyEnum, "enum has no variants", "store.Status", "")
	require.NoError(t, d.Error())

	d.AddError(CodeOrphanVariant, "implements no enum", "store.Lost", "types.go:12:6")

	var other Diagnostics
	other.AddError(CodeUnsupportedField, "chan has no constant form", "", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{CodeOrphanVariant, CodeUnsupportedField, CodeEmptyEnum}, d.Codes())
	assert.EqualError(t, d.Error(),
		"types.go:12:6 [store.Lost]: [orphan-variant] implements no enum; [unsupported-field] chan has no constant form")
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
