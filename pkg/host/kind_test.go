package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKind_String(t *testing.T) {
	assert.Equal(t, "Default", KindDefault.String())
	assert.Equal(t, "Warning", KindWarning.String())
	assert.Equal(t, "LogKind(42)", LogKind(42).String())
}

func TestParseLogKind(t *testing.T) {
	for k := KindDefault; k <= KindWarning; k++ {
		got, err := ParseLogKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseLogKind("statistic")
	require.NoError(t, err)
	assert.Equal(t, KindStatistic, got)

	_, err = ParseLogKind("Result")
	assert.Error(t, err)
}
