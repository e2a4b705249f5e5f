package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/ptrtools/internal/testutil"
)

func TestSetupCheckFlags(t *testing.T) {
	fs, flags := SetupCheckFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.File)
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-f", "config.yaml", "-q", "/service/name"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "config.yaml", flags.File)
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "/service/name", fs.Arg(0))
	})
}

func TestHandleCheck_NoArgs(t *testing.T) {
	err := HandleCheck([]string{})
	assert.Error(t, err)
}

func TestHandleCheck_Help(t *testing.T) {
	err := HandleCheck([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleCheck_NoPointers(t *testing.T) {
	err := HandleCheck([]string{"-f", "config.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one pointer")
}

func TestHandleCheck_FileNotFound(t *testing.T) {
	err := HandleCheck([]string{"-f", "/nonexistent/config.yaml", "/service/name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading document")
}

func TestHandleCheck_AllPass(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.NewServiceDocument())

	err := HandleCheck([]string{"-f", path, "/service/name", "/service/port", "/features/0"})
	assert.NoError(t, err)
}

func TestHandleCheck_QuietAllPass(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.NewServiceDocument())

	err := HandleCheck([]string{"-f", path, "-q", "/limits/rps"})
	assert.NoError(t, err)
}
