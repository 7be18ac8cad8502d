package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_writesMissingSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		_ = os.Chdir(wd)
	}()

	obj := map[string]int{"round": 1}
	Match(t, obj)

	data, err := os.ReadFile(filepath.Join("testdata", "TestMatch_writesMissingSnapshot-0.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"round\": 1\n}\n", string(data))

	// same test, next call gets a new file
	Match(t, obj)
	_, err = os.Stat(filepath.Join("testdata", "TestMatch_writesMissingSnapshot-1.json"))
	assert.NoError(t, err)
}

func TestNextFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "TestA_sub_case-0.json"), nextFilename("TestA/sub case"))
	assert.Equal(t, filepath.Join("testdata", "TestA_sub_case-1.json"), nextFilename("TestA/sub case"))
}
