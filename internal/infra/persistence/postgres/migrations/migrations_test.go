package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_PairsUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
	assert.True(t, ups["000001_init"])
}

func TestInitMigration_CascadesComments(t *testing.T) {
	up, err := fs.ReadFile(FS, "000001_init.up.sql")
	require.NoError(t, err)

	sql := string(up)
	assert.Contains(t, sql, "REFERENCES posts (id) ON DELETE CASCADE")
	assert.Contains(t, sql, "CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email")
}
