package auth

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// schemaColumns extracts the declared column names for one table from
// migrations/schema.sql, so queries and schema cannot drift apart
// without a test noticing.
func schemaColumns(t *testing.T, table string) map[string]bool {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "schema.sql"))
	require.NoError(t, err)

	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\);`)
	m := re.FindStringSubmatch(string(raw))
	require.Lenf(t, m, 2, "table %s not found in schema.sql", table)

	cols := make(map[string]bool)
	for _, line := range strings.Split(m[1], "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		cols[fields[0]] = true
	}
	return cols
}

func TestUserQueryColumnsMatchSchema(t *testing.T) {
	cols := schemaColumns(t, "users")
	for _, col := range []string{"id", "email", "password_hash", "is_active", "created_at", "updated_at"} {
		require.Truef(t, cols[col], "users query references %q, missing from schema.sql", col)
	}
}

func TestSessionInsertColumnsMatchSchema(t *testing.T) {
	cols := schemaColumns(t, "sessions")
	for _, col := range []string{"id", "user_id", "expires_at", "ip", "user_agent"} {
		require.Truef(t, cols[col], "sessions insert references %q, missing from schema.sql", col)
	}
}
