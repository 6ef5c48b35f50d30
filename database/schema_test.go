package database

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createTable = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)

func tableColumns(t *testing.T) map[string][]string {
	t.Helper()
	schema, err := migrations.ReadFile("migrations/00001_rewards.sql")
	require.NoError(t, err)

	tables := make(map[string][]string)
	for _, m := range createTable.FindAllStringSubmatch(string(schema), -1) {
		for _, line := range strings.Split(m[2], "\n") {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			tables[m[1]] = append(tables[m[1]], fields[0])
		}
	}
	return tables
}

func TestSchema_AnonymousMarketDataHasNoIdentityColumns(t *testing.T) {
	tables := tableColumns(t)

	columns, ok := tables["anonymous_market_data"]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"id", "created_at",
		"hashed_user_id", "amount", "category", "city", "inventory", "transaction_month",
	}, columns)

	for _, c := range columns {
		assert.NotContains(t, []string{"user_id", "name", "email", "phone"}, c)
	}
}

func TestSchema_ConsentTableKeyedByUserID(t *testing.T) {
	tables := tableColumns(t)

	columns, ok := tables["user_consent"]
	require.True(t, ok)
	assert.Contains(t, columns, "user_id")
	assert.NotContains(t, columns, "hashed_user_id")
}
