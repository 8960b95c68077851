package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_AreEmbeddedInOrder(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_companies.sql",
		"00003_create_jobs.sql",
	}, names)
}

func TestMigrations_DeclareUniqueConstraints(t *testing.T) {
	users, err := fs.ReadFile(migrations, "migrations/00001_create_users.sql")
	require.NoError(t, err)
	companies, err := fs.ReadFile(migrations, "migrations/00002_create_companies.sql")
	require.NoError(t, err)

	for _, c := range []string{"users_email_key", "users_mobile_number_key", "users_user_name_key"} {
		assert.True(t, strings.Contains(string(users), c), c)
	}
	assert.Contains(t, string(companies), "companies_company_email_key")

	for _, body := range [][]byte{users, companies} {
		assert.Contains(t, string(body), "-- +goose Up")
		assert.Contains(t, string(body), "-- +goose Down")
	}
}
