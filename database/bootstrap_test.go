package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vyaas/entities"
)

func TestOpenSQLiteMigratesRecords(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&entities.StoredRecord{}))
	require.NoError(t, db.Create(&entities.StoredRecord{Key: "k", Value: "v"}).Error)

	var got entities.StoredRecord
	require.NoError(t, db.First(&got, "record_key = ?", "k").Error)
	assert.Equal(t, "v", got.Value)
}
