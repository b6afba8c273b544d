package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/testutil"
)

func TestSettingsService_EvdsKeyRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSettingsService(t, db)
	ctx := context.Background()

	_, err := svc.GetEvdsAPIKey(ctx)
	assert.ErrorIs(t, err, apperrors.ErrEvdsKeyNotConfigured)

	configured, err := svc.HasEvdsAPIKey(ctx)
	require.NoError(t, err)
	assert.False(t, configured)

	require.NoError(t, svc.SetEvdsAPIKey(ctx, "my-evds-key"))

	key, err := svc.GetEvdsAPIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "my-evds-key", key)

	configured, err = svc.HasEvdsAPIKey(ctx)
	require.NoError(t, err)
	assert.True(t, configured)
}

func TestSettingsService_StoresKeyEncrypted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSettingsService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.SetEvdsAPIKey(ctx, "my-evds-key"))

	var stored string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, model.SettingEvdsAPIKey).Scan(&stored)
	require.NoError(t, err)
	assert.NotEqual(t, "my-evds-key", stored)
	assert.NotContains(t, stored, "my-evds-key")
}
