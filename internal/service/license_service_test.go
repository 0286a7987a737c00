package service

import (
	"context"
	"testing"

	"backend/internal/database"
	"backend/internal/license"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLicenseService(t *testing.T) (LicenseService, *license.Signer) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	signer, err := license.NewSigner("")
	require.NoError(t, err)
	return NewLicenseService(db, signer), signer
}

func TestSeedStoresBootToken(t *testing.T) {
	svc, signer := newLicenseService(t)
	ctx := context.Background()

	token, err := signer.Issue(license.Claims{Licensee: "Acme", TenantID: "default", Plan: "starter"})
	require.NoError(t, err)
	require.NoError(t, svc.Seed(ctx, "default", token))

	resp, err := svc.Evaluate(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, token, resp.Token)
	assert.True(t, resp.Status.Valid)
}

func TestSeedDoesNotOverwriteIssuedLicense(t *testing.T) {
	svc, signer := newLicenseService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, "default", IssueLicenseRequest{Licensee: "Acme", Plan: "enterprise"})
	require.NoError(t, err)

	stale, err := signer.Issue(license.Claims{Licensee: "Old Corp", TenantID: "default", Plan: "starter"})
	require.NoError(t, err)
	require.NoError(t, svc.Seed(ctx, "default", stale))

	resp, err := svc.Evaluate(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, issued.Token, resp.Token)
}

func TestSeedIgnoresEmptyToken(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, "default", ""))

	resp, err := svc.Evaluate(ctx, "default")
	require.NoError(t, err)
	assert.False(t, resp.Status.Valid)
	assert.Equal(t, "no license issued", resp.Status.Reason)
}
