// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package report

import (
	"context"
	"testing"
	"time"

	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/net/http"

	libLog "github.com/LerianStudio/lib-commons/v2/commons/log"
	libMongo "github.com/LerianStudio/lib-commons/v2/commons/mongo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// startRepository spins up a MongoDB container and returns a repository bound
// to it.
func startRepository(t *testing.T) (*ReportMongoDBRepository, *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	conn := &libMongo.MongoConnection{
		ConnectionStringSource: connStr,
		Database:               "transparency_portal",
		Logger:                 &libLog.NoneLogger{},
	}

	repo, err := NewReportMongoDBRepository(conn)
	require.NoError(t, err)

	db, err := conn.GetDB(ctx)
	require.NoError(t, err)

	return repo, db.Database("transparency_portal")
}

func TestReportRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	repo, db := startRepository(t)
	ctx := context.Background()

	productID := uuid.New()
	creatorID := uuid.New()

	_, err := db.Collection(constant.MongoCollectionProduct).InsertOne(ctx, bson.M{"_id": productID, "name": "Organic Honey"})
	require.NoError(t, err)

	_, err = db.Collection(constant.MongoCollectionUser).InsertOne(ctx, bson.M{"_id": creatorID, "name": "Ada"})
	require.NoError(t, err)

	first, err := NewReport(productID, creatorID, "first.pdf", "/data/reports/first.pdf", constant.VariantTransparency, nil)
	require.NoError(t, err)

	_, err = repo.Create(ctx, first)
	require.NoError(t, err)

	// Insertion order drives the newest-first contract.
	time.Sleep(10 * time.Millisecond)

	second, err := NewReport(productID, creatorID, "second.pdf", "/data/reports/second.pdf", constant.VariantCertification, nil)
	require.NoError(t, err)

	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	t.Run("FindByID resolves lookups", func(t *testing.T) {
		found, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)

		assert.Equal(t, "first.pdf", found.Filename)
		assert.Equal(t, "/data/reports/first.pdf", found.StoragePath)
		assert.Equal(t, "Organic Honey", found.ProductName)
		assert.Equal(t, "Ada", found.CreatorName)
	})

	t.Run("FindByID missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	})

	t.Run("FindList newest first", func(t *testing.T) {
		list, err := repo.FindList(ctx, http.QueryHeader{Limit: 10, Page: 1, SortOrder: "desc"})
		require.NoError(t, err)
		require.Len(t, list, 2)

		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
	})

	t.Run("FindByProduct and FindByCreator", func(t *testing.T) {
		byProduct, err := repo.FindByProduct(ctx, productID, http.QueryHeader{Limit: 10, Page: 1})
		require.NoError(t, err)
		assert.Len(t, byProduct, 2)

		byOther, err := repo.FindByProduct(ctx, uuid.New(), http.QueryHeader{Limit: 10, Page: 1})
		require.NoError(t, err)
		assert.Empty(t, byOther)

		byCreator, err := repo.FindByCreator(ctx, creatorID, http.QueryHeader{Limit: 10, Page: 1})
		require.NoError(t, err)
		assert.Len(t, byCreator, 2)
	})

	t.Run("Delete reports existence", func(t *testing.T) {
		existed, err := repo.Delete(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, existed)

		existed, err = repo.Delete(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, existed)
	})
}
