// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package product

import (
	"context"

	libCommons "github.com/LerianStudio/lib-commons/v2/commons"
	libMongo "github.com/LerianStudio/lib-commons/v2/commons/mongo"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	cn "github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
)

// Repository provides read access to product snapshots for report generation.
//
//go:generate mockgen --destination=product.mongodb.mock.go --package=product --copyright_file=../../../../COPYRIGHT . Repository
type Repository interface {
	GetSnapshot(ctx context.Context, id uuid.UUID) (*model.ProductSnapshot, error)
}

// Compile-time interface satisfaction check.
var _ Repository = (*ProductMongoDBRepository)(nil)

// ProductMongoDBRepository is a MongoDB implementation of the product
// snapshot reader.
type ProductMongoDBRepository struct {
	connection *libMongo.MongoConnection
	Database   string
}

// NewProductMongoDBRepository returns a new instance of ProductMongoDBRepository using the given MongoDB connection.
func NewProductMongoDBRepository(mc *libMongo.MongoConnection) *ProductMongoDBRepository {
	r := &ProductMongoDBRepository{
		connection: mc,
		Database:   mc.Database,
	}

	if _, err := r.connection.GetDB(context.Background()); err != nil {
		panic("Failed to connect mongodb")
	}

	return r
}

func (pmr *ProductMongoDBRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := pmr.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return db.Database(pmr.Database).Collection(cn.MongoCollectionProduct), nil
}

// GetSnapshot fetches the product document by id. A missing product is
// reported as mongo.ErrNoDocuments so callers can map it to a not-found
// business error.
func (pmr *ProductMongoDBRepository) GetSnapshot(ctx context.Context, id uuid.UUID) (*model.ProductSnapshot, error) {
	logger, tracer, reqId, _ := libCommons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.product.get_snapshot")
	span.SetAttributes(attribute.String("app.request.request_id", reqId))

	defer span.End()

	coll, err := pmr.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		logger.Errorf("Failed to get database connection: %v", err)

		return nil, err
	}

	var record ProductMongoDBModel

	ctx, spanQuery := tracer.Start(ctx, "repository.product.get_snapshot_exec")
	spanQuery.SetAttributes(attribute.String("app.request.request_id", reqId))

	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			libOpentelemetry.HandleSpanBusinessErrorEvent(&spanQuery, "Product not found", err)

			spanQuery.End()

			return nil, err
		}

		libOpentelemetry.HandleSpanError(&spanQuery, "Failed to find product", err)

		logger.Errorf("Failed to find product %s: %v", id, err)

		spanQuery.End()

		return nil, err
	}

	spanQuery.End()

	return record.ToSnapshot(), nil
}
