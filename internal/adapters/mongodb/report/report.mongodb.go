// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/net/http"

	"github.com/LerianStudio/lib-commons/v2/commons"
	libMongo "github.com/LerianStudio/lib-commons/v2/commons/mongo"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
)

// Repository provides an interface for operations related to the reports collection in MongoDB.
//
//go:generate mockgen --destination=report.mongodb.mock.go --package=report --copyright_file=../../../../COPYRIGHT . Repository
type Repository interface {
	Create(ctx context.Context, record *Report) (*Report, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Report, error)
	FindList(ctx context.Context, filters http.QueryHeader) ([]*Report, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filters http.QueryHeader) ([]*Report, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID, filters http.QueryHeader) ([]*Report, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ReportMongoDBRepository is a MongoDB-specific implementation of the report Repository.
type ReportMongoDBRepository struct {
	connection *libMongo.MongoConnection
	Database   string
}

// Compile-time interface satisfaction check.
var _ Repository = (*ReportMongoDBRepository)(nil)

// NewReportMongoDBRepository returns a new instance of ReportMongoDBRepository using the given MongoDB connection.
func NewReportMongoDBRepository(mc *libMongo.MongoConnection) (*ReportMongoDBRepository, error) {
	r := &ReportMongoDBRepository{
		connection: mc,
		Database:   mc.Database,
	}
	if _, err := r.connection.GetDB(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb for reports: %w", err)
	}

	return r, nil
}

func (rm *ReportMongoDBRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := rm.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return db.Database(strings.ToLower(rm.Database)).Collection(strings.ToLower(constant.MongoCollectionReport)), nil
}

// Create inserts a new report record into mongo.
func (rm *ReportMongoDBRepository) Create(ctx context.Context, record *Report) (*Report, error) {
	_, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.report.create")
	defer span.End()

	attributes := []attribute.KeyValue{
		attribute.String("app.request.request_id", reqId),
	}

	span.SetAttributes(attributes...)

	err := libOpentelemetry.SetSpanAttributesFromStruct(&span, "app.request.payload", record)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to convert report record to JSON string", err)
	}

	coll, err := rm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)

		return nil, err
	}

	doc := &ReportMongoDBModel{}

	if err := doc.FromEntity(record); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to convert report to model", err)

		return nil, err
	}

	ctx, spanInsert := tracer.Start(ctx, "repository.report.create_exec")

	spanInsert.SetAttributes(attributes...)

	if _, err = coll.InsertOne(ctx, doc); err != nil {
		libOpentelemetry.HandleSpanError(&spanInsert, "Failed to insert report", err)
		spanInsert.End()

		return nil, err
	}

	spanInsert.End()

	return doc.ToEntity(), nil
}

// lookupStages joins the product and user collections so list and get
// responses carry the product and creator names without extra round trips.
func lookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         strings.ToLower(constant.MongoCollectionProduct),
			"localField":   "product_id",
			"foreignField": "_id",
			"as":           "product_doc",
		}},
		{"$lookup": bson.M{
			"from":         strings.ToLower(constant.MongoCollectionUser),
			"localField":   "created_by",
			"foreignField": "_id",
			"as":           "creator_doc",
		}},
		{"$addFields": bson.M{
			"product_name": bson.M{"$first": "$product_doc.name"},
			"creator_name": bson.M{"$first": "$creator_doc.name"},
		}},
		{"$project": bson.M{
			"product_doc": 0,
			"creator_doc": 0,
		}},
	}
}

// FindByID retrieves a report from mongodb by id, with product and creator
// names resolved.
func (rm *ReportMongoDBRepository) FindByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	_, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.report.find_by_id")
	defer span.End()

	attributes := []attribute.KeyValue{
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.report_id", id.String()),
	}

	span.SetAttributes(attributes...)

	coll, err := rm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)

		return nil, err
	}

	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, lookupStages()...)

	ctx, spanFindOne := tracer.Start(ctx, "repository.report.find_by_id_exec")
	defer spanFindOne.End()

	spanFindOne.SetAttributes(attributes...)

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		libOpentelemetry.HandleSpanError(&spanFindOne, "Failed to find report by id", err)

		return nil, err
	}

	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		libOpentelemetry.HandleSpanBusinessErrorEvent(&spanFindOne, "No report found with the provided id", constant.ErrEntityNotFound)

		return nil, mongo.ErrNoDocuments
	}

	var record ReportMongoDBModel
	if err := cur.Decode(&record); err != nil {
		libOpentelemetry.HandleSpanError(&spanFindOne, "Failed to decode report", err)

		return nil, err
	}

	return record.ToEntity(), nil
}

// FindList retrieves all reports, newest first, with pagination.
func (rm *ReportMongoDBRepository) FindList(ctx context.Context, filters http.QueryHeader) ([]*Report, error) {
	return rm.findWithFilter(ctx, "repository.report.find_list", bson.M{}, filters)
}

// FindByProduct retrieves the reports referencing a product, newest first.
func (rm *ReportMongoDBRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filters http.QueryHeader) ([]*Report, error) {
	return rm.findWithFilter(ctx, "repository.report.find_by_product", bson.M{"product_id": productID}, filters)
}

// FindByCreator retrieves the reports created by an actor, newest first.
func (rm *ReportMongoDBRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID, filters http.QueryHeader) ([]*Report, error) {
	return rm.findWithFilter(ctx, "repository.report.find_by_creator", bson.M{"created_by": creatorID}, filters)
}

func (rm *ReportMongoDBRepository) findWithFilter(ctx context.Context, spanName string, match bson.M, filters http.QueryHeader) ([]*Report, error) {
	_, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	attributes := []attribute.KeyValue{
		attribute.String("app.request.request_id", reqId),
	}

	span.SetAttributes(attributes...)

	err := libOpentelemetry.SetSpanAttributesFromStruct(&span, "app.request.payload", filters)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to convert filters to JSON string", err)
	}

	coll, err := rm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)

		return nil, err
	}

	if !commons.IsNilOrEmpty(&filters.ReportType) {
		match["report_type"] = filters.ReportType
	}

	sortDirection := -1
	if filters.SortOrder == "asc" {
		sortDirection = 1
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = constant.DefaultPaginationLimit
	}

	page := filters.Page
	if page <= 0 {
		page = constant.DefaultPaginationPage
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"created_at": sortDirection}},
		{"$skip": (page - 1) * limit},
		{"$limit": limit},
	}
	pipeline = append(pipeline, lookupStages()...)

	ctx, spanFind := tracer.Start(ctx, spanName+"_exec")
	defer spanFind.End()

	spanFind.SetAttributes(attributes...)

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		libOpentelemetry.HandleSpanError(&spanFind, "Failed to find reports", err)

		return nil, err
	}

	defer cur.Close(ctx)

	var results []*Report

	for cur.Next(ctx) {
		var record ReportMongoDBModel
		if err := cur.Decode(&record); err != nil {
			libOpentelemetry.HandleSpanError(&spanFind, "Failed to decode report", err)

			return nil, err
		}

		results = append(results, record.ToEntity())
	}

	if err := cur.Err(); err != nil {
		libOpentelemetry.HandleSpanError(&spanFind, "Failed to iterate reports", err)

		return nil, err
	}

	return results, nil
}

// Delete removes a report record by id. It returns true when a record
// existed and was removed. The stored document itself is the caller's
// concern; only the index entry lives here.
func (rm *ReportMongoDBRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	_, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.report.delete")
	defer span.End()

	attributes := []attribute.KeyValue{
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.report_id", id.String()),
	}

	span.SetAttributes(attributes...)

	coll, err := rm.collection(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)

		return false, err
	}

	ctx, spanDelete := tracer.Start(ctx, "repository.report.delete_exec")
	defer spanDelete.End()

	spanDelete.SetAttributes(attributes...)

	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		libOpentelemetry.HandleSpanError(&spanDelete, "Failed to delete report", err)

		return false, err
	}

	if result.DeletedCount == 0 {
		libOpentelemetry.HandleSpanBusinessErrorEvent(&spanDelete, "No report found with the provided id", constant.ErrEntityNotFound)

		return false, nil
	}

	return true, nil
}
