package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meetinghours/internal/models"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository struct {
	reportCollection *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		reportCollection: db.Collection("reports"),
	}
}

// Save upserts the report under its ID.
func (r *ReportRepository) Save(ctx context.Context, report *models.CohortReport) error {
	_, err := r.reportCollection.ReplaceOne(ctx,
		bson.M{"_id": report.ID},
		report,
		options.Replace().SetUpsert(true),
	)
	return err
}

// List returns the most recent reports, newest first.
func (r *ReportRepository) List(ctx context.Context, limit int) ([]*models.CohortReport, error) {
	cursor, err := r.reportCollection.Find(ctx, bson.M{}, listOptions(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := make([]*models.CohortReport, 0)
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.CohortReport, error) {
	var report models.CohortReport
	err := r.reportCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func listOptions(limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(clampLimit(limit)))
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
