package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"meetinghours/internal/models"
)

type StatisticsRepository struct {
	reportCollection *mongo.Collection
}

func NewStatisticsRepository(db *mongo.Database) *StatisticsRepository {
	return &StatisticsRepository{
		reportCollection: db.Collection("reports"),
	}
}

// GetRoleTrends averages the stored group statistics of every report created
// in the last N days, one point per group key, "all" first.
func (r *StatisticsRepository) GetRoleTrends(ctx context.Context, days int) ([]models.RoleTrendPoint, error) {
	since := time.Now().AddDate(0, 0, -days)

	cursor, err := r.reportCollection.Aggregate(ctx, roleTrendPipeline(since))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]models.RoleTrendPoint, 0)
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return allFirst(results), nil
}

func roleTrendPipeline(since time.Time) []bson.M {
	return []bson.M{
		{"$match": bson.M{
			"createdAt": bson.M{"$gte": since},
		}},
		{"$unwind": "$groups"},
		{"$group": bson.M{
			"_id":        "$groups.key",
			"reports":    bson.M{"$sum": 1},
			"avgMean":    bson.M{"$avg": "$groups.mean"},
			"avgMedian":  bson.M{"$avg": "$groups.median"},
			"avgTracked": bson.M{"$avg": "$groups.count"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
}

func allFirst(points []models.RoleTrendPoint) []models.RoleTrendPoint {
	for i, p := range points {
		if p.Key == models.GroupAll && i > 0 {
			copy(points[1:i+1], points[:i])
			points[0] = p
			break
		}
	}
	return points
}
