package absenceRepo

import (
	"context"
	"fmt"
	"time"

	"crewdesk/database"
	"crewdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAbsenceRepo implements AbsenceRepository using MongoDB.
type MongoAbsenceRepo struct {
	coll *mongo.Collection
}

// NewMongoAbsenceRepo constructs a new instance of MongoAbsenceRepo.
func NewMongoAbsenceRepo() AbsenceRepository {
	db := database.MongoClient.Database("crewdesk")
	return &MongoAbsenceRepo{coll: db.Collection("absences")}
}

// FindOverlapping retrieves all absence periods for the given employees that
// intersect the half-open interval iv.
func (repo *MongoAbsenceRepo) FindOverlapping(employeeIDs []string, iv models.Interval) ([]models.AbsencePeriod, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"employee_id": bson.M{"$in": employeeIDs},
		"start":       bson.M{"$lt": iv.End},
		"end":         bson.M{"$gt": iv.Start},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching absence periods: %w", err)
	}
	defer cursor.Close(ctx)

	var absences []models.AbsencePeriod
	for cursor.Next(ctx) {
		var a models.AbsencePeriod
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding absence period: %w", err)
		}
		absences = append(absences, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return absences, nil
}
