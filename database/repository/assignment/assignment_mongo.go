package assignmentRepo

import (
	"context"
	"fmt"
	"time"

	"crewdesk/database"
	"crewdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAssignmentRepo implements AssignmentRepository using MongoDB.
// Assignments are stored denormalized, one document per employee per event,
// so the primary and support records share a shape.
type MongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo constructs a new instance of MongoAssignmentRepo.
func NewMongoAssignmentRepo() AssignmentRepository {
	db := database.MongoClient.Database("crewdesk")
	return &MongoAssignmentRepo{coll: db.Collection("assignments")}
}

// FindForInterval retrieves assignments overlapping iv for the given
// employees, filtered by status server-side.
func (repo *MongoAssignmentRepo) FindForInterval(employeeIDs []string, iv models.Interval, statuses []string) ([]models.EventAssignment, error) {
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
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching event assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.EventAssignment
	for cursor.Next(ctx) {
		var ea models.EventAssignment
		if err := cursor.Decode(&ea); err != nil {
			return nil, fmt.Errorf("error decoding event assignment: %w", err)
		}
		assignments = append(assignments, ea)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return assignments, nil
}
