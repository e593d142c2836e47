package employeeRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"crewdesk/config"
	"crewdesk/database"
	"crewdesk/models"
	"crewdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Role expansions change rarely; a short cache keeps repeated calendar and
// availability queries off the employees collection.
const roleCacheTTL = 5 * time.Minute

// MongoEmployeeRepo implements EmployeeRepository using MongoDB with a Redis
// cache in front of role expansion.
type MongoEmployeeRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoEmployeeRepo constructs a new instance of MongoEmployeeRepo.
func NewMongoEmployeeRepo() EmployeeRepository {
	db := database.MongoClient.Database("crewdesk")
	return &MongoEmployeeRepo{
		coll:  db.Collection("employees"),
		cache: utils.GetCacheClient(),
	}
}

// GetByID retrieves an employee document by ID.
func (repo *MongoEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var emp models.Employee
	filter := bson.M{"id": id}
	if err := repo.coll.FindOne(ctx, filter).Decode(&emp); err != nil {
		return nil, fmt.Errorf("error fetching employee with id %s: %w", id, err)
	}
	return &emp, nil
}

// ExpandRoles resolves role IDs to active employee IDs, consulting the cache
// first. An empty roleIDs slice resolves the configured default roles.
func (repo *MongoEmployeeRepo) ExpandRoles(roleIDs []string) ([]string, error) {
	if len(roleIDs) == 0 {
		roleIDs = config.AppConfig.DefaultAvailabilityRoles
	}
	if len(roleIDs) == 0 {
		return nil, nil
	}

	key := roleCacheKey(roleIDs)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cached, err := repo.cache.Get(ctx, key).Result(); err == nil {
		var ids []string
		if err := json.Unmarshal([]byte(cached), &ids); err == nil {
			return ids, nil
		}
		// Corrupt cache entry; fall through to Mongo.
	}

	filter := bson.M{
		"role_ids": bson.M{"$in": roleIDs},
		"active":   true,
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error expanding roles: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var emp models.Employee
		if err := cursor.Decode(&emp); err != nil {
			return nil, fmt.Errorf("error decoding employee: %w", err)
		}
		ids = append(ids, emp.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	if data, err := json.Marshal(ids); err == nil {
		if err := repo.cache.Set(ctx, key, data, roleCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache role expansion",
				zap.String("key", key), zap.Error(err))
		}
	}
	return ids, nil
}

func roleCacheKey(roleIDs []string) string {
	sorted := append([]string(nil), roleIDs...)
	sort.Strings(sorted)
	return "roles:" + strings.Join(sorted, ",")
}
