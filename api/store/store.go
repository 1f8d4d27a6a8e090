/* store.go
 * Contains the store struct and NewStore function. Template profiles are stored in Mongo so that they can be edited
 * without redeploying the bot. The methods for the template_profiles collection are in template_profiles.go
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Timeout applied to every database operation
const opTimeout = 5 * time.Second

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		TemplateProfiles *mongo.Collection
	}
}

// Function for initialsing Store. Initialises db connection and collection values
// Preconditions: Receives strings containing the dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" || mongoURI == "" {
		return nil, fmt.Errorf("dbName and mongoURI cannot be empty")
	}

	ctx, cancel := opContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.TemplateProfiles = db.Collection("template_profiles")
	return s, nil
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}
