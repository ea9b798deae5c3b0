/* store.go
 * Contains the Store struct and NewStore function. The methods for this package
 * were split across matches.go and players.go, each holding the methods for
 * interacting with that collection.
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	EventID     string
	EventType   string
	Collections struct {
		Matches *mongo.Collection
		Players *mongo.Collection
	}
}

// Function for initialising Store. Sets event scope and initialises db connection
// Preconditions: Receives strings containing the following: dbName, mongoURI, eventID and eventType
// Postconditions: Sets collection values and returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string, eventID string, eventType string) (*Store, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	if eventID == "" || eventType == "" {
		return nil, fmt.Errorf("eventID or eventType cannot be empty")
	}

	store := &Store{
		Client:    client,
		Database:  db,
		EventID:   eventID,
		EventType: eventType,
	}
	store.Collections.Matches = db.Collection("matches")
	store.Collections.Players = db.Collection("players")
	return store, nil
}
