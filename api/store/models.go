/* models.go
 * This file contains the structs that relate to DB objects not owned by the
 * match package.
 */

package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player is a community member record in the players collection. DuprID is
// the player's external rating identifier, empty until they link an account.
type Player struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId,omitempty"`
	DisplayName string             `bson:"displayName,omitempty"`
	DuprID      string             `bson:"duprId,omitempty"`
	EventIDs    []string           `bson:"eventIds,omitempty"`
}
