// internal/domain/models/tool.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tool types
const (
	ToolTypePaid   = "paid"
	ToolTypeUnpaid = "unpaid"
)

// Tool is one entry in the catalog.
type Tool struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Type        string             `bson:"type" json:"type"` // paid, unpaid
	URL         string             `bson:"url" json:"url"`
	Icon        string             `bson:"icon" json:"icon"`
	Description string             `bson:"description" json:"description"`

	// SeedBatch tags all tools inserted by one seeding run, so a botched
	// import can be identified and removed by hand.
	SeedBatch string `bson:"seed_batch,omitempty" json:"-"`
}

// IsValidToolType checks if a tool type is valid.
func IsValidToolType(t string) bool {
	return t == ToolTypePaid || t == ToolTypeUnpaid
}
