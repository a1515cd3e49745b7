package models

// RosterEntry is one person to measure. Role may be empty.
type RosterEntry struct {
	Person string `json:"person" bson:"person" binding:"required"`
	Role   string `json:"role,omitempty" bson:"role,omitempty"`
}
