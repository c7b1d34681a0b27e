package models

import "time"

// Person is a profile record stored in MongoDB. Preferences drive the
// working-window computation; PrimaryCalendarID is used when a request names
// no calendars for this person.
type Person struct {
	ID                string      `bson:"id" json:"id"`
	Email             string      `bson:"email" json:"email"`
	Name              string      `bson:"name" json:"name"`
	PrimaryCalendarID string      `bson:"primaryCalendarId" json:"primaryCalendarId"`
	Preferences       Preferences `bson:"preferences" json:"preferences"`
	CreatedAt         time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time   `bson:"updatedAt" json:"updatedAt"`
}
