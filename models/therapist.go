package models

import "time"

// Therapist is the browsable care-provider profile.
type Therapist struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Title           string    `bson:"title" json:"title"` // e.g. "Clinical Psychologist"
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialties     []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Languages       []string  `bson:"languages,omitempty" json:"languages,omitempty"`
	YearsExperience int       `bson:"yearsExperience,omitempty" json:"yearsExperience,omitempty"`
	AvatarURL       string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
