package integration

import "time"

// Employer is the source-system employer aggregate. It is created and updated
// in the Jobs Board; the bridge only reads it.
type Employer struct {
	// ID is the stable UUID assigned by the source system
	ID string
	// Name is the employer's display name
	Name string
	// Description is the employer's free-text bio
	Description string
	// Sector is a category value in the employer_sector group
	Sector string
	// Status is a category value in the employer_status group
	Status string
	// CreatedAt is set by the source system
	CreatedAt time.Time
	// LastModifiedAt is set by the source system
	LastModifiedAt time.Time
}
