package store

import "github.com/MKhiriev/gatherly/internal/logger"

// Storages bundles the repositories the services depend on.
type Storages struct {
	UserRepository    UserRepository
	VenueRepository   VenueRepository
	AmenityRepository AmenityRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		VenueRepository:   NewVenueRepository(db, logger),
		AmenityRepository: NewAmenityRepository(db, logger),
	}
}
