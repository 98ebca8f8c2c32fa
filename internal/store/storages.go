package store

import "github.com/checkoutewb/backend/internal/logger"

// Storages aggregates all repositories behind their interfaces so the
// service layer receives a single dependency.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
	BidRepository  BidRepository
	FlagRepository FlagRepository
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
		BidRepository:  NewBidRepository(db, logger),
		FlagRepository: NewFlagRepository(db, logger),
	}
}
