package service

import (
	"context"
	"fmt"
	"io"

	"github.com/checkoutewb/backend/internal/adapter"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/store"
	"github.com/checkoutewb/backend/internal/validators"
	"github.com/checkoutewb/backend/models"
)

type itemService struct {
	items  store.ItemRepository
	images adapter.ImageStore
	logger *logger.Logger
}

// NewItemService returns the catalog administration service.
func NewItemService(items store.ItemRepository, images adapter.ImageStore, log *logger.Logger) ItemService {
	return &itemService{
		items:  items,
		images: images,
		logger: log.GetChildLogger(),
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.AuctionItem, error) {
	return s.items.ListItems(ctx)
}

func (s *itemService) ItemByName(ctx context.Context, name string) (models.AuctionItem, error) {
	if name == "" {
		return models.AuctionItem{}, fmt.Errorf("%w: item name is required", ErrInvalidDataProvided)
	}
	return s.items.FindItemByName(ctx, name)
}

func (s *itemService) CreateItem(ctx context.Context, upsert models.ItemUpsert, photo io.Reader) (models.AuctionItem, error) {
	if upsert.Name == "" {
		return models.AuctionItem{}, fmt.Errorf("%w: item name is required", ErrInvalidDataProvided)
	}
	if !upsert.StartingBid.IsPositive() {
		return models.AuctionItem{}, fmt.Errorf("%w: starting bid must be positive", ErrInvalidDataProvided)
	}

	item := models.AuctionItem{
		Name:        upsert.Name,
		Description: upsert.Description,
		Tags:        upsert.Tags,
		StartingBid: upsert.StartingBid,
		CurrentBid:  upsert.StartingBid,
	}

	uploaded := false
	if photo != nil {
		url, placeholder, err := s.images.Upload(ctx, item.Name, photo)
		if err != nil {
			return models.AuctionItem{}, fmt.Errorf("error processing item photo: %w", err)
		}
		item.Image = url
		item.ImagePlaceholder = placeholder
		uploaded = true
	}

	if err := s.items.CreateItem(ctx, item); err != nil {
		if uploaded {
			if cleanupErr := s.images.Delete(ctx, item.Name); cleanupErr != nil {
				s.logger.Warn().Err(cleanupErr).Str("item", item.Name).Msg("orphaned photo left in object storage")
			}
		}
		return models.AuctionItem{}, err
	}

	s.logger.Info().Str("item", item.Name).Msg("item created")

	return s.items.FindItemByName(ctx, item.Name)
}

func (s *itemService) UpdateItem(ctx context.Context, name string, patch models.ItemPatch, photo io.Reader) (models.AuctionItem, error) {
	if name == "" {
		return models.AuctionItem{}, fmt.Errorf("%w: item name is required", ErrInvalidDataProvided)
	}

	item, err := s.items.FindItemByName(ctx, name)
	if err != nil {
		return models.AuctionItem{}, err
	}

	update := store.ItemUpdate{
		Description: patch.Description,
		Tags:        patch.Tags,
	}

	if patch.StartingBid != nil {
		newStarting := *patch.StartingBid
		if !newStarting.IsPositive() {
			return models.AuctionItem{}, fmt.Errorf("%w: starting bid must be positive", ErrInvalidDataProvided)
		}
		if !validators.CanChangeStartingBid(item.BidState(), newStarting) {
			return models.AuctionItem{}, fmt.Errorf("%w: item %q", ErrStartingBidLocked, name)
		}
		if !newStarting.Equal(item.StartingBid) {
			update.StartingBid = &newStarting
			// No winner here, the guard above rejects the change otherwise.
			// The current bid tracks the floor until the first bid arrives.
			update.CurrentBid = &newStarting
		}
	}

	if photo != nil {
		url, placeholder, uploadErr := s.images.Upload(ctx, name, photo)
		if uploadErr != nil {
			return models.AuctionItem{}, fmt.Errorf("error processing item photo: %w", uploadErr)
		}
		update.Image = &url
		update.ImagePlaceholder = &placeholder
	}

	if isNoopUpdate(update) {
		return item, nil
	}

	if err = s.items.UpdateItem(ctx, name, update); err != nil {
		return models.AuctionItem{}, err
	}

	s.logger.Info().Str("item", name).Msg("item updated")

	return s.items.FindItemByName(ctx, name)
}

func isNoopUpdate(update store.ItemUpdate) bool {
	return update.Description == nil &&
		update.Tags == nil &&
		update.StartingBid == nil &&
		update.CurrentBid == nil &&
		update.Image == nil &&
		update.ImagePlaceholder == nil
}

func (s *itemService) DeleteItem(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidDataProvided)
	}

	if err := s.items.DeleteItem(ctx, name); err != nil {
		return err
	}

	// The row and its bids are already gone. A leftover photo is harmless,
	// so object-storage failures only warn.
	if err := s.images.Delete(ctx, name); err != nil {
		s.logger.Warn().Err(err).Str("item", name).Msg("error deleting item photo")
	}

	s.logger.Info().Str("item", name).Msg("item deleted")

	return nil
}
