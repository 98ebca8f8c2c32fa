package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/store"
	"github.com/checkoutewb/backend/internal/validators"
	"github.com/checkoutewb/backend/models"
)

type bidService struct {
	bids      store.BidRepository
	items     store.ItemRepository
	flags     store.FlagRepository
	validator *validators.BidValidator
	logger    *logger.Logger
}

// NewBidService returns the bid placement and feature-flag service.
func NewBidService(bids store.BidRepository, items store.ItemRepository, flags store.FlagRepository, validator *validators.BidValidator, log *logger.Logger) BidService {
	return &bidService{
		bids:      bids,
		items:     items,
		flags:     flags,
		validator: validator,
		logger:    log.GetChildLogger(),
	}
}

func (s *bidService) BiddingEnabled(ctx context.Context) (bool, error) {
	flag, err := s.flags.GetFlag(ctx, models.BiddingEnabledFlag)
	if err != nil {
		return false, err
	}
	return flag.Value, nil
}

func (s *bidService) SetBiddingEnabled(ctx context.Context, enabled bool) error {
	if err := s.flags.SetFlag(ctx, models.BiddingEnabledFlag, enabled); err != nil {
		return err
	}

	s.logger.Info().Bool("enabled", enabled).Msg("bidding mode changed")

	return nil
}

func (s *bidService) MinimumIncrement() decimal.Decimal {
	return s.validator.MinimumIncrement()
}

// PlaceBid checks the bidding flag before anything else. While bidding is
// disabled the item store is never touched, so a disabled auction leaks no
// information about which items exist.
func (s *bidService) PlaceBid(ctx context.Context, bidder string, req models.PlaceBidRequest) (models.AuctionItem, error) {
	enabled, err := s.BiddingEnabled(ctx)
	if err != nil {
		return models.AuctionItem{}, err
	}
	if !enabled {
		return models.AuctionItem{}, ErrBiddingDisabled
	}

	if req.ItemName == "" {
		return models.AuctionItem{}, fmt.Errorf("%w: item name is required", ErrInvalidDataProvided)
	}
	if !req.Bid.IsPositive() {
		return models.AuctionItem{}, fmt.Errorf("%w: bid must be positive", ErrInvalidDataProvided)
	}

	bid, err := s.bids.PlaceBid(ctx, req.ItemName, bidder, req.Bid, func(state models.BidState) error {
		return s.validator.Validate(state, req.Bid)
	})
	if err != nil {
		return models.AuctionItem{}, err
	}

	s.logger.Info().
		Str("item", bid.ItemName).
		Str("bidder", bid.Bidder).
		Str("amount", bid.Amount.String()).
		Msg("bid accepted")

	return s.items.FindItemByName(ctx, req.ItemName)
}

func (s *bidService) UserBidStatus(ctx context.Context, email string) (models.UserBidStatus, error) {
	winning, err := s.items.ListItemsByHolder(ctx, email)
	if err != nil {
		return models.UserBidStatus{}, err
	}

	bidNames, err := s.bids.ItemNamesBidByUser(ctx, email)
	if err != nil {
		return models.UserBidStatus{}, err
	}

	winningNames := make(map[string]struct{}, len(winning))
	for _, item := range winning {
		winningNames[item.Name] = struct{}{}
	}

	losingNames := make([]string, 0, len(bidNames))
	for _, name := range bidNames {
		if _, ok := winningNames[name]; !ok {
			losingNames = append(losingNames, name)
		}
	}

	losing, err := s.items.ListItemsByNames(ctx, losingNames)
	if err != nil {
		return models.UserBidStatus{}, err
	}

	return models.UserBidStatus{
		WinningBids: winning,
		LosingBids:  losing,
	}, nil
}
