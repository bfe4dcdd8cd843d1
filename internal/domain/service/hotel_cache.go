package service

import (
	"context"

	"travelhub/internal/domain/entity"
)

// HotelCache stores the hotel listing between reads.
// A miss is reported as (nil, false, nil).
type HotelCache interface {
	GetHotels(ctx context.Context) ([]*entity.Hotel, bool, error)
	SetHotels(ctx context.Context, hotels []*entity.Hotel) error
}
