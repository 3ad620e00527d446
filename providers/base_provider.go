package providers

import (
	"trackfinder/types"
)

const (
	BANDCAMP_PROVIDER     = "bandcamp"
	AMAZON_MUSIC_PROVIDER = "amazon_music"
)

// MarketplaceProvider builds a search link for a track on a store where it
// can be bought or downloaded.
type MarketplaceProvider interface {
	GetProviderName() string
	SearchURL(track *types.InputTrack) string
}
