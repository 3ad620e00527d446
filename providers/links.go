package providers

import (
	"trackfinder/types"
)

// Synthesize builds the marketplace search links for an artist/title pair.
// It never fails: empty inputs just give a near-empty query.
func Synthesize(artist, title string) types.MarketplaceLinks {
	track := types.InputTrack{Name: title, Artist: artist}

	return types.MarketplaceLinks{
		BandcampURL: BandcampProvider{}.SearchURL(&track),
		AmazonURL:   AmazonMusicProvider{}.SearchURL(&track),
	}
}
