package providers

import (
	"fmt"

	"trackfinder/types"
	"trackfinder/utils"
)

const BandcampSearchURL = "https://bandcamp.com/search"

type BandcampProvider struct{}

func (p BandcampProvider) GetProviderName() string {
	return BANDCAMP_PROVIDER
}

// example: https://bandcamp.com/search?q=artist-handle%20Cool%20Track
func (p BandcampProvider) SearchURL(track *types.InputTrack) string {
	return fmt.Sprintf("%s?q=%s", BandcampSearchURL, utils.QueryEscape(track.Query()))
}
