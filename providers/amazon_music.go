package providers

import (
	"fmt"

	"trackfinder/types"
	"trackfinder/utils"
)

const AmazonSearchURL = "https://www.amazon.com/s"

type AmazonMusicProvider struct{}

func (p AmazonMusicProvider) GetProviderName() string {
	return AMAZON_MUSIC_PROVIDER
}

// SearchURL restricts the Amazon search to the digital music department.
func (p AmazonMusicProvider) SearchURL(track *types.InputTrack) string {
	return fmt.Sprintf("%s?k=%s&i=digital-music", AmazonSearchURL, utils.QueryEscape(track.Query()))
}
