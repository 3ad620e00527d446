package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/gommon/log"

	"trackfinder/types"
	"trackfinder/utils"
)

const (
	SoundCloudBaseURL   = "https://soundcloud.com"
	SoundCloudOEmbedURL = "https://soundcloud.com/oembed"

	DefaultSearchLimit = 5
)

// SoundCloudOEmbedResponse is the part of SoundCloud's oEmbed reply we use.
type SoundCloudOEmbedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	HTML       string `json:"html"`
}

type SoundCloudSearchConfig struct {
	BaseURL   string
	OEmbedURL string
	Limit     int
	Profile   utils.HeaderProfile
}

func DefaultSoundCloudSearchConfig() SoundCloudSearchConfig {
	return SoundCloudSearchConfig{
		BaseURL:   SoundCloudBaseURL,
		OEmbedURL: SoundCloudOEmbedURL,
		Limit:     DefaultSearchLimit,
		Profile:   utils.DefaultProfile,
	}
}

// SoundCloudSearch runs a keyword search on SoundCloud and turns the result
// links into embeddable players.
type SoundCloudSearch struct {
	fetcher *utils.Fetcher
	config  SoundCloudSearchConfig
}

func NewSoundCloudSearch(fetcher *utils.Fetcher, config SoundCloudSearchConfig) *SoundCloudSearch {
	if config.Limit <= 0 {
		config.Limit = DefaultSearchLimit
	}
	return &SoundCloudSearch{fetcher: fetcher, config: config}
}

func (s *SoundCloudSearch) GetProviderName() string {
	return "soundcloud"
}

func (s *SoundCloudSearch) SearchURL(keywords string) string {
	return fmt.Sprintf("%s/search?q=%s", s.config.BaseURL, utils.QueryEscape(keywords))
}

// Search fetches the results page and keeps scanning candidate links until
// Limit of them produced an embed or the page runs out. Candidates whose
// oEmbed lookup fails are skipped and do not count towards the limit.
func (s *SoundCloudSearch) Search(keywords string) (*types.SearchResultSet, error) {
	searchURL := s.SearchURL(keywords)

	log.Infof("soundcloud search: %q", keywords)

	page, err := s.fetcher.Fetch(searchURL, s.config.Profile)
	if err != nil {
		return nil, types.NewFetchError(types.SoundCloud, err)
	}

	doc, err := utils.NewDocument(page.Body)
	if err != nil {
		return nil, &types.ExtractError{Kind: types.ErrExtraction, Source: types.SoundCloud, Err: err}
	}

	tracks := []types.TrackReference{}
	candidates := 0

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")

		if !IsTrackLink(href) {
			return true
		}

		candidates++
		trackURL := utils.ResolveURL(s.config.BaseURL, href)

		embed, err := s.embed(trackURL)
		if err != nil {
			log.Debugf("skipping %s: %v", trackURL, err)
			return true
		}

		tracks = append(tracks, types.TrackReference{
			URL:       trackURL,
			EmbedHTML: embed,
		})

		return len(tracks) < s.config.Limit
	})

	log.Infof("soundcloud search: %d tracks from %d candidates", len(tracks), candidates)

	return &types.SearchResultSet{
		SearchURL: searchURL,
		Tracks:    tracks,
	}, nil
}

// IsTrackLink reports whether href has the shape of a SoundCloud track:
// either a /tracks/ API path or a "/user/track-slug" path.
func IsTrackLink(href string) bool {
	return strings.Contains(href, "/tracks/") || len(strings.Split(href, "/")) == 3
}

func (s *SoundCloudSearch) embed(trackURL string) (string, error) {
	oembedURL := fmt.Sprintf("%s?url=%s&format=json", s.config.OEmbedURL, utils.QueryEscape(trackURL))

	page, err := s.fetcher.Fetch(oembedURL, s.config.Profile)
	if err != nil {
		return "", err
	}

	var resp SoundCloudOEmbedResponse
	if err := json.Unmarshal(page.Body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode oEmbed response: %w", err)
	}

	if resp.HTML == "" {
		return "", errors.New("oEmbed response has no html")
	}

	return resp.HTML, nil
}
