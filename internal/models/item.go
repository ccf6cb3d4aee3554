// Package models holds the shapes the CLI prints. They are decoupled from
// the Pocket wire types: optional fields are pointers or nil slices and are
// left out of the output when a response does not carry them.
package models

import (
	"time"
)

type ItemHas string

const (
	HasNo  ItemHas = "No"
	HasYes ItemHas = "Yes"
	HasIs  ItemHas = "Is"
)

type ItemStatus string

const (
	StatusNormal   ItemStatus = "Normal"
	StatusArchived ItemStatus = "Archived"
	StatusDeleted  ItemStatus = "Deleted"
)

type Item struct {
	ItemID                 uint64          `json:"item_id" yaml:"item_id" toml:"item_id"`
	GivenURL               string          `json:"given_url" yaml:"given_url" toml:"given_url"`
	GivenTitle             *string         `json:"given_title,omitempty" yaml:"given_title,omitempty" toml:"given_title,omitempty"`
	WordCount              uint64          `json:"word_count" yaml:"word_count" toml:"word_count"`
	Excerpt                string          `json:"excerpt" yaml:"excerpt" toml:"excerpt"`
	TimeAdded              *time.Time      `json:"time_added,omitempty" yaml:"time_added,omitempty" toml:"time_added,omitempty"`
	TimeRead               *time.Time      `json:"time_read,omitempty" yaml:"time_read,omitempty" toml:"time_read,omitempty"`
	TimeUpdated            *time.Time      `json:"time_updated,omitempty" yaml:"time_updated,omitempty" toml:"time_updated,omitempty"`
	TimeFavorited          *time.Time      `json:"time_favorited,omitempty" yaml:"time_favorited,omitempty" toml:"time_favorited,omitempty"`
	Favorite               *bool           `json:"favorite,omitempty" yaml:"favorite,omitempty" toml:"favorite,omitempty"`
	IsIndex                bool            `json:"is_index" yaml:"is_index" toml:"is_index"`
	IsArticle              bool            `json:"is_article" yaml:"is_article" toml:"is_article"`
	HasImage               ItemHas         `json:"has_image" yaml:"has_image" toml:"has_image"`
	HasVideo               ItemHas         `json:"has_video" yaml:"has_video" toml:"has_video"`
	ResolvedID             uint64          `json:"resolved_id" yaml:"resolved_id" toml:"resolved_id"`
	ResolvedTitle          *string         `json:"resolved_title,omitempty" yaml:"resolved_title,omitempty" toml:"resolved_title,omitempty"`
	ResolvedURL            *string         `json:"resolved_url,omitempty" yaml:"resolved_url,omitempty" toml:"resolved_url,omitempty"`
	SortID                 *uint64         `json:"sort_id,omitempty" yaml:"sort_id,omitempty" toml:"sort_id,omitempty"`
	Status                 *ItemStatus     `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	Tags                   []string        `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Images                 []Image         `json:"images,omitempty" yaml:"images,omitempty" toml:"images,omitempty"`
	Videos                 []Video         `json:"videos,omitempty" yaml:"videos,omitempty" toml:"videos,omitempty"`
	Authors                []Author        `json:"authors,omitempty" yaml:"authors,omitempty" toml:"authors,omitempty"`
	Lang                   *string         `json:"lang,omitempty" yaml:"lang,omitempty" toml:"lang,omitempty"`
	TimeToRead             *uint64         `json:"time_to_read,omitempty" yaml:"time_to_read,omitempty" toml:"time_to_read,omitempty"`
	DomainMetadata         *DomainMetadata `json:"domain_metadata,omitempty" yaml:"domain_metadata,omitempty" toml:"domain_metadata,omitempty"`
	ListenDurationEstimate *uint64         `json:"listen_duration_estimate,omitempty" yaml:"listen_duration_estimate,omitempty" toml:"listen_duration_estimate,omitempty"`
	Image                  *Image          `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	AmpURL                 *string         `json:"amp_url,omitempty" yaml:"amp_url,omitempty" toml:"amp_url,omitempty"`
	TopImageURL            *string         `json:"top_image_url,omitempty" yaml:"top_image_url,omitempty" toml:"top_image_url,omitempty"`
}

type Image struct {
	ItemID  uint64  `json:"item_id" yaml:"item_id" toml:"item_id"`
	ImageID *uint64 `json:"image_id,omitempty" yaml:"image_id,omitempty" toml:"image_id,omitempty"`
	Src     string  `json:"src" yaml:"src" toml:"src"`
	Width   uint64  `json:"width" yaml:"width" toml:"width"`
	Height  uint64  `json:"height" yaml:"height" toml:"height"`
	Credit  *string `json:"credit,omitempty" yaml:"credit,omitempty" toml:"credit,omitempty"`
	Caption *string `json:"caption,omitempty" yaml:"caption,omitempty" toml:"caption,omitempty"`
}

type Video struct {
	ItemID  uint64  `json:"item_id" yaml:"item_id" toml:"item_id"`
	VideoID uint64  `json:"video_id" yaml:"video_id" toml:"video_id"`
	Src     string  `json:"src" yaml:"src" toml:"src"`
	Width   uint64  `json:"width" yaml:"width" toml:"width"`
	Height  uint64  `json:"height" yaml:"height" toml:"height"`
	Length  *uint64 `json:"length,omitempty" yaml:"length,omitempty" toml:"length,omitempty"`
	Vid     string  `json:"vid" yaml:"vid" toml:"vid"`
	Type    uint64  `json:"type" yaml:"type" toml:"type"`
}

type Author struct {
	ItemID   uint64 `json:"item_id" yaml:"item_id" toml:"item_id"`
	AuthorID uint64 `json:"author_id" yaml:"author_id" toml:"author_id"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	URL      string `json:"url" yaml:"url" toml:"url"`
}

type DomainMetadata struct {
	Name          *string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Logo          string  `json:"logo" yaml:"logo" toml:"logo"`
	GreyscaleLogo string  `json:"greyscale_logo" yaml:"greyscale_logo" toml:"greyscale_logo"`
}

// ItemList wraps get results so every output format, TOML included, has a
// table at the top level.
type ItemList struct {
	Items []Item `json:"items" yaml:"items" toml:"items"`
}
