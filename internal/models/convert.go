package models

import (
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

func hasFrom(h pocket.Has) ItemHas {
	switch h {
	case pocket.HasYes:
		return HasYes
	case pocket.HasIs:
		return HasIs
	default:
		return HasNo
	}
}

func statusFrom(s pocket.ItemStatus) ItemStatus {
	switch s {
	case pocket.StatusArchived:
		return StatusArchived
	case pocket.StatusDeleted:
		return StatusDeleted
	default:
		return StatusNormal
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optUint(v *pocket.Uint64) *uint64 {
	if v == nil {
		return nil
	}
	u := uint64(*v)
	return &u
}

// FromAddedItem maps a /v3/add result. Fields Pocket only reports for
// saved items (timestamps, favorite, status, tags, sort id) stay nil.
func FromAddedItem(p pocket.AddedItem) Item {
	return Item{
		ItemID:        uint64(p.ItemID),
		GivenURL:      p.GivenURL,
		WordCount:     uint64(p.WordCount),
		Excerpt:       p.Excerpt,
		IsIndex:       bool(p.IsIndex),
		IsArticle:     bool(p.IsArticle),
		HasImage:      hasFrom(p.HasImage),
		HasVideo:      hasFrom(p.HasVideo),
		ResolvedID:    uint64(p.ResolvedID),
		ResolvedTitle: optString(p.Title),
		ResolvedURL:   optString(p.ResolvedURL),
		Images:        mapImages(p.Images),
		Videos:        mapVideos(p.Videos),
		Authors:       mapAuthors(p.Authors),
		Lang:          optString(p.Lang),
	}
}

// FromItem maps one /v3/get list entry.
func FromItem(p pocket.Item) Item {
	fav := bool(p.Favorite)
	status := statusFrom(p.Status)
	it := Item{
		ItemID:                 uint64(p.ItemID),
		GivenURL:               p.GivenURL,
		GivenTitle:             optString(p.GivenTitle),
		WordCount:              uint64(p.WordCount),
		Excerpt:                p.Excerpt,
		TimeAdded:              p.TimeAdded.Time(),
		TimeRead:               p.TimeRead.Time(),
		TimeUpdated:            p.TimeUpdated.Time(),
		TimeFavorited:          p.TimeFavorited.Time(),
		Favorite:               &fav,
		IsIndex:                bool(p.IsIndex),
		IsArticle:              bool(p.IsArticle),
		HasImage:               hasFrom(p.HasImage),
		HasVideo:               hasFrom(p.HasVideo),
		ResolvedID:             uint64(p.ResolvedID),
		ResolvedTitle:          optString(p.ResolvedTitle),
		ResolvedURL:            optString(p.ResolvedURL),
		Status:                 &status,
		Images:                 mapImages(p.Images),
		Videos:                 mapVideos(p.Videos),
		Authors:                mapAuthors(p.Authors),
		Lang:                   optString(p.Lang),
		TimeToRead:             optUint(p.TimeToRead),
		ListenDurationEstimate: optUint(p.ListenDurationEstimate),
		AmpURL:                 optString(p.AmpURL),
		TopImageURL:            optString(p.TopImageURL),
	}
	if p.SortID != 0 {
		sortID := uint64(p.SortID)
		it.SortID = &sortID
	}
	for _, t := range p.Tags {
		it.Tags = append(it.Tags, t.Tag)
	}
	if p.DomainMetadata != nil {
		it.DomainMetadata = &DomainMetadata{
			Name:          optString(p.DomainMetadata.Name),
			Logo:          p.DomainMetadata.Logo,
			GreyscaleLogo: p.DomainMetadata.GreyscaleLogo,
		}
	}
	if p.Image != nil {
		// The top image carries no id, credit or caption.
		it.Image = &Image{
			ItemID: uint64(p.Image.ItemID),
			Src:    p.Image.Src,
			Width:  uint64(p.Image.Width),
			Height: uint64(p.Image.Height),
		}
	}
	return it
}

func FromItems(items []pocket.Item) ItemList {
	out := ItemList{Items: make([]Item, 0, len(items))}
	for _, p := range items {
		out.Items = append(out.Items, FromItem(p))
	}
	return out
}

func mapImages(in []pocket.ItemImage) []Image {
	if len(in) == 0 {
		return nil
	}
	out := make([]Image, 0, len(in))
	for _, i := range in {
		id := uint64(i.ImageID)
		out = append(out, Image{
			ItemID:  uint64(i.ItemID),
			ImageID: &id,
			Src:     i.Src,
			Width:   uint64(i.Width),
			Height:  uint64(i.Height),
			Credit:  optString(i.Credit),
			Caption: optString(i.Caption),
		})
	}
	return out
}

func mapVideos(in []pocket.ItemVideo) []Video {
	if len(in) == 0 {
		return nil
	}
	out := make([]Video, 0, len(in))
	for _, v := range in {
		out = append(out, Video{
			ItemID:  uint64(v.ItemID),
			VideoID: uint64(v.VideoID),
			Src:     v.Src,
			Width:   uint64(v.Width),
			Height:  uint64(v.Height),
			Length:  optUint(v.Length),
			Vid:     v.Vid,
			Type:    uint64(v.Type),
		})
	}
	return out
}

func mapAuthors(in []pocket.ItemAuthor) []Author {
	if len(in) == 0 {
		return nil
	}
	out := make([]Author, 0, len(in))
	for _, a := range in {
		out = append(out, Author{
			ItemID:   uint64(a.ItemID),
			AuthorID: uint64(a.AuthorID),
			Name:     a.Name,
			URL:      a.URL,
		})
	}
	return out
}
