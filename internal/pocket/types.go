package pocket

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// Uint64 is a uint64 that can unmarshal from a JSON number or string.
type Uint64 uint64

func (u *Uint64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*u = 0
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*u = 0
			return nil
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		// Some endpoints emit fractional values for integral fields.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f < 0 || f >= math.MaxUint64 || math.IsNaN(f) {
			return fmt.Errorf("parse uint64 from %q: %w", s, err)
		}
		v = uint64(f)
	}
	*u = Uint64(v)
	return nil
}

// BoolInt is a bool that can unmarshal from JSON bool, number (0/1), or string ("0"/"1").
type BoolInt bool

func (bi *BoolInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*bi = false
		return nil
	case bytes.Equal(b, []byte("true")):
		*bi = true
		return nil
	}
	var n Uint64
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*bi = n != 0
	return nil
}

// Timestamp is a unix time in seconds; Pocket uses "0" for "never".
type Timestamp Uint64

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	return (*Uint64)(t).UnmarshalJSON(b)
}

// Time returns nil for the zero timestamp.
func (t Timestamp) Time() *time.Time {
	if t == 0 {
		return nil
	}
	v := time.Unix(int64(t), 0).UTC()
	return &v
}

// Has is the tri-state used by has_image and has_video.
type Has uint8

const (
	HasNo Has = iota
	HasYes
	HasIs
)

func (h *Has) UnmarshalJSON(b []byte) error {
	var n Uint64
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	if n > Uint64(HasIs) {
		return fmt.Errorf("unexpected has value %d", n)
	}
	*h = Has(n)
	return nil
}

type ItemStatus uint8

const (
	StatusNormal ItemStatus = iota
	StatusArchived
	StatusDeleted
)

func (s *ItemStatus) UnmarshalJSON(b []byte) error {
	var n Uint64
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	if n > Uint64(StatusDeleted) {
		return fmt.Errorf("unexpected item status %d", n)
	}
	*s = ItemStatus(n)
	return nil
}

// Collection decodes either a JSON array or an object keyed by id. Pocket
// sends an empty array instead of an empty object, and objects for
// non-empty sets. Object values keep the order of the document, which is
// the order a sorted /v3/get asked for.
type Collection[T any] []T

func (c *Collection[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = nil
		return nil
	}
	if b[0] == '[' {
		var list []T
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*c = list
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if tok, err := dec.Token(); err != nil {
		return err
	} else if tok != json.Delim('{') {
		return fmt.Errorf("collection: unexpected %v", tok)
	}
	out := []T{}
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return err
		}
		var v T
		if err := dec.Decode(&v); err != nil {
			return err
		}
		out = append(out, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("collection: trailing data")
	}
	*c = out
	return nil
}

// sortBySortID orders items by the position Pocket assigned them. Items
// with equal sort ids keep their relative order.
func sortBySortID(items []Item) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortID < items[j].SortID })
}

type User struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

type ItemTag struct {
	ItemID Uint64 `json:"item_id"`
	Tag    string `json:"tag"`
}

type ItemImage struct {
	ItemID  Uint64 `json:"item_id"`
	ImageID Uint64 `json:"image_id"`
	Src     string `json:"src"`
	Width   Uint64 `json:"width"`
	Height  Uint64 `json:"height"`
	Credit  string `json:"credit"`
	Caption string `json:"caption"`
}

type ItemVideo struct {
	ItemID  Uint64  `json:"item_id"`
	VideoID Uint64  `json:"video_id"`
	Src     string  `json:"src"`
	Width   Uint64  `json:"width"`
	Height  Uint64  `json:"height"`
	Length  *Uint64 `json:"length"`
	Vid     string  `json:"vid"`
	Type    Uint64  `json:"type"`
}

type ItemAuthor struct {
	ItemID   Uint64 `json:"item_id"`
	AuthorID Uint64 `json:"author_id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

type DomainMetadata struct {
	Name          string `json:"name"`
	Logo          string `json:"logo"`
	GreyscaleLogo string `json:"greyscale_logo"`
}

// Item is one entry of a /v3/get response.
type Item struct {
	ItemID                 Uint64                 `json:"item_id"`
	ResolvedID             Uint64                 `json:"resolved_id"`
	GivenURL               string                 `json:"given_url"`
	GivenTitle             string                 `json:"given_title"`
	Favorite               BoolInt                `json:"favorite"`
	Status                 ItemStatus             `json:"status"`
	TimeAdded              Timestamp              `json:"time_added"`
	TimeUpdated            Timestamp              `json:"time_updated"`
	TimeRead               Timestamp              `json:"time_read"`
	TimeFavorited          Timestamp              `json:"time_favorited"`
	SortID                 Uint64                 `json:"sort_id"`
	ResolvedTitle          string                 `json:"resolved_title"`
	ResolvedURL            string                 `json:"resolved_url"`
	Excerpt                string                 `json:"excerpt"`
	IsArticle              BoolInt                `json:"is_article"`
	IsIndex                BoolInt                `json:"is_index"`
	HasVideo               Has                    `json:"has_video"`
	HasImage               Has                    `json:"has_image"`
	WordCount              Uint64                 `json:"word_count"`
	Lang                   string                 `json:"lang"`
	TimeToRead             *Uint64                `json:"time_to_read"`
	TopImageURL            string                 `json:"top_image_url"`
	AmpURL                 string                 `json:"amp_url"`
	ListenDurationEstimate *Uint64                `json:"listen_duration_estimate"`
	DomainMetadata         *DomainMetadata        `json:"domain_metadata"`
	Tags                   Collection[ItemTag]    `json:"tags"`
	Authors                Collection[ItemAuthor] `json:"authors"`
	Image                  *ItemImage             `json:"image"`
	Images                 Collection[ItemImage]  `json:"images"`
	Videos                 Collection[ItemVideo]  `json:"videos"`
}

// AddedItem is the "item" object of a /v3/add response.
type AddedItem struct {
	ItemID         Uint64                 `json:"item_id"`
	NormalURL      string                 `json:"normal_url"`
	ResolvedID     Uint64                 `json:"resolved_id"`
	ExtendedItemID Uint64                 `json:"extended_item_id"`
	ResolvedURL    string                 `json:"resolved_url"`
	DomainID       Uint64                 `json:"domain_id"`
	ResponseCode   Uint64                 `json:"response_code"`
	MimeType       string                 `json:"mime_type"`
	Title          string                 `json:"title"`
	Excerpt        string                 `json:"excerpt"`
	WordCount      Uint64                 `json:"word_count"`
	LoginRequired  BoolInt                `json:"login_required"`
	HasImage       Has                    `json:"has_image"`
	HasVideo       Has                    `json:"has_video"`
	IsIndex        BoolInt                `json:"is_index"`
	IsArticle      BoolInt                `json:"is_article"`
	Lang           string                 `json:"lang"`
	GivenURL       string                 `json:"given_url"`
	Authors        Collection[ItemAuthor] `json:"authors"`
	Images         Collection[ItemImage]  `json:"images"`
	Videos         Collection[ItemVideo]  `json:"videos"`
}

type ActionError struct {
	Code    Uint64 `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SendResponse is the body of a /v3/send response. ActionResults holds one
// raw entry per action: usually a bool, an object for "add" actions.
type SendResponse struct {
	Status        Uint64            `json:"status"`
	ActionResults []json.RawMessage `json:"action_results"`
	ActionErrors  []*ActionError    `json:"action_errors"`
}
