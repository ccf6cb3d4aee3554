package pocket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type AddRequest struct {
	URL     string
	Title   string
	Tags    []string
	TweetID string
}

type State string

const (
	StateUnread  State = "unread"
	StateArchive State = "archive"
	StateAll     State = "all"
)

func ParseState(s string) (State, error) {
	switch v := State(s); v {
	case StateUnread, StateArchive, StateAll:
		return v, nil
	}
	return "", fmt.Errorf("invalid state %q (expected unread, archive, or all)", s)
}

type ContentType string

const (
	ContentArticle ContentType = "article"
	ContentVideo   ContentType = "video"
	ContentImage   ContentType = "image"
)

func ParseContentType(s string) (ContentType, error) {
	switch v := ContentType(s); v {
	case ContentArticle, ContentVideo, ContentImage:
		return v, nil
	}
	return "", fmt.Errorf("invalid content type %q (expected article, video, or image)", s)
}

type DetailType string

const (
	DetailSimple   DetailType = "simple"
	DetailComplete DetailType = "complete"
)

func ParseDetailType(s string) (DetailType, error) {
	switch v := DetailType(s); v {
	case DetailSimple, DetailComplete:
		return v, nil
	}
	return "", fmt.Errorf("invalid detail type %q (expected simple or complete)", s)
}

type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortTitle  Sort = "title"
	SortSite   Sort = "site"
)

func ParseSort(s string) (Sort, error) {
	switch v := Sort(s); v {
	case SortNewest, SortOldest, SortTitle, SortSite:
		return v, nil
	}
	return "", fmt.Errorf("invalid sort %q (expected newest, oldest, title, or site)", s)
}

// TagFilter selects items carrying Name, or items without tags when
// Untagged is set.
type TagFilter struct {
	Name     string
	Untagged bool
}

func Tagged(name string) *TagFilter { return &TagFilter{Name: name} }

func Untagged() *TagFilter { return &TagFilter{Untagged: true} }

func (t TagFilter) param() string {
	if t.Untagged {
		return "_untagged_"
	}
	return t.Name
}

// GetRequest filters a /v3/get call. Nil fields are not sent.
type GetRequest struct {
	Search      *string
	Domain      *string
	Tag         *TagFilter
	State       *State
	ContentType *ContentType
	DetailType  *DetailType
	Favorite    *bool
	Since       *time.Time
	Sort        *Sort
	Count       *int
	Offset      *int
}

func (r GetRequest) body() map[string]any {
	m := map[string]any{}
	if r.Search != nil {
		m["search"] = *r.Search
	}
	if r.Domain != nil {
		m["domain"] = *r.Domain
	}
	if r.Tag != nil {
		m["tag"] = r.Tag.param()
	}
	if r.State != nil {
		m["state"] = string(*r.State)
	}
	if r.ContentType != nil {
		m["contentType"] = string(*r.ContentType)
	}
	if r.DetailType != nil {
		m["detailType"] = string(*r.DetailType)
	}
	if r.Favorite != nil {
		if *r.Favorite {
			m["favorite"] = "1"
		} else {
			m["favorite"] = "0"
		}
	}
	if r.Since != nil {
		m["since"] = strconv.FormatInt(r.Since.Unix(), 10)
	}
	if r.Sort != nil {
		m["sort"] = string(*r.Sort)
	}
	if r.Count != nil {
		m["count"] = strconv.Itoa(*r.Count)
	}
	if r.Offset != nil {
		m["offset"] = strconv.Itoa(*r.Offset)
	}
	return m
}

type ActionKind string

const (
	ActionArchive     ActionKind = "archive"
	ActionReadd       ActionKind = "readd"
	ActionFavorite    ActionKind = "favorite"
	ActionUnfavorite  ActionKind = "unfavorite"
	ActionDelete      ActionKind = "delete"
	ActionTagsAdd     ActionKind = "tags_add"
	ActionTagsRemove  ActionKind = "tags_remove"
	ActionTagsReplace ActionKind = "tags_replace"
	ActionTagsClear   ActionKind = "tags_clear"
	ActionTagRename   ActionKind = "tag_rename"
	ActionTagDelete   ActionKind = "tag_delete"
)

// Action is one entry of a /v3/send batch. Which fields apply depends on
// Kind: item actions use ItemID, the tags_* list actions also use Tags,
// tag_rename uses OldTag/NewTag and tag_delete uses Tag.
type Action struct {
	Kind   ActionKind
	ItemID uint64
	Tags   []string
	Tag    string
	OldTag string
	NewTag string
	Time   *time.Time
}

func ItemAction(kind ActionKind, itemID uint64, at *time.Time) Action {
	return Action{Kind: kind, ItemID: itemID, Time: at}
}

func TagsAction(kind ActionKind, itemID uint64, tags []string, at *time.Time) Action {
	return Action{Kind: kind, ItemID: itemID, Tags: tags, Time: at}
}

func RenameTag(oldTag, newTag string, at *time.Time) Action {
	return Action{Kind: ActionTagRename, OldTag: oldTag, NewTag: newTag, Time: at}
}

func DeleteTag(tag string, at *time.Time) Action {
	return Action{Kind: ActionTagDelete, Tag: tag, Time: at}
}

func (a Action) Validate() error {
	switch a.Kind {
	case ActionArchive, ActionReadd, ActionFavorite, ActionUnfavorite, ActionDelete, ActionTagsClear,
		ActionTagsAdd, ActionTagsRemove, ActionTagsReplace:
		if a.ItemID == 0 {
			return fmt.Errorf("%s: item id is required", a.Kind)
		}
	case ActionTagRename:
		if a.OldTag == "" || a.NewTag == "" {
			return errors.New("tag_rename: old and new tag are required")
		}
	case ActionTagDelete:
		if a.Tag == "" {
			return errors.New("tag_delete: tag is required")
		}
	default:
		return fmt.Errorf("unknown action %q", a.Kind)
	}
	return nil
}

type wireAction struct {
	Action string `json:"action"`
	ItemID string `json:"item_id,omitempty"`
	Tags   string `json:"tags,omitempty"`
	Tag    string `json:"tag,omitempty"`
	OldTag string `json:"old_tag,omitempty"`
	NewTag string `json:"new_tag,omitempty"`
	Time   string `json:"time,omitempty"`
}

func (a Action) wire() wireAction {
	w := wireAction{
		Action: string(a.Kind),
		Tag:    a.Tag,
		OldTag: a.OldTag,
		NewTag: a.NewTag,
	}
	if a.ItemID != 0 {
		w.ItemID = strconv.FormatUint(a.ItemID, 10)
	}
	if len(a.Tags) > 0 {
		w.Tags = strings.Join(a.Tags, ",")
	}
	if a.Time != nil {
		w.Time = strconv.FormatInt(a.Time.Unix(), 10)
	}
	return w
}

type SendRequest struct {
	Actions []Action
}
