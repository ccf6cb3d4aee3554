package models

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

// WriteText renders each item as a block of key/value lines separated by a
// blank line.
func (l ItemList) WriteText(w io.Writer) error {
	for i, it := range l.Items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := it.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}

func (it Item) WriteText(w io.Writer) error {
	tw := newTabWriter(w)
	kv := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s\t%s\n", k, v)
		}
	}
	u := func(v uint64) string { return strconv.FormatUint(v, 10) }
	kv("item_id", u(it.ItemID))
	kv("resolved_id", u(it.ResolvedID))
	kv("given_url", it.GivenURL)
	kv("given_title", oneLine(deref(it.GivenTitle)))
	kv("resolved_title", oneLine(deref(it.ResolvedTitle)))
	kv("resolved_url", deref(it.ResolvedURL))
	kv("amp_url", deref(it.AmpURL))
	kv("top_image_url", deref(it.TopImageURL))
	if it.Status != nil {
		kv("status", string(*it.Status))
	}
	if it.Favorite != nil {
		kv("favorite", strconv.FormatBool(*it.Favorite))
	}
	kv("is_index", strconv.FormatBool(it.IsIndex))
	kv("is_article", strconv.FormatBool(it.IsArticle))
	kv("has_image", string(it.HasImage))
	kv("has_video", string(it.HasVideo))
	kv("word_count", u(it.WordCount))
	kv("lang", deref(it.Lang))
	if it.TimeToRead != nil {
		kv("time_to_read", u(*it.TimeToRead))
	}
	if it.ListenDurationEstimate != nil {
		kv("listen_duration_estimate", u(*it.ListenDurationEstimate))
	}
	if it.SortID != nil {
		kv("sort_id", u(*it.SortID))
	}
	kv("tags", strings.Join(it.Tags, ","))
	kv("time_added", formatTime(it.TimeAdded))
	kv("time_updated", formatTime(it.TimeUpdated))
	kv("time_read", formatTime(it.TimeRead))
	kv("time_favorited", formatTime(it.TimeFavorited))
	if d := it.DomainMetadata; d != nil {
		kv("domain", deref(d.Name))
		kv("domain_logo", d.Logo)
		kv("domain_greyscale_logo", d.GreyscaleLogo)
	}
	if it.Image != nil {
		kv("image", it.Image.describe())
	}
	for _, img := range it.Images {
		kv("images", img.describe())
	}
	for _, v := range it.Videos {
		d := fmt.Sprintf("%d %s %dx%d vid=%s type=%d", v.VideoID, v.Src, v.Width, v.Height, v.Vid, v.Type)
		if v.Length != nil {
			d += fmt.Sprintf(" length=%d", *v.Length)
		}
		kv("videos", d)
	}
	for _, a := range it.Authors {
		kv("authors", fmt.Sprintf("%d %s %s", a.AuthorID, a.Name, a.URL))
	}
	kv("excerpt", oneLine(it.Excerpt))
	return tw.Flush()
}

func (img Image) describe() string {
	s := fmt.Sprintf("%s %dx%d", img.Src, img.Width, img.Height)
	if img.ImageID != nil {
		s = fmt.Sprintf("%d %s", *img.ImageID, s)
	}
	if img.Caption != nil {
		s += " " + strconv.Quote(*img.Caption)
	}
	if img.Credit != nil {
		s += " credit=" + strconv.Quote(*img.Credit)
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (u User) WriteText(w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "username\t%s\n", u.Username)
	fmt.Fprintf(tw, "access_token\t%s\n", u.AccessToken)
	return tw.Flush()
}

func (r SendResult) WriteText(w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "status\t%d\n", r.Status)
	fmt.Fprintf(tw, "result\t%v\n", r.ActionResult)
	if r.ActionError != nil {
		fmt.Fprintf(tw, "error\t%d %s\n", r.ActionError.Code, r.ActionError.Message)
	}
	return tw.Flush()
}

func (c ConfigValue) WriteText(w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%s\t%s\n", c.Key, c.Value)
	return tw.Flush()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

func (s Settings) WriteText(w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "consumer_key\t%s\n", s.ConsumerKey)
	fmt.Fprintf(tw, "access_token\t%s\n", s.AccessToken)
	return tw.Flush()
}
