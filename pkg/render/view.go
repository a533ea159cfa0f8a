package render

import "github.com/wanderlabs/pushkit/pkg/richpush"

// View is the common handle over per-variant view models and controllers.
type View interface {
	Kind() richpush.Type
}

// Build returns the view model or interaction controller for the
// notification's active variant. The switch is exhaustive over the closed
// variant set.
func Build(n richpush.Notification) (View, error) {
	switch {
	case n.Text != nil:
		return BuildText(n.Text), nil
	case n.Media != nil:
		return BuildMedia(n.Media), nil
	case n.Carousel != nil:
		return NewCarousel(n.Carousel)
	case n.List != nil:
		return BuildList(n.List), nil
	case n.Poll != nil:
		return NewPoll(n.Poll)
	case n.Card != nil:
		return BuildCard(n.Card), nil
	case n.Promo != nil:
		return NewPromo(n.Promo), nil
	}
	return nil, ErrNilPayload
}

// TextView renders title/body with an optional click-through target.
type TextView struct {
	Title       string
	Body        string
	ClickAction string
}

func (TextView) Kind() richpush.Type { return richpush.TypeText }

func BuildText(p *richpush.TextPayload) TextView {
	return TextView{Title: p.Title, Body: p.Body, ClickAction: p.ClickAction}
}

// MediaView renders type-appropriate playback: a still image, a looping
// autoplaying gif, or a video with controls and an optional poster frame.
type MediaView struct {
	Title       string
	Body        string
	Caption     string
	Source      string
	Poster      string
	MediaType   richpush.MediaType
	Autoplay    bool
	Loop        bool
	Controls    bool
	ClickAction string
}

func (MediaView) Kind() richpush.Type { return richpush.TypeMedia }

func BuildMedia(p *richpush.MediaPayload) MediaView {
	v := MediaView{
		Title:       p.Title,
		Body:        p.Body,
		Caption:     p.Caption,
		Source:      p.MediaURL,
		Poster:      p.ThumbnailURL,
		MediaType:   p.MediaType,
		ClickAction: p.ClickAction,
	}
	switch p.MediaType {
	case richpush.MediaGIF:
		v.Autoplay = true
		v.Loop = true
	case richpush.MediaVideo:
		v.Controls = true
	}
	return v
}

// ListRow is one independently click-through-able list entry.
type ListRow struct {
	Title       string
	Subtitle    string
	ImageURL    string
	ClickAction string
	Metadata    map[string]string
}

// ListView renders vertical rows with an optional header image and footer
// action button.
type ListView struct {
	Title          string
	HeaderImageURL string
	Rows           []ListRow
	FooterButton   *richpush.ActionButton
}

func (ListView) Kind() richpush.Type { return richpush.TypeList }

func BuildList(p *richpush.ListPayload) ListView {
	rows := make([]ListRow, len(p.Items))
	for i, item := range p.Items {
		rows[i] = ListRow{
			Title:       item.Title,
			Subtitle:    item.Subtitle,
			ImageURL:    item.ImageURL,
			ClickAction: item.ClickAction,
			Metadata:    item.Metadata,
		}
	}
	return ListView{
		Title:          p.Title,
		HeaderImageURL: p.HeaderImageURL,
		Rows:           rows,
		FooterButton:   p.FooterButton,
	}
}
