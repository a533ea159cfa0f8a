package render

import "github.com/wanderlabs/pushkit/pkg/richpush"

// ImagePlacement positions the card image relative to its text.
type ImagePlacement string

const (
	PlacementTop       ImagePlacement = "top"
	PlacementLeading   ImagePlacement = "leading"
	PlacementFullWidth ImagePlacement = "full-width"
)

// CardView renders one of the three card densities. The style only moves
// the image and scales the text; behavior is identical across styles.
type CardView struct {
	Title          string
	Subtitle       string
	Body           string
	ImageURL       string
	HeaderImageURL string
	Style          richpush.CardStyle
	ImagePlacement ImagePlacement
	TitleScale     float64
	Buttons        []richpush.ActionButton
}

func (CardView) Kind() richpush.Type { return richpush.TypeCard }

func BuildCard(p *richpush.CardPayload) CardView {
	v := CardView{
		Title:          p.Title,
		Subtitle:       p.Subtitle,
		Body:           p.Body,
		ImageURL:       p.ImageURL,
		HeaderImageURL: p.HeaderImageURL,
		Style:          p.Style,
		Buttons:        p.Buttons,
	}

	switch p.Style {
	case richpush.CardCompact:
		v.ImagePlacement = PlacementLeading
		v.TitleScale = 0.85
	case richpush.CardHero:
		v.ImagePlacement = PlacementFullWidth
		v.TitleScale = 1.25
	default: // STANDARD and unset
		v.Style = richpush.CardStandard
		v.ImagePlacement = PlacementTop
		v.TitleScale = 1
	}
	return v
}
