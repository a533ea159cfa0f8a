package richpush

// Summary is the variant-independent digest used when a notification has to
// be shown through a surface that only understands title/body/image, such
// as the platform notification tray.
type Summary struct {
	Title       string
	Body        string
	ImageURL    string
	ClickAction string
}

// Summarize reduces the active variant to a tray-friendly digest.
func (n Notification) Summarize() Summary {
	switch {
	case n.Text != nil:
		return Summary{Title: n.Text.Title, Body: n.Text.Body, ClickAction: n.Text.ClickAction}
	case n.Media != nil:
		image := n.Media.ThumbnailURL
		if image == "" {
			image = n.Media.MediaURL
		}
		return Summary{Title: n.Media.Title, Body: n.Media.Body, ImageURL: image, ClickAction: n.Media.ClickAction}
	case n.Carousel != nil:
		s := Summary{Title: n.Carousel.Title}
		if len(n.Carousel.Items) > 0 {
			s.Body = n.Carousel.Items[0].Title
			s.ImageURL = n.Carousel.Items[0].ImageURL
			s.ClickAction = n.Carousel.Items[0].ClickAction
		}
		return s
	case n.List != nil:
		s := Summary{Title: n.List.Title, ImageURL: n.List.HeaderImageURL}
		if len(n.List.Items) > 0 {
			s.Body = n.List.Items[0].Title
		}
		return s
	case n.Poll != nil:
		return Summary{Title: n.Poll.Question}
	case n.Card != nil:
		image := n.Card.ImageURL
		if image == "" {
			image = n.Card.HeaderImageURL
		}
		return Summary{Title: n.Card.Title, Body: n.Card.Body, ImageURL: image}
	case n.Promo != nil:
		return Summary{Title: n.Promo.Title, Body: n.Promo.Body, ImageURL: n.Promo.BannerURL}
	}
	return Summary{Title: defaultTitle}
}
