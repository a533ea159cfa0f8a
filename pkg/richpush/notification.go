package richpush

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common holds the optional fields shared by every variant.
type Common struct {
	NotificationID string   `json:"notification_id,omitempty"`
	Timestamp      int64    `json:"timestamp,omitempty"` // epoch milliseconds
	Priority       Priority `json:"priority,omitempty" validate:"omitempty,oneof=HIGH NORMAL LOW"`
	Category       string   `json:"category,omitempty"`
}

// TextPayload is the minimal variant and the guaranteed fallback shape.
type TextPayload struct {
	Title       string `json:"title" validate:"required"`
	Body        string `json:"body"`
	ClickAction string `json:"click_action,omitempty"`
}

type MediaPayload struct {
	Title        string    `json:"title" validate:"required"`
	Body         string    `json:"body"`
	MediaURL     string    `json:"media_url" validate:"required"`
	MediaType    MediaType `json:"media_type" validate:"required,oneof=IMAGE VIDEO GIF"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Caption      string    `json:"caption,omitempty"`
	ClickAction  string    `json:"click_action,omitempty"`
}

type CarouselItem struct {
	Title       string         `json:"title" validate:"required"`
	ImageURL    string         `json:"image_url" validate:"required"`
	Subtitle    string         `json:"subtitle,omitempty"`
	ClickAction string         `json:"click_action,omitempty"`
	Buttons     []ActionButton `json:"buttons,omitempty" validate:"dive"`
}

type CarouselPayload struct {
	Title string         `json:"title" validate:"required"`
	Items []CarouselItem `json:"items" validate:"required,min=1,dive"`
}

type ListItem struct {
	Title       string            `json:"title" validate:"required"`
	Subtitle    string            `json:"subtitle,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	ClickAction string            `json:"click_action,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type ListPayload struct {
	Title          string        `json:"title" validate:"required"`
	Items          []ListItem    `json:"items" validate:"dive"`
	HeaderImageURL string        `json:"header_image_url,omitempty"`
	FooterButton   *ActionButton `json:"footer_button,omitempty"`
}

type PollOption struct {
	ID       string `json:"id" validate:"required"`
	Text     string `json:"text" validate:"required"`
	ImageURL string `json:"image_url,omitempty"`
}

type PollPayload struct {
	Question               string       `json:"question" validate:"required"`
	PollID                 string       `json:"poll_id" validate:"required"`
	AllowMultipleSelection bool         `json:"allow_multiple_selection"`
	Options                []PollOption `json:"options" validate:"required,min=1,dive"`
}

type CardPayload struct {
	Title          string         `json:"title" validate:"required"`
	Body           string         `json:"body"`
	Subtitle       string         `json:"subtitle,omitempty"`
	ImageURL       string         `json:"image_url,omitempty"`
	HeaderImageURL string         `json:"header_image_url,omitempty"`
	Style          CardStyle      `json:"style,omitempty" validate:"omitempty,oneof=STANDARD COMPACT HERO"`
	Buttons        []ActionButton `json:"buttons,omitempty" validate:"dive"`
}

type PromoPayload struct {
	Title              string         `json:"title" validate:"required"`
	Body               string         `json:"body"`
	BannerURL          string         `json:"banner_url,omitempty"`
	CouponCode         string         `json:"coupon_code,omitempty"`
	DiscountText       string         `json:"discount_text,omitempty"`
	DiscountValue      float64        `json:"discount_value,omitempty"`
	DiscountType       string         `json:"discount_type,omitempty"`
	MinimumOrderValue  float64        `json:"minimum_order_value,omitempty"`
	ValidFrom          int64          `json:"valid_from,omitempty"`  // epoch milliseconds
	ValidUntil         int64          `json:"valid_until,omitempty"` // epoch milliseconds
	TermsAndConditions string         `json:"terms_and_conditions,omitempty"`
	Buttons            []ActionButton `json:"buttons,omitempty" validate:"dive"`
}

// Notification is the tagged union of all rich push payload shapes.
// Exactly one variant pointer is non-nil and it must agree with Type.
// The wire format is flat: the variant's fields sit next to "type" and the
// common fields rather than under a nested key.
type Notification struct {
	Type Type
	Common

	Text     *TextPayload
	Media    *MediaPayload
	Carousel *CarouselPayload
	List     *ListPayload
	Poll     *PollPayload
	Card     *CardPayload
	Promo    *PromoPayload
}

// NewText builds the TEXT variant used as the normalizer fallback.
func NewText(title, body, clickAction string) Notification {
	return Notification{
		Type: TypeText,
		Text: &TextPayload{Title: title, Body: body, ClickAction: clickAction},
	}
}

// Variant returns the active variant payload as an untyped pointer, or nil
// when no variant is set.
func (n Notification) Variant() any {
	switch {
	case n.Text != nil:
		return n.Text
	case n.Media != nil:
		return n.Media
	case n.Carousel != nil:
		return n.Carousel
	case n.List != nil:
		return n.List
	case n.Poll != nil:
		return n.Poll
	case n.Card != nil:
		return n.Card
	case n.Promo != nil:
		return n.Promo
	}
	return nil
}

// variantCount reports how many variant pointers are set. Decoding and
// validation both require exactly one.
func (n Notification) variantCount() int {
	count := 0
	for _, v := range []bool{
		n.Text != nil, n.Media != nil, n.Carousel != nil,
		n.List != nil, n.Poll != nil, n.Card != nil, n.Promo != nil,
	} {
		if v {
			count++
		}
	}
	return count
}

func (n Notification) MarshalJSON() ([]byte, error) {
	if err := n.checkVariant(); err != nil {
		return nil, err
	}

	type header struct {
		Type Type `json:"type"`
		Common
	}
	h := header{Type: n.Type, Common: n.Common}

	switch n.Type {
	case TypeText:
		return json.Marshal(struct {
			header
			*TextPayload
		}{h, n.Text})
	case TypeMedia:
		return json.Marshal(struct {
			header
			*MediaPayload
		}{h, n.Media})
	case TypeCarousel:
		return json.Marshal(struct {
			header
			*CarouselPayload
		}{h, n.Carousel})
	case TypeList:
		return json.Marshal(struct {
			header
			*ListPayload
		}{h, n.List})
	case TypePoll:
		return json.Marshal(struct {
			header
			*PollPayload
		}{h, n.Poll})
	case TypeCard:
		return json.Marshal(struct {
			header
			*CardPayload
		}{h, n.Card})
	case TypePromotional:
		return json.Marshal(struct {
			header
			*PromoPayload
		}{h, n.Promo})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, n.Type)
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	var head struct {
		Type Type `json:"type"`
		Common
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	decoded := Notification{Type: head.Type, Common: head.Common}

	switch head.Type {
	case TypeText:
		decoded.Text = &TextPayload{}
		if err := json.Unmarshal(data, decoded.Text); err != nil {
			return err
		}
	case TypeMedia:
		decoded.Media = &MediaPayload{}
		if err := json.Unmarshal(data, decoded.Media); err != nil {
			return err
		}
	case TypeCarousel:
		decoded.Carousel = &CarouselPayload{}
		if err := json.Unmarshal(data, decoded.Carousel); err != nil {
			return err
		}
	case TypeList:
		decoded.List = &ListPayload{}
		if err := json.Unmarshal(data, decoded.List); err != nil {
			return err
		}
	case TypePoll:
		decoded.Poll = &PollPayload{}
		if err := json.Unmarshal(data, decoded.Poll); err != nil {
			return err
		}
	case TypeCard:
		decoded.Card = &CardPayload{}
		if err := json.Unmarshal(data, decoded.Card); err != nil {
			return err
		}
	case TypePromotional:
		decoded.Promo = &PromoPayload{}
		if err := json.Unmarshal(data, decoded.Promo); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, head.Type)
	}

	*n = decoded
	return nil
}

// checkVariant enforces the exactly-one-variant invariant and that the set
// variant agrees with the declared type.
func (n Notification) checkVariant() error {
	if n.variantCount() == 0 {
		return ErrNoVariant
	}
	if n.variantCount() > 1 {
		return ErrAmbiguousVariant
	}

	ok := false
	switch n.Type {
	case TypeText:
		ok = n.Text != nil
	case TypeMedia:
		ok = n.Media != nil
	case TypeCarousel:
		ok = n.Carousel != nil
	case TypeList:
		ok = n.List != nil
	case TypePoll:
		ok = n.Poll != nil
	case TypeCard:
		ok = n.Card != nil
	case TypePromotional:
		ok = n.Promo != nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, n.Type)
	}
	if !ok {
		return errors.Join(ErrVariantMismatch, fmt.Errorf("type %q does not match the populated variant", n.Type))
	}
	return nil
}
