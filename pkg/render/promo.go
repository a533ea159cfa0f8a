package render

import (
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/wanderlabs/pushkit/pkg/richpush"
)

// Promo is the view controller for PROMOTIONAL notifications: coupon
// handling, validity display, and the collapsible terms section.
type Promo struct {
	payload   *richpush.PromoPayload
	termsOpen bool
}

func (*Promo) Kind() richpush.Type { return richpush.TypePromotional }

// NewPromo creates a controller with the terms collapsed.
func NewPromo(p *richpush.PromoPayload) *Promo {
	return &Promo{payload: p}
}

// Payload exposes the underlying promotion fields for display.
func (p *Promo) Payload() *richpush.PromoPayload { return p.payload }

// HasCoupon reports whether the promotion carries a coupon code.
func (p *Promo) HasCoupon() bool { return p.payload.CouponCode != "" }

// CouponButton synthesizes the copy-to-clipboard action button for the
// coupon code, routed through the shared dispatcher like any payload
// button.
func (p *Promo) CouponButton() (richpush.ActionButton, error) {
	if !p.HasCoupon() {
		return richpush.ActionButton{}, ErrNoCoupon
	}
	return richpush.ActionButton{
		Text:       p.payload.CouponCode,
		Action:     "copy:" + p.payload.CouponCode,
		ButtonType: richpush.ButtonAction,
	}, nil
}

// CouponQR renders the coupon code as a QR PNG of the given pixel size,
// for in-store scanning.
func (p *Promo) CouponQR(size int) ([]byte, error) {
	if !p.HasCoupon() {
		return nil, ErrNoCoupon
	}
	return qrcode.Encode(p.payload.CouponCode, qrcode.Medium, size)
}

// Active reports whether the promotion is inside its validity window.
// Promotions without bounds are always active.
func (p *Promo) Active(now time.Time) bool {
	ts := now.UnixMilli()
	if p.payload.ValidFrom != 0 && ts < p.payload.ValidFrom {
		return false
	}
	if p.payload.ValidUntil != 0 && ts > p.payload.ValidUntil {
		return false
	}
	return true
}

// ExpiryLabel renders the validity state: a countdown inside the window,
// "Expired" past it, and empty when the promotion has no end date.
func (p *Promo) ExpiryLabel(now time.Time) string {
	if p.payload.ValidUntil == 0 {
		return ""
	}

	until := time.UnixMilli(p.payload.ValidUntil)
	remaining := until.Sub(now)
	switch {
	case remaining <= 0:
		return "Expired"
	case remaining < time.Hour:
		return fmt.Sprintf("Expires in %dm", int(remaining.Minutes()))
	case remaining < 24*time.Hour:
		return fmt.Sprintf("Expires in %dh", int(remaining.Hours()))
	default:
		return fmt.Sprintf("Expires in %dd", int(remaining.Hours()/24))
	}
}

// HasTerms reports whether a terms section exists to collapse.
func (p *Promo) HasTerms() bool { return p.payload.TermsAndConditions != "" }

// ToggleTerms flips the collapsible terms section and returns its new
// visibility.
func (p *Promo) ToggleTerms() bool {
	p.termsOpen = !p.termsOpen
	return p.termsOpen
}

// TermsVisible reports whether the terms section is expanded.
func (p *Promo) TermsVisible() bool { return p.termsOpen }
