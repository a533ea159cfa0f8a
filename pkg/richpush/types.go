package richpush

// Type discriminates the rich notification variants. Exactly one variant
// payload is active per notification.
type Type string

const (
	TypeText        Type = "TEXT"
	TypeMedia       Type = "MEDIA"
	TypeCarousel    Type = "CAROUSEL"
	TypeList        Type = "LIST"
	TypePoll        Type = "POLL"
	TypeCard        Type = "CARD"
	TypePromotional Type = "PROMOTIONAL"
)

// Priority is carried through from the backend payload; delivery itself does
// not reorder messages based on it.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
	PriorityLow    Priority = "LOW"
)

// MediaType identifies the media kind of a MEDIA notification.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
	MediaGIF   MediaType = "GIF"
)

// CardStyle selects the density/style presentation of a CARD notification.
// It is a pure presentation switch with no behavioral difference.
type CardStyle string

const (
	CardStandard CardStyle = "STANDARD"
	CardCompact  CardStyle = "COMPACT"
	CardHero     CardStyle = "HERO"
)

// ButtonType governs how an action button is dispatched, not just how it
// looks.
type ButtonType string

const (
	ButtonLink     ButtonType = "LINK"
	ButtonDeeplink ButtonType = "DEEPLINK"
	ButtonAction   ButtonType = "ACTION"
	ButtonDismiss  ButtonType = "DISMISS"
)
