package richpush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification_Validate(t *testing.T) {
	tests := []struct {
		name    string
		n       Notification
		wantErr bool
	}{
		{
			name: "valid text",
			n:    NewText("Sale", "50% off", ""),
		},
		{
			name: "text with empty body is valid",
			n:    NewText("Notification", "", ""),
		},
		{
			name: "text missing title",
			n: Notification{
				Type: TypeText,
				Text: &TextPayload{Body: "b"},
			},
			wantErr: true,
		},
		{
			name: "media with bad media type",
			n: Notification{
				Type: TypeMedia,
				Media: &MediaPayload{
					Title: "t", MediaURL: "u", MediaType: MediaType("AUDIO"),
				},
			},
			wantErr: true,
		},
		{
			name: "carousel with no items",
			n: Notification{
				Type:     TypeCarousel,
				Carousel: &CarouselPayload{Title: "t", Items: []CarouselItem{}},
			},
			wantErr: true,
		},
		{
			name: "carousel item missing image",
			n: Notification{
				Type: TypeCarousel,
				Carousel: &CarouselPayload{
					Title: "t",
					Items: []CarouselItem{{Title: "i"}},
				},
			},
			wantErr: true,
		},
		{
			name: "poll with no options",
			n: Notification{
				Type: TypePoll,
				Poll: &PollPayload{Question: "q", PollID: "p", Options: []PollOption{}},
			},
			wantErr: true,
		},
		{
			name: "valid poll",
			n: Notification{
				Type: TypePoll,
				Poll: &PollPayload{
					Question: "q", PollID: "p",
					Options: []PollOption{{ID: "a", Text: "A"}},
				},
			},
		},
		{
			name: "card with invalid style",
			n: Notification{
				Type: TypeCard,
				Card: &CardPayload{Title: "t", Style: CardStyle("WIDE")},
			},
			wantErr: true,
		},
		{
			name: "card without style is valid",
			n: Notification{
				Type: TypeCard,
				Card: &CardPayload{Title: "t", Body: "b"},
			},
		},
		{
			name: "button with invalid type",
			n: Notification{
				Type: TypePromotional,
				Promo: &PromoPayload{
					Title: "t",
					Buttons: []ActionButton{
						{Text: "x", ButtonType: ButtonType("TOGGLE")},
					},
				},
			},
			wantErr: true,
		},
		{
			name: "invalid priority",
			n: Notification{
				Type:   TypeText,
				Common: Common{Priority: Priority("URGENT")},
				Text:   &TextPayload{Title: "t"},
			},
			wantErr: true,
		},
		{
			name:    "no variant",
			n:       Notification{Type: TypeText},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidNotification)
				return
			}
			require.NoError(t, err)
		})
	}
}
