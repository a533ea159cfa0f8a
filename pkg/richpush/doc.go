// Package richpush models rich push-notification payloads as a tagged union
// and normalizes heterogeneous inbound push envelopes into that union.
//
// # Architecture
//
// The package has two halves:
//
//   - Model: Notification is a discriminated union keyed on Type with one
//     variant payload per presentation shape (TEXT, MEDIA, CAROUSEL, LIST,
//     POLL, CARD, PROMOTIONAL) plus the ActionButton sub-model. The wire
//     format is flat JSON keyed on "type"; MarshalJSON/UnmarshalJSON keep
//     the exactly-one-variant invariant on both directions.
//
//   - Normalizer: Normalize takes the loosely-typed Envelope handed over by
//     the messaging SDK and produces exactly one Notification, following a
//     strict source precedence and degrading to a synthesized TEXT variant
//     when no rich payload is embedded.
//
// # Usage
//
//	var env richpush.Envelope
//	if err := json.Unmarshal(raw, &env); err != nil {
//	    return err
//	}
//
//	notif, err := richpush.Normalize(env)
//	if errors.Is(err, richpush.ErrMalformedPayload) {
//	    // Payload was present but unparsable. Nothing was guessed or
//	    // stored; the caller decides whether to drop or alert.
//	    return err
//	}
//
//	switch notif.Type {
//	case richpush.TypePoll:
//	    show(notif.Poll)
//	case richpush.TypePromotional:
//	    show(notif.Promo)
//	    // ...
//	}
//
// Validate enforces per-variant required fields (non-empty carousel items,
// non-empty poll options, closed media/style sets) on top of the union
// invariant.
package richpush
