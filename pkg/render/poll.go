package render

import (
	"context"

	"github.com/wanderlabs/pushkit/pkg/richpush"
)

// VoteRecorder records a poll response with the backend.
type VoteRecorder interface {
	RecordVote(ctx context.Context, pollID string, optionIDs []string) error
}

// Poll is the interaction controller for POLL notifications. Selection
// semantics follow AllowMultipleSelection: single-select replaces the
// previous choice, multi-select toggles. Submission is one-shot; after it
// the options are no longer interactive. Re-opening a poll record with its
// prior answer is the caller's concern, not this controller's.
type Poll struct {
	payload   *richpush.PollPayload
	selected  map[string]bool
	submitted bool
}

func (*Poll) Kind() richpush.Type { return richpush.TypePoll }

// NewPoll creates a controller with nothing selected.
func NewPoll(p *richpush.PollPayload) (*Poll, error) {
	if p == nil || len(p.Options) == 0 {
		return nil, ErrNilPayload
	}
	return &Poll{
		payload:  p,
		selected: make(map[string]bool),
	}, nil
}

// Question returns the poll question.
func (p *Poll) Question() string { return p.payload.Question }

// Options returns the options in their payload order.
func (p *Poll) Options() []richpush.PollOption { return p.payload.Options }

// MultiSelect reports whether more than one option may be chosen.
func (p *Poll) MultiSelect() bool { return p.payload.AllowMultipleSelection }

// Select chooses an option. In single-select mode the new choice replaces
// the previous one; in multi-select mode it toggles. Selecting after
// submission or selecting an unknown id is an error.
func (p *Poll) Select(optionID string) error {
	if p.submitted {
		return ErrAlreadySubmitted
	}
	if !p.knownOption(optionID) {
		return ErrUnknownOption
	}

	if p.payload.AllowMultipleSelection {
		if p.selected[optionID] {
			delete(p.selected, optionID)
		} else {
			p.selected[optionID] = true
		}
		return nil
	}

	clear(p.selected)
	p.selected[optionID] = true
	return nil
}

// Selected returns the chosen option ids in payload order.
func (p *Poll) Selected() []string {
	out := make([]string, 0, len(p.selected))
	for _, opt := range p.payload.Options {
		if p.selected[opt.ID] {
			out = append(out, opt.ID)
		}
	}
	return out
}

// IsSelected reports whether the option is currently chosen.
func (p *Poll) IsSelected(optionID string) bool { return p.selected[optionID] }

// Submitted reports whether the one-shot submission happened.
func (p *Poll) Submitted() bool { return p.submitted }

// Interactive reports whether the options still accept selection.
func (p *Poll) Interactive() bool { return !p.submitted }

// Submit records the response and locks the controller. At least one
// option must be selected. The controller only transitions to submitted
// when the recorder succeeds, so a failed network call leaves the poll
// answerable instead of silently dropping the vote.
func (p *Poll) Submit(ctx context.Context, recorder VoteRecorder) error {
	if p.submitted {
		return ErrAlreadySubmitted
	}
	if len(p.selected) == 0 {
		return ErrNoSelection
	}

	if recorder != nil {
		if err := recorder.RecordVote(ctx, p.payload.PollID, p.Selected()); err != nil {
			return err
		}
	}

	p.submitted = true
	return nil
}

func (p *Poll) knownOption(optionID string) bool {
	for _, opt := range p.payload.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
