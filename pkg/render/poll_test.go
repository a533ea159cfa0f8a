package render_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderlabs/pushkit/pkg/render"
	"github.com/wanderlabs/pushkit/pkg/richpush"
)

type MockVoteRecorder struct {
	mock.Mock
}

func (m *MockVoteRecorder) RecordVote(ctx context.Context, pollID string, optionIDs []string) error {
	args := m.Called(ctx, pollID, optionIDs)
	return args.Error(0)
}

func pollPayload(multi bool) *richpush.PollPayload {
	return &richpush.PollPayload{
		Question:               "Which drop should we restock?",
		PollID:                 "poll_123",
		AllowMultipleSelection: multi,
		Options: []richpush.PollOption{
			{ID: "opt_a", Text: "Sneakers"},
			{ID: "opt_b", Text: "Hoodies"},
			{ID: "opt_c", Text: "Caps"},
		},
	}
}

func TestNewPoll(t *testing.T) {
	t.Parallel()

	t.Run("nil payload", func(t *testing.T) {
		t.Parallel()

		_, err := render.NewPoll(nil)
		assert.ErrorIs(t, err, render.ErrNilPayload)
	})

	t.Run("no options", func(t *testing.T) {
		t.Parallel()

		_, err := render.NewPoll(&richpush.PollPayload{Question: "q", PollID: "p"})
		assert.ErrorIs(t, err, render.ErrNilPayload)
	})
}

func TestPoll_SingleSelectReplaces(t *testing.T) {
	t.Parallel()

	p, err := render.NewPoll(pollPayload(false))
	require.NoError(t, err)

	require.NoError(t, p.Select("opt_a"))
	assert.Equal(t, []string{"opt_a"}, p.Selected())

	require.NoError(t, p.Select("opt_b"))
	assert.Equal(t, []string{"opt_b"}, p.Selected())
	assert.False(t, p.IsSelected("opt_a"))
	assert.True(t, p.IsSelected("opt_b"))
}

func TestPoll_MultiSelectToggles(t *testing.T) {
	t.Parallel()

	p, err := render.NewPoll(pollPayload(true))
	require.NoError(t, err)

	require.NoError(t, p.Select("opt_c"))
	require.NoError(t, p.Select("opt_a"))
	assert.Equal(t, []string{"opt_a", "opt_c"}, p.Selected(), "payload order, not selection order")

	require.NoError(t, p.Select("opt_c"))
	assert.Equal(t, []string{"opt_a"}, p.Selected())
}

func TestPoll_SelectUnknownOption(t *testing.T) {
	t.Parallel()

	p, err := render.NewPoll(pollPayload(false))
	require.NoError(t, err)

	assert.ErrorIs(t, p.Select("opt_zzz"), render.ErrUnknownOption)
	assert.Empty(t, p.Selected())
}

func TestPoll_Submit(t *testing.T) {
	t.Parallel()

	t.Run("records vote and locks", func(t *testing.T) {
		t.Parallel()

		recorder := new(MockVoteRecorder)
		recorder.On("RecordVote", mock.Anything, "poll_123", []string{"opt_b"}).Return(nil)

		p, err := render.NewPoll(pollPayload(false))
		require.NoError(t, err)
		require.NoError(t, p.Select("opt_b"))

		require.NoError(t, p.Submit(context.Background(), recorder))
		assert.True(t, p.Submitted())
		assert.False(t, p.Interactive())

		assert.ErrorIs(t, p.Select("opt_a"), render.ErrAlreadySubmitted)
		assert.ErrorIs(t, p.Submit(context.Background(), recorder), render.ErrAlreadySubmitted)
		recorder.AssertExpectations(t)
	})

	t.Run("requires a selection", func(t *testing.T) {
		t.Parallel()

		p, err := render.NewPoll(pollPayload(false))
		require.NoError(t, err)

		assert.ErrorIs(t, p.Submit(context.Background(), nil), render.ErrNoSelection)
		assert.False(t, p.Submitted())
	})

	t.Run("recorder failure keeps poll answerable", func(t *testing.T) {
		t.Parallel()

		recorder := new(MockVoteRecorder)
		recorder.On("RecordVote", mock.Anything, "poll_123", []string{"opt_a"}).
			Return(assert.AnError).Once()
		recorder.On("RecordVote", mock.Anything, "poll_123", []string{"opt_a"}).
			Return(nil).Once()

		p, err := render.NewPoll(pollPayload(false))
		require.NoError(t, err)
		require.NoError(t, p.Select("opt_a"))

		assert.ErrorIs(t, p.Submit(context.Background(), recorder), assert.AnError)
		assert.False(t, p.Submitted())
		assert.True(t, p.Interactive())

		require.NoError(t, p.Submit(context.Background(), recorder))
		assert.True(t, p.Submitted())
		recorder.AssertExpectations(t)
	})
}
