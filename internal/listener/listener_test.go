package listener

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) MarkEntryPlayed(ctx context.Context, matchID int) (bool, error) {
	args := m.Called(ctx, matchID)
	return args.Bool(0), args.Error(1)
}

type fakeCache struct{ leagues []int }

func (f *fakeCache) InvalidateLeague(id int) int {
	f.leagues = append(f.leagues, id)
	return 1
}

func newListener(st Store, c Invalidator) *Listener {
	return New("", st, c, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandle_MarksEntryAndInvalidates(t *testing.T) {
	st := new(mockStore)
	c := &fakeCache{}
	st.On("MarkEntryPlayed", mock.Anything, 42).Return(true, nil).Once()

	newListener(st, c).Handle(context.Background(),
		`{"match_id":42,"league_id":7,"jornada":3,"home_goals":2,"away_goals":1,"ts":1700000000}`)

	st.AssertExpectations(t)
	assert.Equal(t, []int{7}, c.leagues)
}

func TestHandle_MalformedPayload(t *testing.T) {
	st := new(mockStore)
	c := &fakeCache{}

	l := newListener(st, c)
	l.Handle(context.Background(), `not json`)
	l.Handle(context.Background(), `{"league_id":7}`)

	st.AssertNotCalled(t, "MarkEntryPlayed", mock.Anything, mock.Anything)
	assert.Empty(t, c.leagues)
}

func TestHandle_StoreErrorIsSwallowed(t *testing.T) {
	st := new(mockStore)
	c := &fakeCache{}
	st.On("MarkEntryPlayed", mock.Anything, 5).Return(false, errors.New("conn reset")).Once()

	assert.NotPanics(t, func() {
		newListener(st, c).Handle(context.Background(), `{"match_id":5,"league_id":1}`)
	})
	st.AssertExpectations(t)
	assert.Equal(t, []int{1}, c.leagues)
}
