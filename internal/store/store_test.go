package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beenama/internal/media"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	sess, err := s.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, sess, "fresh store has no session")

	require.NoError(t, s.SaveSession(Session{SessionID: "abc", AccountID: 42, Username: "walter"}))

	sess, err = s.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "abc", sess.SessionID)
	assert.Equal(t, int64(42), sess.AccountID)
	assert.Equal(t, "walter", sess.Username)

	// Saving again replaces, never duplicates
	require.NoError(t, s.SaveSession(Session{SessionID: "def", AccountID: 42, Username: "walter"}))
	sess, err = s.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "def", sess.SessionID)

	require.NoError(t, s.ClearSession())
	sess, err = s.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestResumeUpsert(t *testing.T) {
	s := openTestStore(t)

	entry := media.ResumeEntry{
		MediaID:        1396,
		Type:           media.TV,
		Title:          "Breaking Bad",
		Season:         1,
		Episode:        2,
		PositionMillis: 600_000,
		DurationMillis: 2_880_000,
	}
	require.NoError(t, s.SaveResume(entry))

	got, err := s.Resume(1396, media.TV, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry, *got)

	entry.PositionMillis = 900_000
	require.NoError(t, s.SaveResume(entry))

	got, err = s.Resume(1396, media.TV, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(900_000), got.PositionMillis)

	list, err := s.ListResume(10)
	require.NoError(t, err)
	assert.Len(t, list, 1, "upsert must not duplicate rows")
}

func TestResumeKeyedPerEpisode(t *testing.T) {
	s := openTestStore(t)

	for ep := 1; ep <= 3; ep++ {
		require.NoError(t, s.SaveResume(media.ResumeEntry{
			MediaID:        1396,
			Type:           media.TV,
			Title:          "Breaking Bad",
			Season:         1,
			Episode:        ep,
			PositionMillis: int64(ep) * 1000,
			DurationMillis: 2_880_000,
		}))
	}

	got, err := s.Resume(1396, media.TV, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2000), got.PositionMillis)

	got, err = s.Resume(1396, media.TV, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "different season is a different key")
}

func TestResumeNearEndRemovesEntry(t *testing.T) {
	s := openTestStore(t)

	entry := media.ResumeEntry{
		MediaID:        414906,
		Type:           media.Movie,
		Title:          "The Batman",
		PositionMillis: 5_000_000,
		DurationMillis: 10_000_000,
	}
	require.NoError(t, s.SaveResume(entry))

	entry.PositionMillis = 9_800_000
	require.NoError(t, s.SaveResume(entry))

	got, err := s.Resume(414906, media.Movie, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, got, "finishing a title clears its resume point")
}

func TestDeleteResume(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveResume(media.ResumeEntry{
		MediaID:        414906,
		Type:           media.Movie,
		Title:          "The Batman",
		PositionMillis: 1000,
		DurationMillis: 10_000_000,
	}))
	require.NoError(t, s.DeleteResume(414906, media.Movie, 0, 0))

	got, err := s.Resume(414906, media.Movie, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, got)
}
