package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadSongRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	song := NewSong("groove")
	song.BPM = 132
	song.Arrangement = "AAB2"
	song.Swing = 0.1
	a, err := NewPattern("A", 8)
	require.NoError(t, err)
	a.SetStep(Kick, 0, true)
	a.SetVelocity(Kick, 0, 110)
	song.Bank.Add(a)

	require.NoError(t, SaveSong(song))

	projects, err := ListProjects()
	require.NoError(t, err)
	require.Equal(t, []string{"groove"}, projects)

	saves, err := ListSaves("groove")
	require.NoError(t, err)
	require.Len(t, saves, 1)

	got, err := LoadSong("groove", "")
	require.NoError(t, err)
	assert.Equal(t, 132, got.BPM)
	assert.Equal(t, "AAB2", got.Arrangement)
	require.Len(t, got.Bank.Patterns, 1)
	assert.True(t, got.Bank.Patterns[0].Active(Kick, 0))
	assert.Equal(t, uint8(110), got.Bank.Patterns[0].Velocity(Kick, 0))
}

func TestLoadSongMissingProject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadSong("nothing-here", "")
	assert.Error(t, err)
}

func TestListProjectsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	projects, err := ListProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}
