package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatternValidation(t *testing.T) {
	tests := []struct {
		name    string
		letter  string
		steps   int
		wantErr bool
	}{
		{"valid", "A", 16, false},
		{"single step", "Z", 1, false},
		{"lowercase", "a", 16, true},
		{"multi letter", "AB", 16, true},
		{"empty name", "", 16, true},
		{"digit name", "1", 16, true},
		{"zero steps", "A", 0, true},
		{"negative steps", "A", -4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPattern(tt.letter, tt.steps)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.letter, p.Name)
			assert.Equal(t, tt.steps, p.Steps)
		})
	}
}

func TestNewPatternShape(t *testing.T) {
	p, err := NewPattern("A", 8)
	require.NoError(t, err)

	for i := 0; i < NumInstruments; i++ {
		require.Len(t, p.Hits[i], 8)
		require.Len(t, p.Vel[i], 8)
		for s := 0; s < 8; s++ {
			assert.False(t, p.Hits[i][s])
			assert.Equal(t, DefaultVelocity, p.Vel[i][s])
		}
	}
}

func TestPatternToggleAndVelocity(t *testing.T) {
	p, err := NewPattern("A", 4)
	require.NoError(t, err)

	assert.True(t, p.Toggle(Kick, 0))
	assert.True(t, p.Active(Kick, 0))
	assert.False(t, p.Toggle(Kick, 0))
	assert.False(t, p.Active(Kick, 0))

	p.SetVelocity(Snare, 2, 200)
	assert.Equal(t, uint8(127), p.Velocity(Snare, 2))
	p.SetVelocity(Snare, 2, -5)
	assert.Equal(t, uint8(0), p.Velocity(Snare, 2))

	// Out-of-range access is inert, not a panic
	p.SetStep(Kick, 99, true)
	assert.False(t, p.Active(Kick, 99))
	p.SetVelocity(Instrument(-1), 0, 50)
}

func TestBankLookupAndOrder(t *testing.T) {
	var bank Bank
	assert.Nil(t, bank.First())
	assert.Nil(t, bank.Lookup('A'))

	a, _ := NewPattern("A", 4)
	b, _ := NewPattern("B", 8)
	bank.Add(a)
	bank.Add(b)

	assert.Same(t, a, bank.Lookup('A'))
	assert.Same(t, b, bank.Lookup('B'))
	assert.Nil(t, bank.Lookup('C'))
	assert.Same(t, a, bank.First())

	// Re-adding a name replaces in place, keeping declaration order
	a2, _ := NewPattern("A", 16)
	bank.Add(a2)
	require.Len(t, bank.Patterns, 2)
	assert.Same(t, a2, bank.First())
}
