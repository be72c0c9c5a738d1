package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNamePrefersAlias(t *testing.T) {
	p := Player{FullName: "Juan Pérez", Alias: "Juanito"}
	assert.Equal(t, "Juanito", p.DisplayName())

	p.Alias = ""
	assert.Equal(t, "Juan Pérez", p.DisplayName())
}

func TestValidPosition(t *testing.T) {
	for _, pos := range []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward} {
		assert.True(t, ValidPosition(pos), "%s", pos)
	}
	assert.False(t, ValidPosition("Striker"))
	assert.False(t, ValidPosition(""))
}
