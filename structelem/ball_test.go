package structelem_test

import (
	"testing"

	"github.com/katalvlaran/topomorph/structelem"
	"github.com/stretchr/testify/require"
)

func TestNewBallRejectsNonPositiveRadius(t *testing.T) {
	_, err := structelem.NewBall(0)
	require.ErrorIs(t, err, structelem.ErrInvalidRadius)

	_, err = structelem.NewBall(-1)
	require.ErrorIs(t, err, structelem.ErrInvalidRadius)
}

func TestBallOffsetsRadiusOneIsSixConnected(t *testing.T) {
	b, err := structelem.NewBall(1)
	require.NoError(t, err)

	offs := b.Offsets()
	require.Len(t, offs, 6)
	for _, want := range [][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}} {
		require.Contains(t, offs, want)
	}
}

func TestBallOffsetsExcludesOrigin(t *testing.T) {
	b, err := structelem.NewBall(2)
	require.NoError(t, err)

	for _, o := range b.Offsets() {
		require.NotEqual(t, [3]int{0, 0, 0}, o)
	}
}
