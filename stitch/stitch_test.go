package stitch

import (
	"testing"

	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStitch_TwoSlicesCloseIntoSquare(t *testing.T) {
	bottomRight := []arcseg.Segment{
		arcseg.NewLine(point.New(0, 0), point.New(1, 0)),
		arcseg.NewLine(point.New(1, 0), point.New(1, 1)),
	}
	topLeft := []arcseg.Segment{
		arcseg.NewLine(point.New(1, 1), point.New(0, 1)),
		arcseg.NewLine(point.New(0, 1), point.New(0, 0)),
	}

	result := Stitch([]Slice{{Segments: bottomRight}, {Segments: topLeft}}, 1e-6)
	require.Len(t, result, 1)
	assert.True(t, result[0].IsClosed())
	assert.InDelta(t, 1, result[0].Area(), 1e-9)
}

func TestStitch_OpenChainStaysOpen(t *testing.T) {
	a := []arcseg.Segment{arcseg.NewLine(point.New(0, 0), point.New(1, 0))}
	b := []arcseg.Segment{arcseg.NewLine(point.New(1, 0), point.New(2, 0))}

	result := Stitch([]Slice{{Segments: a}, {Segments: b}}, 1e-6)
	require.Len(t, result, 1)
	assert.False(t, result[0].IsClosed())
	assert.Equal(t, 3, result[0].Len())
}

func TestStitch_Empty(t *testing.T) {
	assert.Nil(t, Stitch(nil, 1e-6))
}
