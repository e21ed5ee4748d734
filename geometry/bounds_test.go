package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingContourSinglePoint(t *testing.T) {
	c, err := BoundingContour([]float64{0}, []float64{0}, 30)
	assert.NoError(t, err)

	// Corner order: top-left, bottom-left, bottom-right, top-right.
	assert.Equal(t, Contour{{-30, 30}, {-30, -30}, {30, -30}, {30, 30}}, c)
}

func TestBoundingContourMargin(t *testing.T) {
	xs := []float64{0, 50, 25}
	ys := []float64{0, 200, 100}
	c, err := BoundingContour(xs, ys, 30)
	assert.NoError(t, err)
	assert.Equal(t, Contour{{-30, 230}, {-30, -30}, {80, -30}, {80, 230}}, c)
	assert.True(t, c.Usable())
}

func TestBoundingContourEmpty(t *testing.T) {
	_, err := BoundingContour(nil, nil, 30)
	assert.Error(t, err)
}

func TestBoundingContourMismatched(t *testing.T) {
	_, err := BoundingContour([]float64{1, 2}, []float64{1}, 30)
	assert.Error(t, err)
}
