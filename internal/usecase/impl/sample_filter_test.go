package impl

import (
	"testing"
	"time"

	"motion/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleFilter_Evaluate_AcceptsAccuracyWithinThreshold(t *testing.T) {
	var filter sampleFilter
	now := time.Now()

	fix := &entity.Fix{
		Latitude:  25.0330,
		Longitude: 121.5654,
		Accuracy:  20.0, // Boundary value: exactly the threshold qualifies.
		Timestamp: now,
	}

	sample, ok := filter.Evaluate(fix, "uid-1")

	require.True(t, ok)
	assert.NotEmpty(t, sample.ID)
	assert.Equal(t, "uid-1", sample.IdentityID)
	assert.Equal(t, fix.Latitude, sample.Latitude)
	assert.Equal(t, fix.Longitude, sample.Longitude)
	assert.Equal(t, fix.Accuracy, sample.Accuracy)
	assert.Equal(t, now, sample.Timestamp)
}

func TestSampleFilter_Evaluate_RejectsCoarseAccuracy(t *testing.T) {
	var filter sampleFilter

	fix := &entity.Fix{Latitude: 25.0, Longitude: 121.5, Accuracy: 20.1, Timestamp: time.Now()}

	sample, ok := filter.Evaluate(fix, "uid-1")

	assert.False(t, ok)
	assert.Nil(t, sample)
}

func TestSampleFilter_Evaluate_RejectsWithoutIdentity(t *testing.T) {
	var filter sampleFilter

	fix := &entity.Fix{Latitude: 25.0, Longitude: 121.5, Accuracy: 5, Timestamp: time.Now()}

	sample, ok := filter.Evaluate(fix, "")

	assert.False(t, ok)
	assert.Nil(t, sample)
}

func TestSampleFilter_Evaluate_RejectsNilFix(t *testing.T) {
	var filter sampleFilter

	sample, ok := filter.Evaluate(nil, "uid-1")

	assert.False(t, ok)
	assert.Nil(t, sample)
}

func TestSampleFilter_Evaluate_MintsUniqueIDs(t *testing.T) {
	var filter sampleFilter

	fix := &entity.Fix{Latitude: 25.0, Longitude: 121.5, Accuracy: 5, Timestamp: time.Now()}

	first, ok := filter.Evaluate(fix, "uid-1")
	require.True(t, ok)
	second, ok := filter.Evaluate(fix, "uid-1")
	require.True(t, ok)

	assert.NotEqual(t, first.ID, second.ID)
}
