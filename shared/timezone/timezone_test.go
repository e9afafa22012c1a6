package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"floorplan/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("UTC") })

	require.NoError(t, timezone.Init("America/Lima"))
	assert.Equal(t, "America/Lima", timezone.Location().String())
	assert.Equal(t, "America/Lima", timezone.Now().Location().String())

	require.NoError(t, timezone.Init(""))
	assert.Equal(t, time.UTC, timezone.Location())
}

func TestInit_UnknownZoneFallsBackToUTC(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("UTC") })

	assert.Error(t, timezone.Init("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, timezone.Location())
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("UTC") })

	require.NoError(t, timezone.Init("America/Lima"))

	instant := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-01T12:00:00-05:00", timezone.Format(instant, time.RFC3339))
	assert.True(t, timezone.ToAppTime(instant).Equal(instant))
}
