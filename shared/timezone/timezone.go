package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultLocation = "UTC"

var appLocation atomic.Pointer[time.Location]

// Init loads name as the application location. An empty name selects UTC.
func Init(name string) error {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = defaultLocation
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation.Store(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	appLocation.Store(loc)

	log.Info().Str("timezone", name).Msg("Application timezone initialized")

	return nil
}

// Location returns the application location, UTC before Init.
func Location() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
