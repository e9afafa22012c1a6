// Package timezone keeps the application clock in one configured location.
//
// Call Init once during startup with an IANA name such as "UTC" or
// "America/Lima". Until then every helper works in UTC.
//
//	now := timezone.Now()
//	stamp := timezone.Format(now, constant.DateFormat)
package timezone
