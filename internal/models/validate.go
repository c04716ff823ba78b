package models

import "fmt"

// ValidationError reports a request field that passed binding but breaks a
// cross-field rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validateCoordinates requires latitude and longitude to be set together.
func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return &ValidationError{Field: "lat", Message: "lat and lng must be provided together"}
	}
	return nil
}
