package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"finder/internal/pkg/errs"
	"finder/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
	EarthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint or ParseGeoPoint
// to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or ParseGeoPoint constructors")

// ErrGeoPointIsUnset is returned for the conventional "unset" point (0,0),
// which is never a real-world registration in this system.
var ErrGeoPointIsUnset = errs.NewValueIsRequiredError("geo point coordinates are not set")

// GeoPoint represents a WGS84 geographic coordinate pair with validated bounds.
// GeoPoint is an immutable value object; a location change is always modelled
// as wholesale replacement with a new point, never as in-place mutation.
//
// The storage and query convention throughout the system is longitude-first:
// persistence adapters and read models must write longitude before latitude
// and must never transpose the pair.
//
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(28.6139, 77.2090)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(77.2090,28.6139)
type GeoPoint struct { //nolint:recvcheck //using for validation
	longitude float64
	latitude  float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint from a latitude/longitude pair.
//
// Validation rules:
//   - both values must be finite numbers
//   - latitude must be within [LatitudeMin..LatitudeMax]
//   - longitude must be within [LongitudeMin..LongitudeMax]
//   - the pair (0,0) is rejected as the conventional "unset" point
//
// Parameters:
//   - latitude: The latitude in degrees
//   - longitude: The longitude in degrees
//
// Returns:
//   - GeoPoint: A valid geographic point
//   - error: Validation error if either coordinate is invalid
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	if point.latitude == 0 && point.longitude == 0 {
		return GeoPoint{}, ErrGeoPointIsUnset
	}

	return point, nil
}

// ParseGeoPoint creates a GeoPoint from textual coordinate representations.
// Callers receive coordinates as strings on several inbound paths; both values
// are parsed as floating point and then validated exactly like NewGeoPoint.
//
// Returns a validation error if either value is non-numeric or out of range.
func ParseGeoPoint(latRaw string, lngRaw string) (GeoPoint, error) {
	latitude, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}

	longitude, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return NewGeoPoint(latitude, longitude)
}

// Validate checks if the GeoPoint was properly constructed using a constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Longitude returns the longitude in degrees. Longitude is the first
// coordinate in the storage convention.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Coordinates returns the point as a longitude-first pair, matching the
// storage and query convention used throughout the system.
func (p GeoPoint) Coordinates() [2]float64 {
	return [2]float64{p.longitude, p.latitude}
}

// String returns a human-readable representation in longitude-first order.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.4f,%.4f)", p.longitude, p.latitude)
}

// IsEqual compares two points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.longitude == other.longitude && p.latitude == other.latitude, nil
}

// DistanceKm calculates the great-circle distance between two points using the
// Haversine formula with EarthRadiusKm, rounded to one decimal place.
//
// The computation is deterministic and symmetric:
// a.DistanceKm(b) == b.DistanceKm(a), and p.DistanceKm(p) == 0.
//
// Parameters:
//   - other: The GeoPoint to calculate distance to
//
// Returns:
//   - float64: Distance in kilometers, or -1 when either point is malformed
//   - error: Validation error if either point is improperly constructed
//
// Callers that cannot propagate an error must check for the -1 sentinel.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return -1, err
	}

	lat1 := degreesToRadians(p.latitude)
	lat2 := degreesToRadians(other.latitude)
	deltaLat := degreesToRadians(other.latitude - p.latitude)
	deltaLng := degreesToRadians(other.longitude - p.longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EarthRadiusKm*c*10) / 10, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, enabling self-encapsulated validation during construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) ||
		latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) ||
		longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
