package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/errs"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{
			name: "valid point",
			lat:  28.6139,
			lng:  77.2090,
		},
		{
			name: "valid point at latitude bounds",
			lat:  90,
			lng:  10,
		},
		{
			name: "valid point at longitude bounds",
			lat:  -45,
			lng:  -180,
		},
		{
			name: "valid point on equator",
			lat:  0,
			lng:  77.2090,
		},
		{
			name: "valid point on prime meridian",
			lat:  51.4779,
			lng:  0,
		},
		{
			name:    "latitude too small",
			lat:     -90.0001,
			lng:     10,
			wantErr: true,
		},
		{
			name:    "latitude too large",
			lat:     90.0001,
			lng:     10,
			wantErr: true,
		},
		{
			name:    "longitude too small",
			lat:     10,
			lng:     -180.5,
			wantErr: true,
		},
		{
			name:    "longitude too large",
			lat:     10,
			lng:     181,
			wantErr: true,
		},
		{
			name:    "both out of range",
			lat:     120,
			lng:     200,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.lat, tt.lng)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, point)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.lat, point.Latitude())
				assert.Equal(t, tt.lng, point.Longitude())
				assert.NoError(t, point.Validate())
			}
		})
	}
}

func TestNewGeoPoint_UnsetConvention(t *testing.T) {
	// (0,0) is never a real-world registration in this system.
	point, err := kernel.NewGeoPoint(0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Zero(t, point)
}

func TestParseGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		latRaw  string
		lngRaw  string
		wantLat float64
		wantLng float64
		wantErr bool
	}{
		{
			name:    "valid textual pair",
			latRaw:  "28.6139",
			lngRaw:  "77.2090",
			wantLat: 28.6139,
			wantLng: 77.2090,
		},
		{
			name:    "integers parse as floats",
			latRaw:  "12",
			lngRaw:  "-77",
			wantLat: 12,
			wantLng: -77,
		},
		{
			name:    "non-numeric latitude",
			latRaw:  "abc",
			lngRaw:  "77.2090",
			wantErr: true,
		},
		{
			name:    "non-numeric longitude",
			latRaw:  "28.6139",
			lngRaw:  "east",
			wantErr: true,
		},
		{
			name:    "empty input",
			latRaw:  "",
			lngRaw:  "",
			wantErr: true,
		},
		{
			name:    "out of range after parsing",
			latRaw:  "91",
			lngRaw:  "0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.ParseGeoPoint(tt.latRaw, tt.lngRaw)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, point)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLat, point.Latitude())
				assert.Equal(t, tt.wantLng, point.Longitude())
			}
		})
	}
}

func TestGeoPoint_Coordinates_LongitudeFirst(t *testing.T) {
	point := mustNewGeoPoint(t, 28.6139, 77.2090)

	coords := point.Coordinates()
	assert.Equal(t, 77.2090, coords[0], "longitude must come first")
	assert.Equal(t, 28.6139, coords[1])
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		point := mustNewGeoPoint(t, 28.6139, 77.2090)
		assert.NoError(t, point.Validate())
	})

	t.Run("zero value point", func(t *testing.T) {
		var point kernel.GeoPoint
		err := point.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("known fixture within tolerance", func(t *testing.T) {
		// Two Delhi-area points roughly 4.6 km apart.
		a := mustNewGeoPoint(t, 28.6139, 77.2090)
		b := mustNewGeoPoint(t, 28.6500, 77.2300)

		distance, err := a.DistanceKm(b)
		require.NoError(t, err)
		assert.InDelta(t, 4.6, distance, 0.2)
	})

	t.Run("distance to self is zero", func(t *testing.T) {
		point := mustNewGeoPoint(t, 48.8566, 2.3522)

		distance, err := point.DistanceKm(point)
		require.NoError(t, err)
		assert.Zero(t, distance)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a := mustNewGeoPoint(t, 28.6139, 77.2090)
		b := mustNewGeoPoint(t, 19.0760, 72.8777)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	})

	t.Run("result is rounded to one decimal", func(t *testing.T) {
		a := mustNewGeoPoint(t, 28.6139, 77.2090)
		b := mustNewGeoPoint(t, 28.6500, 77.2300)

		distance, err := a.DistanceKm(b)
		require.NoError(t, err)
		assert.Equal(t, distance, float64(int(distance*10))/10)
	})

	t.Run("malformed point yields sentinel", func(t *testing.T) {
		var malformed kernel.GeoPoint
		point := mustNewGeoPoint(t, 28.6139, 77.2090)

		distance, err := point.DistanceKm(malformed)
		require.Error(t, err)
		assert.Equal(t, float64(-1), distance)

		distance, err = malformed.DistanceKm(point)
		require.Error(t, err)
		assert.Equal(t, float64(-1), distance)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	tests := []struct {
		name    string
		a       kernel.GeoPoint
		b       kernel.GeoPoint
		want    bool
		wantErr bool
	}{
		{
			name: "equal points",
			a:    mustNewGeoPoint(t, 28.6139, 77.2090),
			b:    mustNewGeoPoint(t, 28.6139, 77.2090),
			want: true,
		},
		{
			name: "different latitude",
			a:    mustNewGeoPoint(t, 28.6139, 77.2090),
			b:    mustNewGeoPoint(t, 28.6500, 77.2090),
			want: false,
		},
		{
			name: "different longitude",
			a:    mustNewGeoPoint(t, 28.6139, 77.2090),
			b:    mustNewGeoPoint(t, 28.6139, 77.2300),
			want: false,
		},
		{
			name:    "first point invalid",
			a:       kernel.GeoPoint{},
			b:       mustNewGeoPoint(t, 28.6139, 77.2090),
			wantErr: true,
		},
		{
			name:    "second point invalid",
			a:       mustNewGeoPoint(t, 28.6139, 77.2090),
			b:       kernel.GeoPoint{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.IsEqual(tt.b)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGeoPoint_String(t *testing.T) {
	point := mustNewGeoPoint(t, 28.6139, 77.2090)
	assert.Equal(t, "GeoPoint(77.2090,28.6139)", point.String())
}

func mustNewGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}
