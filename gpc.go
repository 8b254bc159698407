// Package gpc encodes latitude/longitude pairs as Grid Point Codes, short
// base 27 codes such as "#1000-0000-000" that keep five fractional digits
// of each axis (about 1.1 meters at the equator), and decodes them again.
package gpc

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/shopspring/decimal"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// LatLng returns c as an s2.LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.5f,%.5f", c.Latitude, c.Longitude)
}

// Encode returns the grid point code for the given latitude and longitude in
// degrees. Latitude must be strictly between -90 and 90 and longitude strictly
// between -180 and 180. Digits past the fifth fractional digit are
// truncated. If formatted is true the code is returned in its printable
// form, see Format.
func Encode(latitude, longitude float64, formatted bool) (string, error) {
	// written so that NaN fails
	if !(latitude > -90 && latitude < 90) {
		return "", fmt.Errorf("%w: %v", ErrInvalidLatitude, latitude)
	}
	if !(longitude > -180 && longitude < 180) {
		return "", fmt.Errorf("%w: %v", ErrInvalidLongitude, longitude)
	}

	lat := decompose(latitude)
	lng := decompose(longitude)
	combination := combine(signedWholePair{
		latSign:  lat.sign,
		latWhole: lat.whole,
		lngSign:  lng.sign,
		lngWhole: lng.whole,
	})

	code := toCode(encodePoint(combination, lat, lng))
	if formatted {
		code = Format(code)
	}
	return code, nil
}

// EncodeLatLng is Encode for an s2.LatLng. The angles are first rounded to
// 1e-7 degrees to drop the noise of the radian conversion.
func EncodeLatLng(ll s2.LatLng, formatted bool) (string, error) {
	lat, lng := ll.Lat.Degrees(), ll.Lng.Degrees()
	if ll.IsValid() {
		lat = float64(ll.Lat.E7()) / 1e7
		lng = float64(ll.Lng.E7()) / 1e7
	}
	return Encode(lat, lng, formatted)
}

// Decode returns the coordinate for a grid point code. The code may be in
// printable form or not, and in any case; spaces are ignored. Codes whose
// value lies outside what Encode can produce, such as "00000000000" or
// anything else below "10000000000", fail with ErrInvalidCodeValue.
func Decode(code string) (Coordinate, error) {
	lat, lng, err := decodeParts(code)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Latitude: lat.compose(), Longitude: lng.compose()}, nil
}

// DecodeLatLng is Decode returning an s2.LatLng.
func DecodeLatLng(code string) (s2.LatLng, error) {
	c, err := Decode(code)
	if err != nil {
		return s2.LatLng{}, err
	}
	return c.LatLng(), nil
}

// DecodeRect returns the cell of coordinates that encode to code. Each axis
// spans 1e-5 degrees from the decoded value away from zero, since encoding
// truncates.
func DecodeRect(code string) (s2.Rect, error) {
	lat, lng, err := decodeParts(code)
	if err != nil {
		return s2.Rect{}, err
	}
	latLo, latHi := cellBounds(lat)
	lngLo, lngHi := cellBounds(lng)
	return s2.Rect{
		Lat: r1.Interval{Lo: latLo.Radians(), Hi: latHi.Radians()},
		Lng: s1.IntervalFromEndpoints(lngLo.Radians(), lngHi.Radians()),
	}, nil
}

func cellBounds(p axisParts) (lo, hi s1.Angle) {
	v := p.compose()
	w := v + float64(p.sign)/fractionScale
	if p.sign < 0 {
		v, w = w, v
	}
	return s1.Angle(v) * s1.Degree, s1.Angle(w) * s1.Degree
}

// Validate reports whether code decodes, returning the same error Decode
// would.
func Validate(code string) error {
	_, _, err := decodeParts(code)
	return err
}

// Canonical decodes code and encodes the result again in printable form.
// An axis encoded with a negative sign but no whole or fractional digits,
// as Encode produces for values in (-0.00001, 0), decodes to 0 and is
// rewritten with a positive sign; other codes come back unchanged apart
// from formatting.
func Canonical(code string) (string, error) {
	c, err := Decode(code)
	if err != nil {
		return "", err
	}
	return Encode(c.Latitude, c.Longitude, true)
}

// Round5 rounds v half away from zero to five fractional digits, for callers
// that want Encode to round rather than truncate.
// NaN and infinities are returned as is.
func Round5(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(fractionDigits).InexactFloat64()
}

func decodeParts(code string) (lat, lng axisParts, err error) {
	c := Unformat(code)
	if err = checkCode(c); err != nil {
		return
	}
	value, err := fromCode(c)
	if err != nil {
		return
	}
	combination, lat, lng, err := decodePoint(value)
	if err != nil {
		return
	}
	pair, err := split(combination)
	if err != nil {
		return
	}
	lat.sign, lat.whole = pair.latSign, pair.latWhole
	lng.sign, lng.whole = pair.lngSign, pair.lngWhole
	return
}
