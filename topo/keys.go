package topo

import (
	"strconv"

	"github.com/golang/geo/s2"
	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
)

// KeyFunc maps a coordinate to the string used for explicit node matching.
type KeyFunc func(orb.Point) string

// CoordinateKey formats the exact coordinate as "lon|lat".
func CoordinateKey(p orb.Point) string {
	return strconv.FormatFloat(p.Lon(), 'f', -1, 64) + "|" + strconv.FormatFloat(p.Lat(), 'f', -1, 64)
}

// GeohashKey quantizes coordinates to a geohash cell of the given length.
func GeohashKey(precision uint) KeyFunc {
	return func(p orb.Point) string {
		return geohash.EncodeWithPrecision(p.Lat(), p.Lon(), precision)
	}
}

// CellKey quantizes coordinates to the S2 cell at the given level.
func CellKey(level int) KeyFunc {
	return func(p orb.Point) string {
		ll := s2.LatLngFromDegrees(p.Lat(), p.Lon())
		return s2.CellIDFromLatLng(ll).Parent(level).ToToken()
	}
}
