package services

import (
	"errors"
	"fmt"
	"math"
	"nearest-route-service/internal/domain"
	"strconv"
	"strings"
	"unicode"
)

// One known encoding of the dataset's GEO field. split returns the latitude
// and longitude tokens and whether the strategy recognized the input at all.
// Strategies are tried in order; the first that recognizes the input decides
// the outcome, even if its tokens then fail to parse.
type parseStrategy struct {
	name  string
	split func(s string) (latTok, lonTok string, ok bool)
}

var parseStrategies = []parseStrategy{
	{name: "comma", split: splitOnComma},
	{name: "sign", split: splitOnSign},
}

// ParseCoordinate converts one raw GEO field into a GeoPoint.
//
// The dataset encodes coordinates either as "lat,lon" (with arbitrary
// whitespace) or as "latlon" with no delimiter at all, relying on the
// longitude's leading minus sign to mark the split point. Failures come back
// as *domain.GeoParseError values carrying the offending raw string; callers
// drop the row and continue, they never abort the batch.
func ParseCoordinate(raw string) (domain.GeoPoint, error) {
	cleaned := stripWhitespace(raw)
	if cleaned == "" {
		return domain.GeoPoint{}, &domain.GeoParseError{Raw: raw, Reason: "empty coordinate"}
	}

	for _, strat := range parseStrategies {
		latTok, lonTok, ok := strat.split(cleaned)
		if !ok {
			continue
		}

		lat, err := parseFinite(latTok)
		if err != nil {
			return domain.GeoPoint{}, &domain.GeoParseError{
				Raw:    raw,
				Reason: fmt.Sprintf("%s split: latitude %q: %v", strat.name, latTok, err),
			}
		}

		lon, err := parseFinite(lonTok)
		if err != nil {
			return domain.GeoPoint{}, &domain.GeoParseError{
				Raw:    raw,
				Reason: fmt.Sprintf("%s split: longitude %q: %v", strat.name, lonTok, err),
			}
		}

		return domain.GeoPoint{Lat: lat, Lon: lon}, nil
	}

	return domain.GeoPoint{}, &domain.GeoParseError{Raw: raw, Reason: "no recognizable delimiter"}
}

// Split "lat,lon" at the first comma.
func splitOnComma(s string) (string, string, bool) {
	lat, lon, found := strings.Cut(s, ",")
	if !found {
		return "", "", false
	}
	return lat, lon, true
}

// Split a comma-less "latlon" string using sign structure. The dataset's
// convention is that the longitude is always negative, so its leading minus
// sign is the only reliable split point.
func splitOnSign(s string) (string, string, bool) {
	if strings.HasPrefix(s, "-") {
		// Negative latitude: the split is at the second minus sign.
		// A lone leading minus with no second one is a single-number
		// string and has no reliable split point.
		pos := strings.IndexByte(s[1:], '-')
		if pos < 0 {
			return "", "", false
		}
		pos++
		return s[:pos], s[pos:], true
	}

	pos := strings.IndexByte(s, '-')
	if pos < 0 {
		return "", "", false
	}
	return s[:pos], s[pos:], true
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parseFinite rejects the non-finite values ParseFloat happily produces
// ("NaN", "Inf", overflowing exponents).
func parseFinite(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not finite")
	}
	return v, nil
}
