package location

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"

	"github.com/go-redis/redis/v8"
)

const cacheTTL = 24 * time.Hour

// Resolver produces a best-effort location for a request. Coordinates
// come from the client; nil means the caller had no sensor data and gets
// the default city. Geocoding is single-attempt: a failure degrades to a
// raw coordinate label, never to an error. Successful lookups are cached
// in Redis when a client is configured.
type Resolver struct {
	geocoder Geocoder
	cache    *redis.Client
}

func NewResolver(geocoder Geocoder, cache *redis.Client) *Resolver {
	return &Resolver{geocoder: geocoder, cache: cache}
}

func (r *Resolver) Resolve(ctx context.Context, coords *geo.Point) (Resolved, error) {
	if coords == nil {
		return Resolved{Point: DefaultPoint, Address: DefaultAddress, Source: "default"}, nil
	}
	if err := coords.Validate(); err != nil {
		return Resolved{}, err
	}

	key := cacheKey(*coords)
	if r.cache != nil {
		if address, err := r.cache.Get(ctx, key).Result(); err == nil && address != "" {
			return Resolved{Point: *coords, Address: address, Source: "cache"}, nil
		}
	}

	address, err := r.geocoder.Reverse(ctx, *coords)
	if err != nil {
		log.Printf("reverse geocode failed (lat=%.4f lng=%.4f): %v", coords.Lat, coords.Lng, err)
		return Resolved{
			Point:   *coords,
			Address: fmt.Sprintf("%.4f, %.4f", coords.Lat, coords.Lng),
			Source:  "coordinates",
		}, nil
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, address, cacheTTL).Err(); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return Resolved{Point: *coords, Address: address, Source: "geocoder"}, nil
}

// cacheKey rounds to 4 decimals (~11m) so nearby lookups share an entry.
func cacheKey(p geo.Point) string {
	return fmt.Sprintf("geocode:%.4f:%.4f", p.Lat, p.Lng)
}
