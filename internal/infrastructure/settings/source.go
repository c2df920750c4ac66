// internal/infrastructure/settings/source.go
package settings

import (
	"context"
	"fmt"
	"sync"
	"time"

	redisdb "github.com/kraken-dive/storefront-backend/internal/infrastructure/database/redis"
	"github.com/sirupsen/logrus"
)

// CacheDuration is how long resolved lookups stay valid.
const CacheDuration = 5 * time.Minute

// fetchLatency simulates the round trip to the settings database.
const fetchLatency = 50 * time.Millisecond

// ErrUnknownStoreType is returned for store types outside the known set.
var ErrUnknownStoreType = fmt.Errorf("unknown store type")

// Source resolves keyed settings lookups against the simulated settings
// database. Results are cached for CacheDuration in Redis when available,
// with an in-process cache as fallback so a Redis outage never blocks a
// lookup.
type Source struct {
	redis  *redisdb.Client // nil when Redis is unavailable
	logger *logrus.Logger

	mu      sync.Mutex
	local   map[string]localEntry
	latency time.Duration
}

type localEntry struct {
	value     interface{}
	expiresAt time.Time
}

// NewSource creates a settings source. redisClient may be nil.
func NewSource(redisClient *redisdb.Client, logger *logrus.Logger) *Source {
	return &Source{
		redis:   redisClient,
		logger:  logger,
		local:   make(map[string]localEntry),
		latency: fetchLatency,
	}
}

// Stock resolves stock display settings
func (s *Source) Stock(ctx context.Context) (StockSettings, error) {
	var out StockSettings
	err := s.lookup(ctx, "settings:stock", &out, func() interface{} {
		return stockData
	})
	return out, err
}

// Tax resolves tax settings, optionally for a specific region
func (s *Source) Tax(ctx context.Context, region string) (TaxSettings, error) {
	key := fmt.Sprintf("settings:tax:%s", orDefault(region))
	var out TaxSettings
	err := s.lookup(ctx, key, &out, func() interface{} {
		if t, ok := regionalTaxData[region]; ok {
			return t
		}
		return taxData
	})
	return out, err
}

// Pricing resolves pricing settings, optionally for a specific region
func (s *Source) Pricing(ctx context.Context, region string) (PricingSettings, error) {
	key := fmt.Sprintf("settings:pricing:%s", orDefault(region))
	var out PricingSettings
	err := s.lookup(ctx, key, &out, func() interface{} {
		if p, ok := regionalPricingData[region]; ok {
			return p
		}
		return pricingData
	})
	return out, err
}

// UI resolves presentation settings, optionally for a season
func (s *Source) UI(ctx context.Context, season string) (UISettings, error) {
	key := fmt.Sprintf("settings:ui:%s", orDefault(season))
	var out UISettings
	err := s.lookup(ctx, key, &out, func() interface{} {
		ui := uiData
		if seasonal, ok := seasonalData[season]; ok {
			ui.StockColors = seasonal.StockColors
		}
		return ui
	})
	return out, err
}

// Business resolves company metadata
func (s *Source) Business(ctx context.Context) (BusinessSettings, error) {
	var out BusinessSettings
	err := s.lookup(ctx, "settings:business", &out, func() interface{} {
		return businessData
	})
	return out, err
}

// StoreType resolves overrides for a store type (retail, wholesale, outlet)
func (s *Source) StoreType(ctx context.Context, storeType string) (StoreTypeSettings, error) {
	if _, ok := storeTypeData[storeType]; !ok {
		return StoreTypeSettings{}, fmt.Errorf("%w: %q", ErrUnknownStoreType, storeType)
	}
	key := fmt.Sprintf("settings:store_type:%s", storeType)
	var out StoreTypeSettings
	err := s.lookup(ctx, key, &out, func() interface{} {
		return storeTypeData[storeType]
	})
	return out, err
}

// Season resolves seasonal overrides; ok is false for unknown seasons
func (s *Source) Season(season string) (SeasonSettings, bool) {
	seasonal, ok := seasonalData[season]
	return seasonal, ok
}

// Invalidate drops every cached lookup so the next read hits the tables again
func (s *Source) Invalidate(ctx context.Context) {
	s.mu.Lock()
	keys := make([]string, 0, len(s.local))
	for k := range s.local {
		keys = append(keys, k)
	}
	s.local = make(map[string]localEntry)
	s.mu.Unlock()

	if s.redis != nil && len(keys) > 0 {
		if err := s.redis.Del(ctx, keys...); err != nil {
			s.logger.WithError(err).Warn("failed to invalidate settings cache in redis")
		}
	}
}

// lookup serves key from cache or fetches it from the backing tables.
func (s *Source) lookup(ctx context.Context, key string, dest interface{}, fetch func() interface{}) error {
	if s.redis != nil {
		err := s.redis.GetJSON(ctx, key, dest)
		if err == nil {
			return nil
		}
		if !redisdb.IsNotFound(err) {
			s.logger.WithError(err).WithField("key", key).Warn("settings cache read failed, falling back")
		}
	}

	s.mu.Lock()
	if entry, ok := s.local[key]; ok && time.Now().Before(entry.expiresAt) {
		value := entry.value
		s.mu.Unlock()
		return assign(value, dest)
	}
	s.mu.Unlock()

	// Simulated database round trip.
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
		return ctx.Err()
	}

	value := fetch()

	s.mu.Lock()
	s.local[key] = localEntry{value: value, expiresAt: time.Now().Add(CacheDuration)}
	s.mu.Unlock()

	if s.redis != nil {
		if err := s.redis.SetJSON(ctx, key, value, CacheDuration); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("settings cache write failed")
		}
	}

	return assign(value, dest)
}

// assign copies a fetched value into the caller's typed destination.
func assign(value, dest interface{}) error {
	switch d := dest.(type) {
	case *StockSettings:
		v, ok := value.(StockSettings)
		if !ok {
			return fmt.Errorf("settings: unexpected value type %T for %T", value, dest)
		}
		*d = v
	case *TaxSettings:
		v, ok := value.(TaxSettings)
		if !ok {
			return fmt.Errorf("settings: unexpected value type %T for %T", value, dest)
		}
		*d = v
	case *PricingSettings:
		v, ok := value.(PricingSettings)
		if !ok {
			return fmt.Errorf("settings: unexpected value type %T for %T", value, dest)
		}
		*d = v
	case *UISettings:
		v, ok := value.(UISettings)
		if !ok {
			return fmt.Errorf("settings: unexpected value type %T for %T", value, dest)
		}
		*d = v
	case *BusinessSettings:
		v, ok := value.(BusinessSettings)
		if !ok {
			return fmt.Errorf("settings: unexpected value type %T for %T", value, dest)
		}
		*d = v
	case *StoreTypeSettings:
		v, ok := value.(StoreTypeSettings)
		if !ok {
			return fmt.Errorf("settings: unexpected value type %T for %T", value, dest)
		}
		*d = v
	default:
		return fmt.Errorf("settings: unsupported destination type %T", dest)
	}
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "default"
	}
	return s
}
