package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"nyumba/shared/cache"
	"nyumba/shared/constant"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the given parts into a colon-separated cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery appends a digest of the given query values to the
// prefix so that distinct parameter combinations cache independently.
func BuildCacheKeyWithQuery(prefix string, queries ...any) string {
	raw, err := json.Marshal(queries)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal cache key queries")

		return prefix
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:8]))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redis cache.RedisCache, prefix string) {
	if err := redis.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
