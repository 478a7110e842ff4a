package services

import (
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tetteam4/swimming-project/internal/database"
)

const denylistPrefix = "denylist:"

// AddToDenylist marks a token revoked until its natural expiry.
func AddToDenylist(tokenString string, expiration time.Duration) error {
	key := denylistPrefix + tokenString
	return database.RedisClient.Set(database.Ctx, key, 1, expiration).Err()
}

// IsDenylisted reports whether a token was revoked by logout.
func IsDenylisted(tokenString string) (bool, error) {
	key := denylistPrefix + tokenString
	val, err := database.RedisClient.Get(database.Ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}
