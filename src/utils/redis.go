package utils

import (
	"context"
	"fmt"
	"strconv"
	"time"

	DB "Backend-CorpsConnect/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

func ensureClient() *redis.Client {
	return DB.RedisClient
}

// LogLoginAttempt records a failed attempt; successful logins clear the
// counter. No-op without Redis.
func LogLoginAttempt(email string, success bool) {
	client := ensureClient()
	if client == nil {
		return
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	if success {
		client.Del(Ctx, key)
		return
	}
	attempts, _ := client.Incr(Ctx, key).Result()
	if attempts == 1 {
		client.Expire(Ctx, key, loginCooldown)
	}
}

// IsRateLimited reports whether the email has exceeded the failed-attempt
// budget. Always false without Redis (unthrottled in that mode).
func IsRateLimited(email string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	val, err := client.Get(Ctx, fmt.Sprintf("login_attempts:%s", email)).Result()
	if err != nil {
		return false
	}
	attempts, _ := strconv.Atoi(val)
	return attempts >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the attempt counter expires.
func GetRemainingCooldownTime(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	ttl, err := client.TTL(Ctx, fmt.Sprintf("login_attempts:%s", email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// BlacklistToken stores a logged-out token until its natural expiry.
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether the token was invalidated by logout.
func IsTokenBlacklisted(token string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	_, err := client.Get(Ctx, fmt.Sprintf("blacklist:%s", token)).Result()
	if err == redis.Nil {
		return false
	}
	return err == nil
}
