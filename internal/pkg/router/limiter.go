package router

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/SandeshLive/Sandesh/internal/pkg/cache"
	"github.com/SandeshLive/Sandesh/internal/pkg/env"
)

// Rate-limit tiers. Counters live in Redis so they survive restarts and are
// shared between instances.
const (
	publicLimit = 100
	adminLimit  = 500
	authLimit   = 20
	heavyLimit  = 10

	windowShort = 15 * time.Minute
	windowHeavy = time.Hour
)

var (
	limiterStore     fiber.Storage
	limiterStoreOnce sync.Once
)

// limiterStorage builds the shared Redis storage from the cache client's
// connection settings, on database 1 (the cache itself uses DB 0).
func limiterStorage() fiber.Storage {
	limiterStoreOnce.Do(func() {
		host := "localhost"
		port := 6379
		password := env.GetEnv("CACHE_PASSWORD", "")
		if c := cache.GetClient(); c != nil {
			if h, p, err := net.SplitHostPort(c.Options().Addr); err == nil {
				host = h
				if v, err := strconv.Atoi(p); err == nil {
					port = v
				}
			}
			if p := c.Options().Password; p != "" {
				password = p
			}
		}
		limiterStore = redis.New(redis.Config{
			Host:     host,
			Port:     port,
			Password: password,
			Database: 1,
			Reset:    false,
		})
	})
	return limiterStore
}

func newLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Storage:    limiterStorage(),
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "बहुत अधिक अनुरोध, कृपया बाद में पुनः प्रयास करें",
			})
		},
	})
}

func publicLimiter() fiber.Handler { return newLimiter(publicLimit, windowShort) }
func adminLimiter() fiber.Handler  { return newLimiter(adminLimit, windowShort) }
func authLimiter() fiber.Handler   { return newLimiter(authLimit, windowShort) }
func heavyLimiter() fiber.Handler  { return newLimiter(heavyLimit, windowHeavy) }
