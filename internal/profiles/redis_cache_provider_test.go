package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"oracle-dashboard/internal/models"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRedisCacheClient is a mock implementation of RedisCacheClient
type MockRedisCacheClient struct {
	mock.Mock
}

func (m *MockRedisCacheClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockRedisCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *MockRedisCacheClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func (m *MockRedisCacheClient) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	args := m.Called(ctx, pattern)
	return args.Get(0).(*redis.StringSliceCmd)
}

func (m *MockRedisCacheClient) Ping(ctx context.Context) *redis.StatusCmd {
	args := m.Called(ctx)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *MockRedisCacheClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Helper function to create a StringCmd with a result
func createStringCmd(result string, err error) *redis.StringCmd {
	cmd := redis.NewStringCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(result)
	}
	return cmd
}

// Helper function to create a StatusCmd
func createStatusCmd(err error) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("OK")
	}
	return cmd
}

// Helper function to create an IntCmd
func createIntCmd(result int64, err error) *redis.IntCmd {
	cmd := redis.NewIntCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(result)
	}
	return cmd
}

// Helper function to create a StringSliceCmd
func createStringSliceCmd(result []string, err error) *redis.StringSliceCmd {
	cmd := redis.NewStringSliceCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(result)
	}
	return cmd
}

func TestRedisCache_Key(t *testing.T) {
	mockClient := new(MockRedisCacheClient)
	cache := &RedisCache{
		client: mockClient,
		logger: slog.Default(),
	}

	tests := []struct {
		name     string
		digest   string
		expected string
	}{
		{
			name:     "simple digest",
			digest:   "abc123",
			expected: "cache:profile:abc123",
		},
		{
			name:     "full sha256 digest",
			digest:   "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
			expected: "cache:profile:9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		},
		{
			name:     "empty digest",
			digest:   "",
			expected: "cache:profile:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cache.key(tt.digest)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRedisCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("successful get", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		cachedProfile := CachedProfile{
			User:      &models.User{ID: "u-1", Email: "sage@example.com"},
			FetchedAt: time.Now(),
		}
		jsonData, _ := json.Marshal(cachedProfile)

		mockClient.On("Get", ctx, "cache:profile:abc").
			Return(createStringCmd(string(jsonData), nil))

		result, found := cache.Get(ctx, "abc")
		assert.True(t, found)
		assert.Equal(t, cachedProfile.User.ID, result.User.ID)
		assert.Equal(t, cachedProfile.User.Email, result.User.Email)
		mockClient.AssertExpectations(t)
	})

	t.Run("cache miss - key not found", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Get", ctx, "cache:profile:missing").
			Return(createStringCmd("", redis.Nil))

		result, found := cache.Get(ctx, "missing")
		assert.False(t, found)
		assert.Equal(t, CachedProfile{}, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("redis error", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Get", ctx, "cache:profile:error").
			Return(createStringCmd("", errors.New("connection error")))

		result, found := cache.Get(ctx, "error")
		assert.False(t, found)
		assert.Equal(t, CachedProfile{}, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("invalid json data", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Get", ctx, "cache:profile:invalid").
			Return(createStringCmd("invalid json", nil))

		result, found := cache.Get(ctx, "invalid")
		assert.False(t, found)
		assert.Equal(t, CachedProfile{}, result)
		mockClient.AssertExpectations(t)
	})
}

func TestRedisCache_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("successful set", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		profile := CachedProfile{
			User:      &models.User{ID: "u-1"},
			FetchedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Minute),
		}

		mockClient.On("Set", ctx, "cache:profile:abc", mock.Anything, mock.Anything).
			Return(createStatusCmd(nil))

		cache.Set(ctx, "abc", profile)
		mockClient.AssertExpectations(t)
	})

	t.Run("set without expiry uses no ttl", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		profile := CachedProfile{
			User:      &models.User{ID: "u-1"},
			FetchedAt: time.Now(),
		}

		mockClient.On("Set", ctx, "cache:profile:abc", mock.Anything, time.Duration(0)).
			Return(createStatusCmd(nil))

		cache.Set(ctx, "abc", profile)
		mockClient.AssertExpectations(t)
	})

	t.Run("stale entry is not written", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		profile := CachedProfile{
			User:      &models.User{ID: "u-1"},
			FetchedAt: time.Now().Add(-2 * time.Minute),
			ExpiresAt: time.Now().Add(-time.Minute),
		}

		cache.Set(ctx, "abc", profile)
		mockClient.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("set with redis error", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		profile := CachedProfile{
			User:      &models.User{ID: "u-1"},
			FetchedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Minute),
		}

		mockClient.On("Set", ctx, "cache:profile:abc", mock.Anything, mock.Anything).
			Return(createStatusCmd(errors.New("connection error")))

		// Should not panic, just log error
		cache.Set(ctx, "abc", profile)
		mockClient.AssertExpectations(t)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Del", ctx, []string{"cache:profile:abc"}).
			Return(createIntCmd(1, nil))

		cache.Delete(ctx, "abc")
		mockClient.AssertExpectations(t)
	})

	t.Run("delete with redis error", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Del", ctx, []string{"cache:profile:abc"}).
			Return(createIntCmd(0, errors.New("connection error")))

		// Should not panic, just log error
		cache.Delete(ctx, "abc")
		mockClient.AssertExpectations(t)
	})
}

func TestRedisCache_Size(t *testing.T) {
	ctx := context.Background()

	t.Run("successful size calculation", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		keys := []string{
			"cache:profile:aaa",
			"cache:profile:bbb",
			"cache:profile:ccc",
		}

		mockClient.On("Keys", ctx, "cache:profile:*").
			Return(createStringSliceCmd(keys, nil))

		result := cache.Size(ctx)
		assert.Equal(t, 3, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("size with redis error", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Keys", ctx, "cache:profile:*").
			Return(createStringSliceCmd(nil, errors.New("connection error")))

		result := cache.Size(ctx)
		assert.Equal(t, 0, result)
		mockClient.AssertExpectations(t)
	})
}

func TestRedisCache_Ping(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Ping", ctx).Return(createStatusCmd(nil))

		assert.NoError(t, cache.Ping(ctx))
		mockClient.AssertExpectations(t)
	})

	t.Run("unhealthy", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Ping", ctx).Return(createStatusCmd(errors.New("connection refused")))

		assert.Error(t, cache.Ping(ctx))
		mockClient.AssertExpectations(t)
	})
}

func TestRedisCache_Close(t *testing.T) {
	t.Run("successful close", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		mockClient.On("Close").Return(nil)

		err := cache.Close()
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("close with error", func(t *testing.T) {
		mockClient := new(MockRedisCacheClient)
		cache := &RedisCache{
			client: mockClient,
			logger: slog.Default(),
		}

		expectedErr := errors.New("close error")
		mockClient.On("Close").Return(expectedErr)

		err := cache.Close()
		assert.Error(t, err)
		assert.Equal(t, expectedErr, err)
		mockClient.AssertExpectations(t)
	})
}
