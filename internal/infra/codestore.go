package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CodeStore keeps password-change verification codes in Redis with a TTL, so
// codes survive restarts and expire on their own instead of living in process
// memory.
type CodeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

const codeTTL = 10 * time.Minute

func NewCodeStore(rdb *redis.Client) *CodeStore {
	return &CodeStore{rdb: rdb, ttl: codeTTL}
}

func codeKey(email string) string {
	return fmt.Sprintf("verificacion:%s", email)
}

// Save stores the code for the email, replacing any previous one.
func (s *CodeStore) Save(ctx context.Context, email, code string) error {
	return s.rdb.Set(ctx, codeKey(email), code, s.ttl).Err()
}

// Verify compares the submitted code against the stored one and consumes it on
// success. A missing or expired code reports as not matching.
func (s *CodeStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	if err := s.rdb.Del(ctx, codeKey(email)).Err(); err != nil {
		return false, err
	}
	return true, nil
}
