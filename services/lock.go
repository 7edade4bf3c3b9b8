package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stayhub/errors"
)

// Validate-then-commit is not atomic: two concurrent booking requests for
// the last room of a category could both pass validation and both commit.
// PropertyLock serializes the validate+commit window per property with a
// redis SET NX lease.
const lockTTL = 10 * time.Second

type PropertyLock struct {
	rdb   *redis.Client
	key   string
	token string
}

// AcquirePropertyLock takes the booking lock for a property. It fails fast
// with ErrPropertyLocked instead of waiting; the caller resubmits.
func AcquirePropertyLock(ctx context.Context, rdb *redis.Client, propertyID uint) (*PropertyLock, error) {
	lock := &PropertyLock{
		rdb:   rdb,
		key:   fmt.Sprintf("booking_lock:property:%d", propertyID),
		token: uuid.NewString(),
	}

	ok, err := rdb.SetNX(ctx, lock.key, lock.token, lockTTL).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrPropertyLocked
	}
	return lock, nil
}

// Release frees the lock if this holder still owns it. An expired lease is
// left alone so a later holder is not evicted.
func (l *PropertyLock) Release(ctx context.Context) error {
	val, err := l.rdb.Get(ctx, l.key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	if val != l.token {
		return nil
	}
	return l.rdb.Del(ctx, l.key).Err()
}
