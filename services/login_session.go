package services

import (
	"context"
	"strconv"
	"time"

	"pineus/errors"

	"github.com/redis/go-redis/v9"
)

// Phiên đăng nhập đang chờ OTP được giữ trong Redis theo sessionId.
// TTL trùng với thời gian hiệu lực của mã OTP đăng nhập.
const (
	loginSessionPrefix = "login_session:"
	LoginSessionTTL    = 10 * time.Minute
)

// SaveLoginSession lưu userID đang chờ xác thực OTP cho session
func SaveLoginSession(ctx context.Context, rdb *redis.Client, sessionId string, userID uint) error {
	return rdb.Set(ctx, loginSessionPrefix+sessionId, strconv.FormatUint(uint64(userID), 10), LoginSessionTTL).Err()
}

// GetLoginSession lấy userID đang chờ xác thực OTP của session
func GetLoginSession(ctx context.Context, rdb *redis.Client, sessionId string) (uint, error) {
	val, err := rdb.Get(ctx, loginSessionPrefix+sessionId).Result()
	if err == redis.Nil {
		return 0, errors.ErrNoPendingID
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, errors.ErrNoPendingID
	}

	return uint(userID), nil
}

// ClearLoginSession xoá phiên đăng nhập đang chờ sau khi xác thực xong
func ClearLoginSession(ctx context.Context, rdb *redis.Client, sessionId string) error {
	return rdb.Del(ctx, loginSessionPrefix+sessionId).Err()
}
