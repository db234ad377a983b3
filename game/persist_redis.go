package game

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisGameTracker persists serialized game states in redis so games
// survive a process restart.
type RedisGameTracker struct {
	rdclient *redis.Client
}

func NewRedisGameTracker(redisURL string, redisPW string, redisDB int) *RedisGameTracker {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisGameTracker{
		rdclient: rdclient,
	}
}

func (r *RedisGameTracker) Load(roomID string) (*GameState, error) {
	stateBytes, err := r.rdclient.Get(context.Background(), r.key(roomID)).Result()
	if err == redis.Nil {
		return nil, GameStateNotFoundError{RoomID: roomID}
	} else if err != nil {
		return nil, err
	}
	return GameStateFromBytes([]byte(stateBytes))
}

func (r *RedisGameTracker) Save(roomID string, state *GameState) error {
	stateBytes, err := state.MarshalBytes()
	if err != nil {
		return err
	}
	return r.rdclient.Set(context.Background(), r.key(roomID), stateBytes, 0).Err()
}

func (r *RedisGameTracker) Remove(roomID string) error {
	return r.rdclient.Del(context.Background(), r.key(roomID)).Err()
}

func (r *RedisGameTracker) key(roomID string) string {
	return "gamestate:" + roomID
}
