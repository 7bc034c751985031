package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/the-game-99/internal/game/engine"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间数据过期时间
	roomExpiration = 2 * time.Hour
)

// RoomData 房间快照（用于 Redis 序列化）
// 只是尽力而为的运行状态镜像，供运维排查；进程重启不从这里恢复对局
type RoomData struct {
	Code        string   `json:"code"`
	Phase       string   `json:"phase"`
	Players     []string `json:"players"`
	Started     bool     `json:"started"`
	DrawPileLen int      `json:"draw_pile_len"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

// SnapshotRoom 从引擎快照构建 RoomData
func SnapshotRoom(code string, createdAt time.Time, state *engine.GameState) *RoomData {
	players := make([]string, len(state.Players))
	for i := range state.Players {
		players[i] = state.Players[i].Name
	}
	return &RoomData{
		Code:        code,
		Phase:       string(state.Phase),
		Players:     players,
		Started:     state.Started,
		DrawPileLen: len(state.DrawPile),
		CreatedAt:   createdAt.Unix(),
		UpdatedAt:   time.Now().Unix(),
	}
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照到 Redis
func (rs *RedisStore) SaveRoom(ctx context.Context, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + data.Code
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 从 Redis 加载房间快照
func (rs *RedisStore) LoadRoom(ctx context.Context, code string) (*RoomData, error) {
	key := roomKeyPrefix + code
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("解析房间数据失败: %w", err)
	}
	return &roomData, nil
}

// DeleteRoom 从 Redis 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, code string) error {
	return rs.client.Del(ctx, roomKeyPrefix+code).Err()
}
