package room

import (
	"log"
	"sync"
	"time"

	"github.com/palemoky/the-game-99/internal/apperrors"
	"github.com/palemoky/the-game-99/internal/game/engine"
	"github.com/palemoky/the-game-99/internal/game/rng"
)

const roomCodeLength = 4

// RoomInfo 房间概要，用于大厅列表
type RoomInfo struct {
	Code        string
	PlayerCount int
	MaxPlayers  int
	Started     bool
	Phase       engine.Phase
}

// Registry 房间注册表：房间号 → 对局
// 房间号的生成和登记在同一个临界区内完成，两个并发的建房请求
// 不可能拿到同一个房间号
type Registry struct {
	cfg   engine.Config
	rng   rng.Source
	codes *CodeAllocator

	rooms map[string]*Room
	mu    sync.RWMutex
}

// NewRegistry 创建注册表
func NewRegistry(cfg engine.Config, r rng.Source) *Registry {
	return &Registry{
		cfg:   cfg,
		rng:   r,
		codes: NewCodeAllocator(roomCodeLength, r),
		rooms: make(map[string]*Room),
	}
}

// CreateRoom 创建房间并让房主入座
func (reg *Registry) CreateRoom(hostName, actorID string) (*Room, error) {
	reg.mu.Lock()
	code := reg.codes.Allocate(func(code string) bool {
		_, taken := reg.rooms[code]
		return taken
	})
	r := newRoom(code, engine.New(reg.cfg, reg.rng))
	reg.rooms[code] = r
	reg.mu.Unlock()

	// 房主入座不可能失败：房间是空的
	if _, err := r.Dispatch(engine.PlayerJoin{ActorID: actorID, Name: hostName}); err != nil {
		return nil, err
	}

	log.Printf("🏠 房间 %s 已创建，房主 %s", code, hostName)
	return r, nil
}

// Get 按房间号查找房间
func (reg *Registry) Get(code string) *Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[code]
}

// Dispatch 将事件派发到指定房间
func (reg *Registry) Dispatch(code string, ev engine.Event) (*engine.GameState, error) {
	r := reg.Get(code)
	if r == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return r.Dispatch(ev)
}

// Remove 移除房间
func (reg *Registry) Remove(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, code)
}

// Count 当前房间数
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// List 房间概要列表
func (reg *Registry) List() []RoomInfo {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	infos := make([]RoomInfo, 0, len(reg.rooms))
	for code, r := range reg.rooms {
		state := r.State()
		infos = append(infos, RoomInfo{
			Code:        code,
			PlayerCount: len(state.Players),
			MaxPlayers:  reg.cfg.MaxPlayers,
			Started:     state.Started,
			Phase:       state.Phase,
		})
	}
	return infos
}

// Sweep 回收不再使用的房间：
// 终局且没有订阅者的房间立即回收，超过 maxIdle 仍未开局的房间视为废弃
func (reg *Registry) Sweep(maxIdle time.Duration) []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var removed []string
	for code, r := range reg.rooms {
		state := r.State()
		expired := !state.Started && time.Since(r.CreatedAt) > maxIdle
		finished := state.Phase.Terminal() && r.SubscriberCount() == 0
		if expired || finished {
			delete(reg.rooms, code)
			removed = append(removed, code)
			log.Printf("🧹 房间 %s 已回收 (阶段 %s)", code, state.Phase)
		}
	}
	return removed
}
