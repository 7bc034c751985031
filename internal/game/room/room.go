package room

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/palemoky/the-game-99/internal/game/engine"
)

// ViewFunc 视图推送回调，由传输层注册
type ViewFunc func(view *engine.View)

// Room 一个独立对局
// 同一房间的事件由 mu 串行化：后到的事件一定看到前一个事件产生的完整快照；
// 不同房间互不相关，可以并行处理
type Room struct {
	Code      string
	CreatedAt time.Time

	engine *engine.Engine
	state  *engine.GameState

	subscribers map[string]ViewFunc // actorID → 推送回调
	lastViews   map[string][]byte   // 上次推送的视图序列化结果，用于去重

	mu sync.Mutex
}

// newRoom 创建房间
func newRoom(code string, eng *engine.Engine) *Room {
	return &Room{
		Code:        code,
		CreatedAt:   time.Now(),
		engine:      eng,
		state:       eng.NewGame(),
		subscribers: make(map[string]ViewFunc),
		lastViews:   make(map[string][]byte),
	}
}

// State 返回当前快照
// 快照本身不会再被修改，调用方可以放心读取
func (r *Room) State() *engine.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// PlayerCount 当前座位数
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.state.Players)
}

// Subscribe 注册视图推送回调，并立即推送一次当前视图
func (r *Room) Subscribe(actorID string, fn ViewFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subscribers[actorID] = fn
	r.pushTo(actorID)
}

// Unsubscribe 注销推送回调（座位保留，只停止推送）
func (r *Room) Unsubscribe(actorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subscribers, actorID)
	delete(r.lastViews, actorID)
}

// SubscriberCount 当前订阅数
func (r *Room) SubscriberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}

// Dispatch 应用一个事件
// 事件被接受时向所有订阅者推送变化后的视图；被拒绝时快照不变，
// 错误只返回给调用方，不打扰其他玩家
func (r *Room) Dispatch(ev engine.Event) (*engine.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.engine.Apply(r.state, ev)
	if err != nil {
		return r.state, err
	}

	r.state = next
	for actorID := range r.subscribers {
		r.pushTo(actorID)
	}
	return r.state, nil
}

// pushTo 向单个订阅者推送视图，视图没有变化时跳过
// 调用方必须持有 r.mu
func (r *Room) pushTo(actorID string) {
	fn, ok := r.subscribers[actorID]
	if !ok {
		return
	}

	view, ok := engine.Project(r.state, actorID)
	if !ok {
		return
	}

	encoded, err := json.Marshal(view)
	if err != nil {
		return
	}
	if last, ok := r.lastViews[actorID]; ok && string(last) == string(encoded) {
		return
	}
	r.lastViews[actorID] = encoded

	fn(view)
}
