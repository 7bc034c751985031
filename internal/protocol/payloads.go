package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// HostRoomPayload 创建房间请求
type HostRoomPayload struct {
	Name string `json:"name"` // 房主昵称
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"`
	Name     string `json:"name"` // 玩家昵称
}

// PlayCardPayload 出牌请求
type PlayCardPayload struct {
	Card int    `json:"card"` // 牌的点数 1-99
	Pile string `json:"pile"` // 牌堆标签 A/B/C/D
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

// PongPayload 心跳响应
type PongPayload struct {
	Timestamp  int64 `json:"timestamp"`   // 客户端时间戳（原样返回）
	ServerTime int64 `json:"server_time"` // 服务端时间戳（毫秒）
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode string `json:"room_code"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode string   `json:"room_code"`
	Players  []string `json:"players"` // 当前座位上的玩家昵称
}

// UpdatePayload 视图更新推送
// 只包含收信玩家自己的手牌，其他玩家只能看到昵称和手牌数
type UpdatePayload struct {
	Players   []string         `json:"players"`
	HandSizes []int            `json:"hand_sizes"`
	Hand      []int            `json:"hand"`
	Piles     map[string][]int `json:"piles"`
	Started   bool             `json:"started"`
	Phase     string           `json:"phase"`
	Actions   []string         `json:"actions,omitempty"` // 当前可执行的操作
}

// RoomListItem 房间列表项
type RoomListItem struct {
	RoomCode    string `json:"room_code"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
	Started     bool   `json:"started"`
}

// RoomListPayload 房间列表响应
type RoomListPayload struct {
	Rooms []RoomListItem `json:"rooms"`
}

// OnlineCountPayload 在线人数响应
type OnlineCountPayload struct {
	Count int `json:"count"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
