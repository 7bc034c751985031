package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgHostRoom MessageType = "host_room" // 创建房间
	MsgJoinRoom MessageType = "join_room" // 加入房间

	// 游戏操作
	MsgStartGame MessageType = "start_game" // 开始游戏
	MsgPlayCard  MessageType = "play_card"  // 出牌
	MsgEndTurn   MessageType = "end_turn"   // 结束回合

	// 大厅查询
	MsgGetRoomList    MessageType = "get_room_list"    // 获取房间列表
	MsgGetOnlineCount MessageType = "get_online_count" // 获取在线人数
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomCreated MessageType = "room_created" // 房间创建成功
	MsgRoomJoined  MessageType = "room_joined"  // 加入房间成功

	// 游戏状态推送
	MsgUpdate MessageType = "update" // 视图更新

	// 大厅查询结果
	MsgRoomList    MessageType = "room_list"    // 房间列表
	MsgOnlineCount MessageType = "online_count" // 在线人数

	// 错误
	MsgError MessageType = "error" // 错误消息
)
