package server

import (
	"github.com/palemoky/the-game-99/internal/protocol"
	"github.com/palemoky/the-game-99/internal/protocol/codec"
)

// GetOnlineCount 获取在线人数（按需调用）
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Broadcast 广播消息给所有客户端
func (s *Server) Broadcast(msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for _, client := range s.clients {
		client.SendMessage(msg)
	}
}

// BroadcastOnlineCount 向所有客户端广播最新在线人数
func (s *Server) BroadcastOnlineCount() {
	s.Broadcast(codec.MustNewMessage(protocol.MsgOnlineCount, protocol.OnlineCountPayload{
		Count: s.GetOnlineCount(),
	}))
}
