package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/palemoky/the-game-99/internal/protocol"
	"github.com/palemoky/the-game-99/internal/protocol/codec"
)

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// 连接数限制检查
	select {
	case s.semaphore <- struct{}{}:
		// 成功获取信号量，连接断开后释放
	default:
		log.Printf("🚫 达到最大连接数限制 (%d)", s.maxConnections)
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		<-s.semaphore
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	// 创建客户端
	client := NewClient(s, conn)
	client.IP = r.RemoteAddr
	s.registerClient(client)

	// 发送连接成功消息，player_id 即后续所有事件的 actor 标识
	client.SendMessage(codec.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID: client.ID,
	}))

	log.Printf("✅ 玩家 %s 已连接", client.ID)

	// 启动客户端读写协程
	go client.ReadPump()
	go client.WritePump()

	s.BroadcastOnlineCount()
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleStats 运行状态接口
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := map[string]int{
		"online_count": s.GetOnlineCount(),
		"room_count":   s.registry.Count(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		log.Printf("❌ 玩家 %s 已断开", client.ID)
	}

	// 释放连接信号量
	select {
	case <-s.semaphore:
	default:
	}

	go s.BroadcastOnlineCount()
}
