package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/the-game-99/internal/config"
	"github.com/palemoky/the-game-99/internal/game/rng"
	"github.com/palemoky/the-game-99/internal/game/room"
	"github.com/palemoky/the-game-99/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// 房间回收扫描间隔
const sweepInterval = time.Minute

// Server WebSocket 服务器
type Server struct {
	config     *config.Config
	redis      *redis.Client
	redisStore *storage.RedisStore
	registry   *room.Registry
	clients    map[string]*Client
	clientsMu  sync.RWMutex
	handler    *Handler

	// 连接控制
	maxConnections int
	semaphore      chan struct{} // 信号量控制并发连接数

	httpServer *http.Server
	stop       chan struct{}
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化 Redis 客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 测试 Redis 连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	s := &Server{
		config:         cfg,
		redis:          rdb,
		redisStore:     storage.NewRedisStore(rdb),
		registry:       room.NewRegistry(cfg.Game.EngineConfig(), rng.Default()),
		clients:        make(map[string]*Client),
		maxConnections: cfg.Server.MaxConnections,
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
		stop:           make(chan struct{}),
	}

	// 初始化消息处理器
	s.handler = NewHandler(s)

	return s, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stats", s.handleStats)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	// 定期回收废弃房间
	go s.sweepLoop()

	log.Printf("🚀 服务器监听 %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *Server) Shutdown() {
	close(s.stop)

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	_ = s.redis.Close()
}

// sweepLoop 定期回收终局和超时未开局的房间
func (s *Server) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := s.registry.Sweep(s.config.Game.RoomTimeoutDuration())
			for _, code := range removed {
				go func(code string) {
					_ = s.redisStore.DeleteRoom(context.Background(), code)
				}(code)
			}
		case <-s.stop:
			return
		}
	}
}

// saveRoomSnapshot 尽力而为地把房间快照镜像到 Redis
func (s *Server) saveRoomSnapshot(r *room.Room) {
	data := storage.SnapshotRoom(r.Code, r.CreatedAt, r.State())
	go func() {
		_ = s.redisStore.SaveRoom(context.Background(), data)
	}()
}
