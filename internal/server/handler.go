package server

import (
	"errors"
	"log"
	"time"

	"github.com/palemoky/the-game-99/internal/apperrors"
	"github.com/palemoky/the-game-99/internal/game/engine"
	"github.com/palemoky/the-game-99/internal/protocol"
	"github.com/palemoky/the-game-99/internal/protocol/codec"
)

// Handler 消息处理器
type Handler struct {
	server *Server
}

// NewHandler 创建处理器
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client *Client, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 房间操作
	case protocol.MsgHostRoom:
		h.handleHostRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)

	// 游戏操作
	case protocol.MsgStartGame:
		h.handleStartGame(client)
	case protocol.MsgPlayCard:
		h.handlePlayCard(client, msg)
	case protocol.MsgEndTurn:
		h.handleEndTurn(client)

	// 大厅查询
	case protocol.MsgGetRoomList:
		h.handleGetRoomList(client)
	case protocol.MsgGetOnlineCount:
		h.handleGetOnlineCount(client)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s)", msg.Type, client.ID)
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// handlePing 处理心跳
func (h *Handler) handlePing(client *Client, msg *protocol.Message) {
	var ts int64
	if payload, err := codec.ParsePayload[protocol.PingPayload](msg); err == nil {
		ts = payload.Timestamp
	}
	client.SendMessage(codec.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		Timestamp:  ts,
		ServerTime: time.Now().UnixMilli(),
	}))
}

// handleHostRoom 处理创建房间
func (h *Handler) handleHostRoom(client *Client, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.HostRoomPayload](msg)
	if err != nil || payload.Name == "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 座位是追加式的，已入座的连接不能再开新房
	if client.GetRoom() != "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeAlreadyInRoom))
		return
	}

	r, err := h.server.registry.CreateRoom(payload.Name, client.ID)
	if err != nil {
		h.sendGameError(client, err)
		return
	}

	client.Name = payload.Name
	client.SetRoom(r.Code)
	client.SendMessage(codec.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode: r.Code,
	}))

	// 订阅视图推送，订阅时会立即收到当前视图
	h.subscribe(client, r.Code)
	h.server.saveRoomSnapshot(r)
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client *Client, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil || payload.Name == "" || payload.RoomCode == "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeAlreadyInRoom))
		return
	}

	state, err := h.server.registry.Dispatch(payload.RoomCode, engine.PlayerJoin{
		ActorID: client.ID,
		Name:    payload.Name,
	})
	if err != nil {
		h.sendGameError(client, err)
		return
	}

	client.Name = payload.Name
	client.SetRoom(payload.RoomCode)

	players := make([]string, len(state.Players))
	for i := range state.Players {
		players[i] = state.Players[i].Name
	}
	client.SendMessage(codec.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomCode: payload.RoomCode,
		Players:  players,
	}))

	h.subscribe(client, payload.RoomCode)

	if r := h.server.registry.Get(payload.RoomCode); r != nil {
		h.server.saveRoomSnapshot(r)
	}
}

// handleStartGame 处理开始游戏
func (h *Handler) handleStartGame(client *Client) {
	h.dispatchGameEvent(client, engine.StartGame{ActorID: client.ID})
}

// handlePlayCard 处理出牌
func (h *Handler) handlePlayCard(client *Client, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PlayCardPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.dispatchGameEvent(client, engine.PlayCard{
		ActorID: client.ID,
		Card:    payload.Card,
		Pile:    engine.Pile(payload.Pile),
	})
}

// handleEndTurn 处理结束回合
func (h *Handler) handleEndTurn(client *Client) {
	h.dispatchGameEvent(client, engine.EndTurn{ActorID: client.ID})
}

// dispatchGameEvent 把对局内事件派发到客户端所在房间
// 事件被接受时房间会向所有订阅者推送新视图，这里不需要额外回复
func (h *Handler) dispatchGameEvent(client *Client, ev engine.Event) {
	code := client.GetRoom()
	if code == "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if _, err := h.server.registry.Dispatch(code, ev); err != nil {
		h.sendGameError(client, err)
		return
	}

	if r := h.server.registry.Get(code); r != nil {
		h.server.saveRoomSnapshot(r)
	}
}

// handleGetRoomList 处理获取房间列表
func (h *Handler) handleGetRoomList(client *Client) {
	infos := h.server.registry.List()
	items := make([]protocol.RoomListItem, 0, len(infos))
	for _, info := range infos {
		// 只展示可加入的房间
		if info.Started || info.PlayerCount >= info.MaxPlayers {
			continue
		}
		items = append(items, protocol.RoomListItem{
			RoomCode:    info.Code,
			PlayerCount: info.PlayerCount,
			MaxPlayers:  info.MaxPlayers,
			Started:     info.Started,
		})
	}
	client.SendMessage(codec.MustNewMessage(protocol.MsgRoomList, protocol.RoomListPayload{
		Rooms: items,
	}))
}

// handleGetOnlineCount 处理获取在线人数
func (h *Handler) handleGetOnlineCount(client *Client) {
	client.SendMessage(codec.MustNewMessage(protocol.MsgOnlineCount, protocol.OnlineCountPayload{
		Count: h.server.GetOnlineCount(),
	}))
}

// subscribe 注册视图推送，把投影结果转成 update 消息发给客户端
func (h *Handler) subscribe(client *Client, code string) {
	r := h.server.registry.Get(code)
	if r == nil {
		return
	}
	r.Subscribe(client.ID, func(view *engine.View) {
		client.SendMessage(codec.MustNewMessage(protocol.MsgUpdate, viewToUpdate(view)))
	})
}

// sendGameError 把游戏错误转成错误消息，只发给出错的玩家
func (h *Handler) sendGameError(client *Client, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// viewToUpdate 把引擎视图转成协议 payload
func viewToUpdate(view *engine.View) protocol.UpdatePayload {
	piles := make(map[string][]int, len(view.Piles))
	for label, cards := range view.Piles {
		piles[string(label)] = cards
	}
	actions := make([]string, len(view.Actions))
	for i, a := range view.Actions {
		actions[i] = string(a)
	}
	return protocol.UpdatePayload{
		Players:   view.Players,
		HandSizes: view.HandSizes,
		Hand:      view.Hand,
		Piles:     piles,
		Started:   view.Started,
		Phase:     string(view.Phase),
		Actions:   actions,
	}
}
