package apperrors

import (
	"github.com/palemoky/the-game-99/internal/protocol"
)

// GameError 游戏错误（引擎和房间共享）
// 全部是针对单个玩家的可恢复错误，不会影响房间内其他玩家
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull     = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrNameTaken    = &GameError{Code: protocol.ErrCodeNameTaken, Message: "该昵称已被占用"}
	ErrWrongPhase   = &GameError{Code: protocol.ErrCodeWrongPhase, Message: "当前阶段不能执行该操作"}
	ErrNotYourTurn  = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrInvalidPlay  = &GameError{Code: protocol.ErrCodeInvalidPlay, Message: "无效的牌或牌堆"}
)
