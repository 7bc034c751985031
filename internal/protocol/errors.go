package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeRoomNotFound  = 2001
	ErrCodeRoomFull      = 2002
	ErrCodeNotInRoom     = 2003
	ErrCodeNameTaken     = 2004
	ErrCodeAlreadyInRoom = 2005

	ErrCodeWrongPhase  = 3001
	ErrCodeNotYourTurn = 3002
	ErrCodeInvalidPlay = 3003
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:       "未知错误",
	ErrCodeInvalidMsg:    "无效的消息格式",
	ErrCodeRoomNotFound:  "房间不存在",
	ErrCodeRoomFull:      "房间已满",
	ErrCodeNotInRoom:     "您不在房间中",
	ErrCodeNameTaken:     "该昵称已被占用",
	ErrCodeAlreadyInRoom: "您已在房间中",
	ErrCodeWrongPhase:    "当前阶段不能执行该操作",
	ErrCodeNotYourTurn:   "还没轮到您",
	ErrCodeInvalidPlay:   "无效的牌或牌堆",
}
