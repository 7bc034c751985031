package engine

// Event 玩家触发的事件
type Event interface {
	Actor() string // 发起事件的连接标识
}

// PlayerJoin 玩家加入
type PlayerJoin struct {
	ActorID string
	Name    string
}

func (e PlayerJoin) Actor() string { return e.ActorID }

// StartGame 开始游戏
type StartGame struct {
	ActorID string
}

func (e StartGame) Actor() string { return e.ActorID }

// PlayCard 出牌
type PlayCard struct {
	ActorID string
	Card    int
	Pile    Pile
}

func (e PlayCard) Actor() string { return e.ActorID }

// EndTurn 结束回合
type EndTurn struct {
	ActorID string
}

func (e EndTurn) Actor() string { return e.ActorID }
