package engine

// Phase 游戏阶段
type Phase string

const (
	PhaseLobbyForming Phase = "lobby_forming" // 人数未达下限
	PhaseLobbyReady   Phase = "lobby_ready"   // 可以开始，还能继续加人
	PhaseLobbyFull    Phase = "lobby_full"    // 满员，拒绝加入
	PhasePlayRequired Phase = "play_required" // 当前玩家必须出牌
	PhasePlayOptional Phase = "play_optional" // 已出够最低张数，可继续出或结束回合
	PhaseFinishedWon  Phase = "finished_won"  // 胜利终局
	PhaseFinishedLost Phase = "finished_lost" // 失败终局，暂无可达的转移
)

// InLobby 是否处于大厅阶段
func (p Phase) InLobby() bool {
	return p == PhaseLobbyForming || p == PhaseLobbyReady || p == PhaseLobbyFull
}

// Playing 是否处于出牌阶段
func (p Phase) Playing() bool {
	return p == PhasePlayRequired || p == PhasePlayOptional
}

// Terminal 是否终局，终局后不再接受任何事件
func (p Phase) Terminal() bool {
	return p == PhaseFinishedWon || p == PhaseFinishedLost
}

// Pile 牌堆标签
type Pile string

const (
	PileA Pile = "A"
	PileB Pile = "B"
	PileC Pile = "C"
	PileD Pile = "D"
)

// Piles 全部牌堆，按固定顺序
var Piles = []Pile{PileA, PileB, PileC, PileD}

// ValidPile 是否是合法的牌堆标签
func ValidPile(p Pile) bool {
	switch p {
	case PileA, PileB, PileC, PileD:
		return true
	}
	return false
}

// Player 座位上的玩家
type Player struct {
	ID               string // 连接标识
	Name             string // 昵称
	Hand             []int  // 手牌
	DrawnInitialHand bool   // 首轮是否已摸过初始手牌
}

// GameState 一局游戏的完整快照
// 每个被接受的事件都会产生一个新快照替换旧快照，旧快照不再被修改，
// 因此持有旧快照的读者永远不会看到写了一半的状态
type GameState struct {
	Phase        Phase
	Players      []Player // 按入座顺序
	ActivePlayer int      // 当前回合玩家在 Players 中的下标
	DrawPile     []int    // 摸牌堆，牌从头部摸出
	Piles        map[Pile][]int
	CardsPlayed  int  // 本回合已出牌数
	Started      bool // 是否已开局
}

// newGameState 创建初始快照：全部 99 张牌按序在摸牌堆中，四个牌堆为空
func newGameState(deckSize int) *GameState {
	drawPile := make([]int, deckSize)
	for i := range drawPile {
		drawPile[i] = i + 1
	}

	piles := make(map[Pile][]int, len(Piles))
	for _, p := range Piles {
		piles[p] = []int{}
	}

	return &GameState{
		Phase:    PhaseLobbyForming,
		DrawPile: drawPile,
		Piles:    piles,
	}
}

// Clone 深拷贝快照
func (s *GameState) Clone() *GameState {
	c := *s

	c.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		c.Players[i] = p
		c.Players[i].Hand = append([]int(nil), p.Hand...)
	}

	c.DrawPile = append([]int(nil), s.DrawPile...)

	c.Piles = make(map[Pile][]int, len(s.Piles))
	for label, cards := range s.Piles {
		c.Piles[label] = append([]int{}, cards...)
	}

	return &c
}

// PlayerIndex 返回玩家在座位表中的下标，不在座则返回 -1
func (s *GameState) PlayerIndex(actorID string) int {
	for i := range s.Players {
		if s.Players[i].ID == actorID {
			return i
		}
	}
	return -1
}

// HasPlayerName 昵称是否已被占用
func (s *GameState) HasPlayerName(name string) bool {
	for i := range s.Players {
		if s.Players[i].Name == name {
			return true
		}
	}
	return false
}

// allDrawnInitialHand 是否所有玩家都已摸过初始手牌
func (s *GameState) allDrawnInitialHand() bool {
	for i := range s.Players {
		if !s.Players[i].DrawnInitialHand {
			return false
		}
	}
	return true
}

// totalHandCards 所有玩家手牌总数
func (s *GameState) totalHandCards() int {
	total := 0
	for i := range s.Players {
		total += len(s.Players[i].Hand)
	}
	return total
}
