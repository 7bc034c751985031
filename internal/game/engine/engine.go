package engine

import (
	"github.com/palemoky/the-game-99/internal/apperrors"
	"github.com/palemoky/the-game-99/internal/game/rng"
)

// Config 游戏参数
type Config struct {
	MinPlayers int // 开局所需最少人数
	MaxPlayers int // 房间人数上限
	HandSize   int // 手牌上限
	DeckSize   int // 牌的张数（点数 1..DeckSize）
}

// DefaultConfig 默认参数
func DefaultConfig() Config {
	return Config{
		MinPlayers: 2,
		MaxPlayers: 10,
		HandSize:   6,
		DeckSize:   99,
	}
}

// Engine 纯状态机
// Apply 对给定快照应用一个事件并返回新快照，事件被拒绝时返回原快照和错误，
// 不会修改传入的快照，也不会 panic
type Engine struct {
	cfg Config
	rng rng.Source
}

// New 创建引擎
func New(cfg Config, r rng.Source) *Engine {
	return &Engine{cfg: cfg, rng: r}
}

// Config 返回引擎参数
func (e *Engine) Config() Config {
	return e.cfg
}

// NewGame 创建空房间的初始快照
func (e *Engine) NewGame() *GameState {
	return newGameState(e.cfg.DeckSize)
}

// Apply 应用事件
// 事件的直接效果执行完后，引擎会继续结算自动转移（摸牌推进、胜利判定），
// 直到阶段稳定为止，调用方不需要发送额外的"结算"事件
func (e *Engine) Apply(s *GameState, ev Event) (*GameState, error) {
	switch ev := ev.(type) {
	case PlayerJoin:
		return e.applyJoin(s, ev)
	case StartGame:
		return e.applyStart(s, ev)
	case PlayCard:
		return e.applyPlay(s, ev)
	case EndTurn:
		return e.applyEndTurn(s, ev)
	}
	return s, apperrors.ErrWrongPhase
}

// applyJoin 处理玩家加入
func (e *Engine) applyJoin(s *GameState, ev PlayerJoin) (*GameState, error) {
	if s.Phase == PhaseLobbyFull {
		return s, apperrors.ErrRoomFull
	}
	if s.Phase != PhaseLobbyForming && s.Phase != PhaseLobbyReady {
		return s, apperrors.ErrWrongPhase
	}
	if len(s.Players) >= e.cfg.MaxPlayers {
		return s, apperrors.ErrRoomFull
	}
	if s.HasPlayerName(ev.Name) {
		return s, apperrors.ErrNameTaken
	}

	next := s.Clone()
	next.Players = append(next.Players, Player{
		ID:   ev.ActorID,
		Name: ev.Name,
		Hand: []int{},
	})
	e.settleLobby(next)
	return next, nil
}

// settleLobby 根据人数结算大厅阶段
func (e *Engine) settleLobby(s *GameState) {
	switch {
	case len(s.Players) >= e.cfg.MaxPlayers:
		s.Phase = PhaseLobbyFull
	case len(s.Players) >= e.cfg.MinPlayers:
		s.Phase = PhaseLobbyReady
	default:
		s.Phase = PhaseLobbyForming
	}
}

// applyStart 处理开始游戏
func (e *Engine) applyStart(s *GameState, ev StartGame) (*GameState, error) {
	if s.Phase != PhaseLobbyReady && s.Phase != PhaseLobbyFull {
		return s, apperrors.ErrWrongPhase
	}
	if s.PlayerIndex(ev.ActorID) < 0 {
		return s, apperrors.ErrNotInRoom
	}

	next := s.Clone()

	// 洗牌：摸牌堆此时仍是完整的 1..N
	e.rng.Shuffle(len(next.DrawPile), func(i, j int) {
		next.DrawPile[i], next.DrawPile[j] = next.DrawPile[j], next.DrawPile[i]
	})
	next.Started = true

	// 首轮启动：为所有玩家补发初始手牌并落到 play_required
	e.settleTurnStart(next)
	return next, nil
}

// settleTurnStart 回合启动结算
// 当前玩家补牌到手牌上限、标记已摸初始手牌、指针后移一位；
// 开局时会循环执行直到每个人都摸到了初始手牌（首轮自举），
// 之后每次 EndTurn 只会执行一轮。结算完成后回到 play_required 并清零出牌计数
func (e *Engine) settleTurnStart(s *GameState) {
	for {
		p := &s.Players[s.ActivePlayer]

		need := e.cfg.HandSize - len(p.Hand)
		if need > len(s.DrawPile) {
			need = len(s.DrawPile)
		}
		if need > 0 {
			p.Hand = append(p.Hand, s.DrawPile[:need]...)
			s.DrawPile = s.DrawPile[need:]
		}
		p.DrawnInitialHand = true

		s.ActivePlayer = (s.ActivePlayer + 1) % len(s.Players)

		if s.allDrawnInitialHand() {
			break
		}
	}

	s.Phase = PhasePlayRequired
	s.CardsPlayed = 0
}

// applyPlay 处理出牌
func (e *Engine) applyPlay(s *GameState, ev PlayCard) (*GameState, error) {
	if !s.Phase.Playing() {
		return s, apperrors.ErrWrongPhase
	}
	idx := s.PlayerIndex(ev.ActorID)
	if idx < 0 || idx != s.ActivePlayer {
		return s, apperrors.ErrNotYourTurn
	}
	if !ValidPile(ev.Pile) {
		return s, apperrors.ErrInvalidPlay
	}
	handIdx := -1
	for i, c := range s.Players[idx].Hand {
		if c == ev.Card {
			handIdx = i
			break
		}
	}
	if handIdx < 0 {
		return s, apperrors.ErrInvalidPlay
	}

	next := s.Clone()
	p := &next.Players[idx]
	next.Piles[ev.Pile] = append(next.Piles[ev.Pile], ev.Card)
	p.Hand = append(p.Hand[:handIdx], p.Hand[handIdx+1:]...)
	next.CardsPlayed++

	e.settleAfterPlay(next)
	return next, nil
}

// settleAfterPlay 出牌后的结算，守卫按固定优先级求值：
// 先判胜利，再判是否出够最低张数，否则停留在 play_required
func (e *Engine) settleAfterPlay(s *GameState) {
	if len(s.DrawPile) == 0 && s.totalHandCards() == 0 {
		s.Phase = PhaseFinishedWon
		return
	}

	required := 1
	if len(s.DrawPile) > 0 {
		required = 2
	}
	if s.CardsPlayed >= required {
		s.Phase = PhasePlayOptional
	} else {
		s.Phase = PhasePlayRequired
	}
}

// applyEndTurn 处理结束回合
func (e *Engine) applyEndTurn(s *GameState, ev EndTurn) (*GameState, error) {
	if s.Phase != PhasePlayOptional {
		return s, apperrors.ErrWrongPhase
	}
	idx := s.PlayerIndex(ev.ActorID)
	if idx < 0 || idx != s.ActivePlayer {
		return s, apperrors.ErrNotYourTurn
	}

	next := s.Clone()
	e.settleTurnStart(next)
	return next, nil
}
