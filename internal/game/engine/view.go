package engine

// PlayerAction 玩家当前可执行的操作
type PlayerAction string

const (
	ActionPlayCard PlayerAction = "play_card"
	ActionEndTurn  PlayerAction = "end_turn"
)

// View 单个玩家视角的快照投影
// 只携带该玩家自己的手牌，其他玩家只暴露昵称和手牌数
type View struct {
	Players   []string       `json:"players"`
	HandSizes []int          `json:"hand_sizes"`
	Hand      []int          `json:"hand"`
	Piles     map[Pile][]int `json:"piles"`
	Started   bool           `json:"started"`
	Phase     Phase          `json:"phase"`
	Actions   []PlayerAction `json:"actions,omitempty"`
}

// Project 构建 actorID 视角的投影，actorID 不在座位上时返回 false
func Project(s *GameState, actorID string) (*View, bool) {
	idx := s.PlayerIndex(actorID)
	if idx < 0 {
		return nil, false
	}

	v := &View{
		Players:   make([]string, len(s.Players)),
		HandSizes: make([]int, len(s.Players)),
		Hand:      append([]int{}, s.Players[idx].Hand...),
		Piles:     make(map[Pile][]int, len(s.Piles)),
		Started:   s.Started,
		Phase:     s.Phase,
	}
	for i := range s.Players {
		v.Players[i] = s.Players[i].Name
		v.HandSizes[i] = len(s.Players[i].Hand)
	}
	for label, cards := range s.Piles {
		v.Piles[label] = append([]int{}, cards...)
	}

	// 只有当前回合玩家才有可执行操作
	if idx == s.ActivePlayer && s.Phase.Playing() {
		v.Actions = append(v.Actions, ActionPlayCard)
		if s.Phase == PhasePlayOptional {
			v.Actions = append(v.Actions, ActionEndTurn)
		}
	}

	return v, true
}
