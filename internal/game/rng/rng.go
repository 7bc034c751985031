package rng

import "math/rand/v2"

// Source 随机源
// 洗牌和房间号生成都通过它取随机数，测试时可替换为固定种子的实现
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// defaultSource 使用 math/rand/v2 的全局随机源，可安全并发调用
type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

func (defaultSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Default 返回进程级随机源
func Default() Source {
	return defaultSource{}
}

// NewSeeded 返回固定种子的随机源，结果可复现
// 注意：*rand.Rand 不能并发使用，仅用于测试和单协程场景
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}
