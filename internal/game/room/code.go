package room

import (
	"strings"

	"github.com/palemoky/the-game-99/internal/game/rng"
)

// 房间号字符集，去掉了容易看混的 I/L/O
const roomCodeChars = "ABCDEFGHJKMNPQRSTUVWXYZ"

// CodeAllocator 房间号分配器
// Allocate 本身不加锁，调用方必须在持有注册表锁的情况下调用，
// 保证"查重 + 占用"作为一个整体是原子的
type CodeAllocator struct {
	length int
	rng    rng.Source
}

// NewCodeAllocator 创建分配器
func NewCodeAllocator(length int, r rng.Source) *CodeAllocator {
	return &CodeAllocator{length: length, rng: r}
}

// Allocate 生成一个不与现存房间冲突的房间号
// taken 报告某个房间号是否已被占用
func (a *CodeAllocator) Allocate(taken func(code string) bool) string {
	for {
		code := a.generate()
		if !taken(code) {
			return code
		}
	}
}

// generate 生成一个随机房间号
func (a *CodeAllocator) generate() string {
	var b strings.Builder
	b.Grow(a.length)
	for range a.length {
		b.WriteByte(roomCodeChars[a.rng.IntN(len(roomCodeChars))])
	}
	return b.String()
}
