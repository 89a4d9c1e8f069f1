package game

import "strings"

// Action 逻辑输入动作，按键名在边界处统一归一化为动作
type Action int

const (
	ActionNone Action = iota
	P1Up
	P1Down
	P1Left
	P1Right
	P2Up
	P2Down
	P2Left
	P2Right
)

// InputState 当前按住的动作集合，按键抬起即移除
type InputState struct {
	held map[Action]bool
}

// NewInputState 创建空输入状态
func NewInputState() *InputState {
	return &InputState{held: make(map[Action]bool)}
}

// Press / Release 按下与抬起，ActionNone 被忽略
func (s *InputState) Press(a Action) {
	if a != ActionNone {
		s.held[a] = true
	}
}

func (s *InputState) Release(a Action) {
	delete(s.held, a)
}

// Held 该动作当前是否被按住
func (s *InputState) Held(a Action) bool {
	return s.held[a]
}

// Clear 清空所有按键（对局结束或回到菜单时调用）
func (s *InputState) Clear() {
	s.held = make(map[Action]bool)
}

// ParseKey 将按键名映射为逻辑动作，大小写不敏感（兼容 Caps Lock）
// 玩家1 使用 WASD，玩家2 使用方向键
func ParseKey(name string) Action {
	switch strings.ToLower(name) {
	case "w":
		return P1Up
	case "s":
		return P1Down
	case "a":
		return P1Left
	case "d":
		return P1Right
	case "up", "arrowup":
		return P2Up
	case "down", "arrowdown":
		return P2Down
	case "left", "arrowleft":
		return P2Left
	case "right", "arrowright":
		return P2Right
	default:
		return ActionNone
	}
}
