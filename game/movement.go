package game

// TryMove 尝试对玩家施加位移 (dx,dy)：
// 候选位置越出场地有效区、或与另一名玩家开区间重叠时拒绝（不改动任何状态），
// 否则提交位移。每个方向独立判定，水平被挡不影响同 Tick 的垂直移动。
func TryMove(p *Player, dx, dy float64, other *Player) bool {
	cand := p.Box
	cand.Translate(dx, dy)

	if cand.X1 < 0 || cand.X2 > FieldWidth || cand.Y1 < FieldTop || cand.Y2 > FieldBottom {
		return false
	}
	if cand.Intersects(other.Box) {
		return false
	}

	p.Box = cand
	return true
}

// movementIntent 单个方向动作对应的位移分量
var movementIntent = map[Action]Vec{
	P1Up:    {0, -PlayerSpeed},
	P1Down:  {0, PlayerSpeed},
	P1Left:  {-PlayerSpeed, 0},
	P1Right: {PlayerSpeed, 0},
	P2Up:    {0, -PlayerSpeed},
	P2Down:  {0, PlayerSpeed},
	P2Left:  {-PlayerSpeed, 0},
	P2Right: {PlayerSpeed, 0},
}

var p1Actions = [4]Action{P1Up, P1Down, P1Left, P1Right}
var p2Actions = [4]Action{P2Up, P2Down, P2Left, P2Right}

// applyHeldMoves 按固定顺序（上下左右）逐方向尝试当前按住的移动，
// 相反方向同时按住时各自独立尝试，可能互相抵消
func applyHeldMoves(p *Player, actions [4]Action, in *InputState, other *Player) {
	for _, a := range actions {
		if in.Held(a) {
			d := movementIntent[a]
			TryMove(p, d.X, d.Y, other)
		}
	}
}
