package game

import "math"

// ResolveHit 判定玩家与球是否重叠并计算推球冲量：
// 沿“球心减玩家中心”方向归一化后放大到固定推力。
// 两中心完全重合时无法确定方向，返回 false 不施加冲量。
func ResolveHit(player, ball Box) (Vec, bool) {
	if !player.Intersects(ball) {
		return Vec{}, false
	}

	bx, by := ball.Center()
	px, py := player.Center()
	dx := bx - px
	dy := by - py

	length := math.Hypot(dx, dy)
	if length == 0 {
		return Vec{}, false
	}

	return Vec{X: dx / length * PushMagnitude, Y: dy / length * PushMagnitude}, true
}

// pushBall 将两名玩家的触球冲量按玩家1、玩家2的顺序叠加到球速上。
// 冲量是累加而非覆盖，持续接触会不断加速。
func pushBall(b *Ball, p1, p2 *Player) {
	if imp, ok := ResolveHit(p1.Box, b.Box); ok {
		b.Vel.X += imp.X
		b.Vel.Y += imp.Y
	}
	if imp, ok := ResolveHit(p2.Box, b.Box); ok {
		b.Vel.X += imp.X
		b.Vel.Y += imp.Y
	}
}
