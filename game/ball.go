package game

import "math"

// Advance 按当前速度平移球并处理四面墙的反弹：
// 越界时按穿透深度精确回贴边界，对应速度分量取反并乘以恢复系数。
// 角落碰撞会在同一 Tick 内反弹两个轴。
func (b *Ball) Advance() {
	b.Box.Translate(b.Vel.X, b.Vel.Y)

	if b.Box.X1 <= 0 {
		b.Box.Translate(0-b.Box.X1, 0)
		b.Vel.X = -b.Vel.X * Restitution
	}
	if b.Box.X2 >= FieldWidth {
		b.Box.Translate(FieldWidth-b.Box.X2, 0)
		b.Vel.X = -b.Vel.X * Restitution
	}
	if b.Box.Y1 <= FieldTop {
		b.Box.Translate(0, FieldTop-b.Box.Y1)
		b.Vel.Y = -b.Vel.Y * Restitution
	}
	if b.Box.Y2 >= FieldBottom {
		b.Box.Translate(0, FieldBottom-b.Box.Y2)
		b.Vel.Y = -b.Vel.Y * Restitution
	}
}

// Decay 摩擦衰减并对接近零的分量清零
func (b *Ball) Decay() {
	b.Vel.X *= Friction
	b.Vel.Y *= Friction
	if math.Abs(b.Vel.X) < StopThreshold {
		b.Vel.X = 0
	}
	if math.Abs(b.Vel.Y) < StopThreshold {
		b.Vel.Y = 0
	}
}
