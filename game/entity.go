package game

// Box 轴对齐包围盒，(X1,Y1) 左上角、(X2,Y2) 右下角
type Box struct {
	X1, Y1, X2, Y2 float64
}

// Vec 二维向量（位移或速度）
type Vec struct {
	X, Y float64
}

// Translate 平移包围盒
func (b *Box) Translate(dx, dy float64) {
	b.X1 += dx
	b.Y1 += dy
	b.X2 += dx
	b.Y2 += dy
}

// Center 包围盒中心点
func (b Box) Center() (float64, float64) {
	return (b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2
}

// Intersects 开区间矩形相交测试：仅内部重叠算相交，边缘相贴不算
func (b Box) Intersects(o Box) bool {
	return b.X1 < o.X2 && b.X2 > o.X1 && b.Y1 < o.Y2 && b.Y2 > o.Y1
}

// Player 玩家实体：仅有位置，无持续速度（位移由输入直接驱动）
type Player struct {
	Box Box
}

// Ball 球实体：位置加持续速度
type Ball struct {
	Box Box
	Vel Vec
}

// boxAt 以中心点生成指定边长的包围盒
func boxAt(cx, cy, size float64) Box {
	return Box{X1: cx - size/2, Y1: cy - size/2, X2: cx + size/2, Y2: cy + size/2}
}

// SpawnPlayer1 玩家1出生位置：距左边线 150，垂直居中
func SpawnPlayer1() Box {
	return Box{X1: 150, Y1: MiddleY - PlayerSize/2, X2: 150 + PlayerSize, Y2: MiddleY + PlayerSize/2}
}

// SpawnPlayer2 玩家2出生位置：与玩家1左右对称
func SpawnPlayer2() Box {
	return Box{X1: FieldWidth - 150 - PlayerSize, Y1: MiddleY - PlayerSize/2, X2: FieldWidth - 150, Y2: MiddleY + PlayerSize/2}
}

// SpawnBall 球出生位置：场地正中
func SpawnBall() Box {
	return boxAt(FieldWidth/2, MiddleY, BallSize)
}
