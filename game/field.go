package game

// 场地为固定尺寸：上下各有一条看台带，球门居中分布在左右短边
const (
	// FieldWidth / FieldHeight 整个画面的逻辑尺寸
	FieldWidth  = 1920.0
	FieldHeight = 1080.0

	// StandHeight 上下看台厚度，场地有效区为 [StandHeight, FieldHeight-StandHeight]
	StandHeight = 80.0

	// GoalWidth / GoalHeight 球门尺寸，垂直居中于场地中线
	GoalWidth  = 80.0
	GoalHeight = 300.0

	// PlayerSize / BallSize 玩家与球的包围盒边长
	PlayerSize = 80.0
	BallSize   = 32.0

	// PlayerSpeed 每个移动 Tick 玩家位移步长
	PlayerSpeed = 12.0

	// PushMagnitude 玩家触球时施加的固定冲量大小
	PushMagnitude = 4.0

	// Restitution 撞墙反弹保留的速度比例
	Restitution = 0.6

	// Friction 每个物理 Tick 的速度衰减系数
	Friction = 0.90

	// StopThreshold 低于该速度直接清零，避免永久微漂移
	StopThreshold = 0.1

	// WinScore 先到该分数者获胜
	WinScore = 5
)

// FieldTop / FieldBottom 场地有效区的上下边界
const (
	FieldTop    = StandHeight
	FieldBottom = FieldHeight - StandHeight
)

// MiddleY 场地中线的纵坐标
const MiddleY = (FieldTop + FieldBottom) / 2

// GoalMouthTop / GoalMouthBottom 球门口的垂直范围
const (
	GoalMouthTop    = MiddleY - GoalHeight/2
	GoalMouthBottom = MiddleY + GoalHeight/2
)
