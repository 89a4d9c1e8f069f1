package game

import "time"

// Phase 对局状态机的离散阶段
type Phase int

const (
	// PhaseIdle 菜单状态，模拟不推进
	PhaseIdle Phase = iota
	// PhasePlaying 正常对局中
	PhasePlaying
	// PhaseGoalPause 进球后的短暂提示窗口，模拟继续推进
	PhaseGoalPause
	// PhaseMatchOver 比分冻结，等待自动回到菜单
	PhaseMatchOver
)

// 进球提示与终局后续动作的固定延时
const (
	goalBannerDelay = 1500 * time.Millisecond
	statsOfferDelay = 2 * time.Second
	backToMenuDelay = 5 * time.Second
)

// EventKind 状态机对外发出的事件类型，由表现层消费
type EventKind int

const (
	// EvStarted 对局开始（比分清零、实体归位）
	EvStarted EventKind = iota
	// EvGoal 一方进球，Side 为得分玩家
	EvGoal
	// EvBannerCleared 进球提示到期清除
	EvBannerCleared
	// EvMatchOver 对局结束，Side 为胜者
	EvMatchOver
	// EvStatsOffered 终局两秒后提供“查看统计”入口
	EvStatsOffered
	// EvReturnedToMenu 回到菜单
	EvReturnedToMenu
)

// Event 状态机事件，Score1/Score2 为事件发生后的比分
type Event struct {
	Kind   EventKind
	Side   int // 1 或 2，见 Kind 说明；无关事件为 0
	Score1 int
	Score2 int
}

// Match 一场对局的全部权威状态：比分、阶段、实体与输入。
// 仅允许单一 goroutine 持有并推进（见 server 的会话循环）。
type Match struct {
	Phase  Phase
	Score1 int
	Score2 int

	P1   Player
	P2   Player
	Ball Ball

	input *InputState

	// 延时动作以截止时间形式记录，由 Tick 循环检查，避免跨 goroutine 回调
	bannerUntil  time.Time
	statsAt      time.Time
	menuAt       time.Time
	statsOffered bool
}

// NewMatch 创建处于菜单状态的对局
func NewMatch() *Match {
	m := &Match{input: NewInputState()}
	m.resetEntities()
	return m
}

// active 模拟是否在推进（Playing 与 GoalPause 都算）
func (m *Match) active() bool {
	return m.Phase == PhasePlaying || m.Phase == PhaseGoalPause
}

// resetEntities 球与双方玩家回到开球位置，球速清零
func (m *Match) resetEntities() {
	m.P1.Box = SpawnPlayer1()
	m.P2.Box = SpawnPlayer2()
	m.Ball.Box = SpawnBall()
	m.Ball.Vel = Vec{}
}

// Start 从菜单进入对局：比分清零、实体归位、输入生效。
// 非 Idle 状态下为 no-op。
func (m *Match) Start() []Event {
	if m.Phase != PhaseIdle {
		return nil
	}
	m.Score1 = 0
	m.Score2 = 0
	m.Phase = PhasePlaying
	m.input.Clear()
	m.resetEntities()
	m.bannerUntil = time.Time{}
	m.statsAt = time.Time{}
	m.menuAt = time.Time{}
	m.statsOffered = false
	return []Event{{Kind: EvStarted}}
}

// KeyDown / KeyUp 输入事件，仅在对局进行中生效
func (m *Match) KeyDown(a Action) {
	if m.active() {
		m.input.Press(a)
	}
}

func (m *Match) KeyUp(a Action) {
	m.input.Release(a)
}

// MoveTick 移动节拍（16ms）：按住的方向逐个尝试位移，随后判定触球推力。
// 菜单或终局状态下不做任何事。
func (m *Match) MoveTick() {
	if !m.active() {
		return
	}
	applyHeldMoves(&m.P1, p1Actions, m.input, &m.P2)
	applyHeldMoves(&m.P2, p2Actions, m.input, &m.P1)
	pushBall(&m.Ball, &m.P1, &m.P2)
}

// BallTick 物理节拍（20ms）：推进球、检查进球与胜负、衰减球速，
// 并检查各延时截止点。now 由调用方传入，测试可直接驱动时间。
func (m *Match) BallTick(now time.Time) []Event {
	var events []Event

	switch m.Phase {
	case PhaseIdle:
		return nil
	case PhaseMatchOver:
		if !m.statsOffered && !now.Before(m.statsAt) {
			m.statsOffered = true
			events = append(events, Event{Kind: EvStatsOffered, Score1: m.Score1, Score2: m.Score2})
		}
		if !now.Before(m.menuAt) {
			events = append(events, m.ReturnToMenu()...)
		}
		return events
	case PhaseGoalPause:
		if !now.Before(m.bannerUntil) {
			m.Phase = PhasePlaying
			events = append(events, Event{Kind: EvBannerCleared, Score1: m.Score1, Score2: m.Score2})
		}
	}

	m.Ball.Advance()
	events = append(events, m.checkGoal(now)...)
	m.Ball.Decay()
	return events
}

// checkGoal 以反弹修正后的球位判定进球：球必须整体落在球门口的
// 垂直范围内才算。左门先判，进左门得分的是玩家2（对方得分约定）。
func (m *Match) checkGoal(now time.Time) []Event {
	b := m.Ball.Box
	inMouth := b.Y1 >= GoalMouthTop && b.Y2 <= GoalMouthBottom

	var scorer int
	if b.X1 <= GoalWidth && inMouth {
		m.Score2++
		scorer = 2
	} else if b.X2 >= FieldWidth-GoalWidth && inMouth {
		m.Score1++
		scorer = 1
	} else {
		return nil
	}

	m.resetEntities()
	events := []Event{{Kind: EvGoal, Side: scorer, Score1: m.Score1, Score2: m.Score2}}

	// 胜负只在比分刚变化的这个 Tick 内判定
	if m.Score1 >= WinScore {
		events = append(events, m.finish(1, now))
	} else if m.Score2 >= WinScore {
		events = append(events, m.finish(2, now))
	} else {
		m.Phase = PhaseGoalPause
		m.bannerUntil = now.Add(goalBannerDelay)
	}
	return events
}

// finish 进入终局：输入失效、安排统计入口与自动回菜单的截止时间
func (m *Match) finish(winner int, now time.Time) Event {
	m.Phase = PhaseMatchOver
	m.input.Clear()
	m.statsAt = now.Add(statsOfferDelay)
	m.menuAt = now.Add(backToMenuDelay)
	m.statsOffered = false
	return Event{Kind: EvMatchOver, Side: winner, Score1: m.Score1, Score2: m.Score2}
}

// ReturnToMenu 回到菜单：停止模拟效果、清空输入，比分保留最后值
// （下次 Start 时才清零）。重复调用幂等，Idle 状态下不再发事件。
func (m *Match) ReturnToMenu() []Event {
	if m.Phase == PhaseIdle {
		return nil
	}
	m.Phase = PhaseIdle
	m.input.Clear()
	m.bannerUntil = time.Time{}
	m.statsAt = time.Time{}
	m.menuAt = time.Time{}
	return []Event{{Kind: EvReturnedToMenu, Score1: m.Score1, Score2: m.Score2}}
}
