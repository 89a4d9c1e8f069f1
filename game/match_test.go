package game

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func playingMatch(t *testing.T) *Match {
	t.Helper()
	m := NewMatch()
	evs := m.Start()
	if len(evs) != 1 || evs[0].Kind != EvStarted {
		t.Fatalf("start events = %+v", evs)
	}
	if m.Phase != PhasePlaying {
		t.Fatalf("phase after start = %v", m.Phase)
	}
	return m
}

// placeBallInLeftGoal 将球整体放进左门口（垂直完全包含）
func placeBallInLeftGoal(m *Match) {
	m.Ball.Box = Box{10, MiddleY - BallSize/2, 10 + BallSize, MiddleY + BallSize/2}
	m.Ball.Vel = Vec{}
}

func placeBallInRightGoal(m *Match) {
	m.Ball.Box = Box{FieldWidth - 10 - BallSize, MiddleY - BallSize/2, FieldWidth - 10, MiddleY + BallSize/2}
	m.Ball.Vel = Vec{}
}

func kinds(evs []Event) []EventKind {
	out := make([]EventKind, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Kind)
	}
	return out
}

func TestLeftGoalCreditsPlayer2(t *testing.T) {
	m := playingMatch(t)
	placeBallInLeftGoal(m)

	evs := m.BallTick(t0)
	if m.Score2 != 1 || m.Score1 != 0 {
		t.Fatalf("score = %d-%d, want 0-1", m.Score1, m.Score2)
	}
	if len(evs) != 1 || evs[0].Kind != EvGoal || evs[0].Side != 2 {
		t.Fatalf("events = %+v, want one EvGoal side 2", evs)
	}
	if m.Phase != PhaseGoalPause {
		t.Fatalf("phase after goal = %v, want GoalPause", m.Phase)
	}
	if m.Ball.Box != SpawnBall() || m.P1.Box != SpawnPlayer1() || m.P2.Box != SpawnPlayer2() {
		t.Fatalf("entities not reset after goal")
	}
}

func TestRightGoalCreditsPlayer1(t *testing.T) {
	m := playingMatch(t)
	placeBallInRightGoal(m)

	m.BallTick(t0)
	if m.Score1 != 1 || m.Score2 != 0 {
		t.Fatalf("score = %d-%d, want 1-0", m.Score1, m.Score2)
	}
}

func TestGoalRequiresFullVerticalContainment(t *testing.T) {
	cases := []struct {
		name string
		y1   float64
	}{
		{"one over top edge", GoalMouthTop - 1},
		{"one over bottom edge", GoalMouthBottom - BallSize + 1},
	}
	for _, tc := range cases {
		m := playingMatch(t)
		m.Ball.Box = Box{10, tc.y1, 10 + BallSize, tc.y1 + BallSize}
		m.Ball.Vel = Vec{}

		m.BallTick(t0)
		if m.Score1 != 0 || m.Score2 != 0 {
			t.Fatalf("%s: partially contained ball counted as goal", tc.name)
		}
	}
}

func TestGoalBannerClearsAfterDelay(t *testing.T) {
	m := playingMatch(t)
	placeBallInLeftGoal(m)
	m.BallTick(t0)

	// 提示期内模拟继续推进，阶段保持 GoalPause
	evs := m.BallTick(t0.Add(500 * time.Millisecond))
	if len(evs) != 0 || m.Phase != PhaseGoalPause {
		t.Fatalf("banner cleared too early: phase=%v evs=%+v", m.Phase, evs)
	}

	evs = m.BallTick(t0.Add(1600 * time.Millisecond))
	if len(evs) != 1 || evs[0].Kind != EvBannerCleared {
		t.Fatalf("events = %+v, want EvBannerCleared", evs)
	}
	if m.Phase != PhasePlaying {
		t.Fatalf("phase after banner clear = %v", m.Phase)
	}
}

func TestWinningGoalEntersMatchOverOnce(t *testing.T) {
	m := playingMatch(t)
	m.Score1 = 4
	m.Score2 = 3
	placeBallInRightGoal(m)

	evs := m.BallTick(t0)
	got := kinds(evs)
	if len(got) != 2 || got[0] != EvGoal || got[1] != EvMatchOver {
		t.Fatalf("events = %v, want [EvGoal EvMatchOver]", got)
	}
	if evs[1].Side != 1 || evs[1].Score1 != 5 || evs[1].Score2 != 3 {
		t.Fatalf("match over event = %+v, want side 1 score 5-3", evs[1])
	}
	if m.Phase != PhaseMatchOver {
		t.Fatalf("phase = %v, want MatchOver", m.Phase)
	}

	// 终局后比分冻结：后续 Tick 不再判进球，也不会再次发 EvMatchOver
	placeBallInRightGoal(m)
	evs = m.BallTick(t0.Add(20 * time.Millisecond))
	if len(evs) != 0 || m.Score1 != 5 || m.Score2 != 3 {
		t.Fatalf("score mutated after match over: %d-%d evs=%+v", m.Score1, m.Score2, evs)
	}
}

func TestMatchOverFollowUps(t *testing.T) {
	m := playingMatch(t)
	m.Score2 = 4
	placeBallInLeftGoal(m)
	m.BallTick(t0)

	evs := m.BallTick(t0.Add(2 * time.Second))
	if len(evs) != 1 || evs[0].Kind != EvStatsOffered {
		t.Fatalf("events at +2s = %+v, want EvStatsOffered", evs)
	}
	// 统计入口只提供一次
	evs = m.BallTick(t0.Add(3 * time.Second))
	if len(evs) != 0 {
		t.Fatalf("events at +3s = %+v, want none", evs)
	}

	evs = m.BallTick(t0.Add(5 * time.Second))
	if len(evs) != 1 || evs[0].Kind != EvReturnedToMenu {
		t.Fatalf("events at +5s = %+v, want EvReturnedToMenu", evs)
	}
	if m.Phase != PhaseIdle {
		t.Fatalf("phase after auto return = %v, want Idle", m.Phase)
	}
	// 比分保留最后值，下次 Start 才清零
	if m.Score1 != 0 || m.Score2 != 5 {
		t.Fatalf("score after return = %d-%d, want 0-5", m.Score1, m.Score2)
	}
}

func TestReturnToMenuIdempotent(t *testing.T) {
	m := playingMatch(t)
	m.Score1 = 2

	evs := m.ReturnToMenu()
	if len(evs) != 1 || evs[0].Kind != EvReturnedToMenu {
		t.Fatalf("first return events = %+v", evs)
	}
	evs = m.ReturnToMenu()
	if len(evs) != 0 {
		t.Fatalf("second return emitted events: %+v", evs)
	}
	if m.Phase != PhaseIdle || m.Score1 != 2 {
		t.Fatalf("phase=%v score1=%d after double return", m.Phase, m.Score1)
	}
}

func TestIdleTicksAreNoOps(t *testing.T) {
	m := NewMatch()
	placeBallInLeftGoal(m)

	m.MoveTick()
	evs := m.BallTick(t0)
	if len(evs) != 0 || m.Score2 != 0 {
		t.Fatalf("idle tick advanced simulation: score2=%d evs=%+v", m.Score2, evs)
	}

	// Idle 状态下按键不生效
	m.KeyDown(P1Right)
	m.MoveTick()
	if m.P1.Box != SpawnPlayer1() {
		t.Fatalf("player moved while idle")
	}
}

func TestStartResetsScoresAndEntities(t *testing.T) {
	m := playingMatch(t)
	m.Score1 = 3
	m.Score2 = 1
	m.P1.Box.Translate(100, 0)
	m.ReturnToMenu()

	m.Start()
	if m.Score1 != 0 || m.Score2 != 0 {
		t.Fatalf("scores not reset on start: %d-%d", m.Score1, m.Score2)
	}
	if m.P1.Box != SpawnPlayer1() {
		t.Fatalf("entities not reset on start")
	}

	// 对局中重复 Start 为 no-op
	m.Score1 = 2
	if evs := m.Start(); len(evs) != 0 {
		t.Fatalf("start while playing emitted events: %+v", evs)
	}
	if m.Score1 != 2 {
		t.Fatalf("start while playing reset scores")
	}
}

func TestMoveTickPushesRestingBall(t *testing.T) {
	// 玩家1 从左侧顶住静止的球后，球速为水平向右、大小为固定推力
	m := playingMatch(t)
	m.P1.Box = boxAt(FieldWidth/2-50, MiddleY, PlayerSize)
	m.KeyDown(P1Right)

	m.MoveTick()
	if m.Ball.Vel.X != PushMagnitude || m.Ball.Vel.Y != 0 {
		t.Fatalf("ball vel = %+v, want {%v 0}", m.Ball.Vel, PushMagnitude)
	}
}
