package server

import (
    "sync/atomic"
)

// SessionMetrics 记录会话运行期的关键指标（用于监控与调试）
type SessionMetrics struct {
    MoveTicks       int64 // 移动节拍次数
    BallTicks       int64 // 球物理节拍次数
    InputsAccepted  int64 // 被接受的按键事件数
    InputsDiscarded int64 // 因通道满被丢弃的按键事件数
    Goals           int64 // 进球总数
    MatchesRecorded int64 // 已写入统计台账的完赛数
    TotalTickNs     int64 // Tick 累计耗时（纳秒）
}

func (m *SessionMetrics) IncMoveTick()  { atomic.AddInt64(&m.MoveTicks, 1) }
func (m *SessionMetrics) IncAccepted()  { atomic.AddInt64(&m.InputsAccepted, 1) }
func (m *SessionMetrics) IncDiscarded() { atomic.AddInt64(&m.InputsDiscarded, 1) }
func (m *SessionMetrics) IncGoal()      { atomic.AddInt64(&m.Goals, 1) }
func (m *SessionMetrics) IncRecorded()  { atomic.AddInt64(&m.MatchesRecorded, 1) }
func (m *SessionMetrics) AddBallTick(ns int64) {
    atomic.AddInt64(&m.BallTicks, 1)
    atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *SessionMetrics) Snapshot() map[string]any {
    ticks := atomic.LoadInt64(&m.BallTicks)
    total := atomic.LoadInt64(&m.TotalTickNs)
    var avgMs float64
    if ticks > 0 {
        avgMs = float64(total) / float64(ticks) / 1e6
    }
    return map[string]any{
        "move_ticks":       atomic.LoadInt64(&m.MoveTicks),
        "ball_ticks":       ticks,
        "inputs_accepted":  atomic.LoadInt64(&m.InputsAccepted),
        "inputs_discarded": atomic.LoadInt64(&m.InputsDiscarded),
        "goals":            atomic.LoadInt64(&m.Goals),
        "matches_recorded": atomic.LoadInt64(&m.MatchesRecorded),
        "avg_tick_ms":      avgMs,
    }
}
