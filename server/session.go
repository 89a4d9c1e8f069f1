package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fbx/game"
	"fbx/stats"
)

const (
	// moveInterval 玩家移动与触球判定的节拍
	moveInterval = 16 * time.Millisecond
	// ballInterval 球物理与进球/胜负判定的节拍
	ballInterval = 20 * time.Millisecond
)

// keyEvent 入站按键事件，在两次 Tick 之间被整体应用
type keyEvent struct {
	action game.Action
	down   bool
}

// controlKind 表现层发来的控制请求
type controlKind int

const (
	ctrlStart controlKind = iota
	ctrlMenu
)

// Session 一场本地对局的会话：权威状态维护在内存，单 goroutine 推进。
// 两个固定节拍在同一个 select 循环内交错，共享状态无需加锁。
type Session struct {
	match   *game.Match
	store   *stats.Store
	metrics *SessionMetrics

	keyChan   chan keyEvent
	ctrlChan  chan controlKind
	joinChan  chan client
	leaveChan chan client
	stopChan  chan struct{}
	stopOnce  sync.Once

	clients map[client]bool

	// 展示名可被 admin 接口热更新，跨 goroutine 读写需加锁
	nameMu      sync.RWMutex
	player1Name string
	player2Name string

	// 仅会话循环读写
	banner    string
	showStats bool
}

// NewSession 创建会话，Run 启动前不接收任何事件
func NewSession(store *stats.Store, cfg Config) *Session {
	return &Session{
		match:       game.NewMatch(),
		store:       store,
		metrics:     &SessionMetrics{},
		keyChan:     make(chan keyEvent, 256), // 足够缓冲，避免网络读阻塞影响 Tick
		ctrlChan:    make(chan controlKind, 16),
		joinChan:    make(chan client, 8),
		leaveChan:   make(chan client, 8),
		stopChan:    make(chan struct{}),
		clients:     make(map[client]bool),
		player1Name: cfg.Player1Name,
		player2Name: cfg.Player2Name,
	}
}

// Start 启动会话循环
func (s *Session) Start() {
	go s.run()
}

// Stop 停止会话循环，幂等
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// OnKey 入站按键（不立即生效），等会话循环在 Tick 间应用。
// 不阻塞：通道满时丢弃，保证 Tick 准时。
func (s *Session) OnKey(name string, down bool) {
	a := game.ParseKey(name)
	if a == game.ActionNone {
		return
	}
	select {
	case s.keyChan <- keyEvent{action: a, down: down}:
	default:
		s.metrics.IncDiscarded()
	}
}

// OnControl 开始对局 / 回到菜单请求
func (s *Session) OnControl(kind controlKind) {
	select {
	case s.ctrlChan <- kind:
	default:
		// 控制请求拥塞时丢弃，客户端可重发
	}
}

// client 会话侧需要的最小连接能力，测试可用假实现替换
type client interface {
	Enqueue(b []byte)
	Close()
}

// Join / RequestLeave 客户端接入与退出，都在会话循环内生效
func (s *Session) Join(c client) {
	s.joinChan <- c
}

func (s *Session) RequestLeave(c client) {
	s.leaveChan <- c
}

// run 核心循环：16ms 移动节拍与 20ms 物理节拍交错在单 goroutine 上，
// 回调之间不会重入，所有共享状态只从这里读写
func (s *Session) run() {
	moveTicker := time.NewTicker(moveInterval)
	ballTicker := time.NewTicker(ballInterval)
	defer moveTicker.Stop()
	defer ballTicker.Stop()

	for {
		select {
		case <-s.stopChan:
			for c := range s.clients {
				c.Close()
			}
			return
		case c := <-s.joinChan:
			s.clients[c] = true
			c.Enqueue(s.stateMessage())
		case c := <-s.leaveChan:
			if s.clients[c] {
				delete(s.clients, c)
				c.Close()
			}
		case ev := <-s.keyChan:
			s.metrics.IncAccepted()
			if ev.down {
				s.match.KeyDown(ev.action)
			} else {
				s.match.KeyUp(ev.action)
			}
		case kind := <-s.ctrlChan:
			switch kind {
			case ctrlStart:
				s.handleEvents(s.match.Start())
			case ctrlMenu:
				s.handleEvents(s.match.ReturnToMenu())
			}
			s.broadcast()
		case <-moveTicker.C:
			s.match.MoveTick()
			s.metrics.IncMoveTick()
		case now := <-ballTicker.C:
			start := time.Now()
			s.handleEvents(s.match.BallTick(now))
			s.broadcast()
			s.metrics.AddBallTick(time.Since(start).Nanoseconds())
		}
	}
}

// handleEvents 消费状态机事件：更新提示横幅、指标，并触发完赛落库
func (s *Session) handleEvents(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EvStarted:
			s.banner = ""
			s.showStats = false
			Log.Infof("match started: %s vs %s", s.Player1Name(), s.Player2Name())
		case game.EvGoal:
			s.metrics.IncGoal()
			s.banner = fmt.Sprintf("GOAL! Player %d Scores!", e.Side)
			Log.Infof("goal: player %d scores, %d-%d", e.Side, e.Score1, e.Score2)
		case game.EvBannerCleared:
			s.banner = ""
		case game.EvMatchOver:
			s.banner = fmt.Sprintf("PLAYER %d WINS!", e.Side)
			Log.Infof("match over: player %d wins %d-%d", e.Side, e.Score1, e.Score2)
			s.recordMatch(e.Score1, e.Score2)
		case game.EvStatsOffered:
			s.showStats = true
		case game.EvReturnedToMenu:
			s.banner = ""
			s.showStats = false
			Log.Infof("returned to menu at %d-%d", e.Score1, e.Score2)
		}
	}
}

// recordMatch 完赛落库，每场恰好触发一次（EvMatchOver 只发一次）。
// 落库失败不影响对局，只记日志
func (s *Session) recordMatch(score1, score2 int) {
	p1 := s.Player1Name()
	p2 := s.Player2Name()
	go func() {
		if err := s.store.RecordMatch(p1, p2, score1, score2); err != nil {
			Log.Errorf("record match failed: %v", err)
			return
		}
		s.metrics.IncRecorded()
	}()
}

// Metrics 指标访问器，供 HTTP 输出
func (s *Session) Metrics() *SessionMetrics {
	return s.metrics
}

// Player1Name / Player2Name / SetPlayerNames 展示名读写（admin 热更新）
func (s *Session) Player1Name() string {
	s.nameMu.RLock()
	defer s.nameMu.RUnlock()
	return s.player1Name
}

func (s *Session) Player2Name() string {
	s.nameMu.RLock()
	defer s.nameMu.RUnlock()
	return s.player2Name
}

func (s *Session) SetPlayerNames(p1, p2 string) {
	s.nameMu.Lock()
	defer s.nameMu.Unlock()
	if p1 != "" {
		s.player1Name = p1
	}
	if p2 != "" {
		s.player2Name = p2
	}
}

// boxState 广播给客户端的包围盒
type boxState struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func toBoxState(b game.Box) boxState {
	return boxState{X1: b.X1, Y1: b.Y1, X2: b.X2, Y2: b.Y2}
}

// stateMessage 当前世界状态的 JSON 快照
func (s *Session) stateMessage() []byte {
	payload := struct {
		Type      string   `json:"type"`
		Phase     string   `json:"phase"`
		Score1    int      `json:"score1"`
		Score2    int      `json:"score2"`
		P1        boxState `json:"p1"`
		P2        boxState `json:"p2"`
		Ball      boxState `json:"ball"`
		Banner    string   `json:"banner,omitempty"`
		ShowStats bool     `json:"showStats,omitempty"`
	}{
		Type:      "state",
		Phase:     phaseName(s.match.Phase),
		Score1:    s.match.Score1,
		Score2:    s.match.Score2,
		P1:        toBoxState(s.match.P1.Box),
		P2:        toBoxState(s.match.P2.Box),
		Ball:      toBoxState(s.match.Ball.Box),
		Banner:    s.banner,
		ShowStats: s.showStats,
	}
	b, _ := json.Marshal(payload)
	return b
}

// Broadcast 将当前世界状态广播给所有客户端（文本 JSON）
func (s *Session) broadcast() {
	if len(s.clients) == 0 {
		return
	}
	b := s.stateMessage()
	for c := range s.clients {
		c.Enqueue(b)
	}
}

func phaseName(p game.Phase) string {
	switch p {
	case game.PhasePlaying:
		return "playing"
	case game.PhaseGoalPause:
		return "goal"
	case game.PhaseMatchOver:
		return "over"
	default:
		return "idle"
	}
}
