package server

import (
    "encoding/json"
    "net/http"
    "strconv"
)

// HandleAdminConfig 提供玩家显示名的读取与更新（热更新，记入下一场完赛）
// GET /admin/config  返回当前配置
// POST /admin/config 以 JSON 载荷更新部分字段
func (s *Session) HandleAdminConfig(w http.ResponseWriter, r *http.Request) {
    type cfg struct {
        Player1Name *string `json:"player1Name,omitempty"`
        Player2Name *string `json:"player2Name,omitempty"`
    }

    switch r.Method {
    case http.MethodGet:
        p1 := s.Player1Name()
        p2 := s.Player2Name()
        cur := cfg{Player1Name: &p1, Player2Name: &p2}
        w.Header().Set("Content-Type", "application/json")
        _ = json.NewEncoder(w).Encode(cur)
        return
    case http.MethodPost:
        var body cfg
        if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
            http.Error(w, "invalid json", http.StatusBadRequest)
            return
        }
        var p1, p2 string
        if body.Player1Name != nil { p1 = *body.Player1Name }
        if body.Player2Name != nil { p2 = *body.Player2Name }
        s.SetPlayerNames(p1, p2)
        w.Header().Set("Content-Type", "application/json")
        _ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
        Log.Infof("config updated: player1=%q player2=%q", s.Player1Name(), s.Player2Name())
        return
    default:
        http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
        return
    }
}

// HandleMetrics 输出会话的运行指标
// GET /metrics
func (s *Session) HandleMetrics(w http.ResponseWriter, r *http.Request) {
    payload := map[string]any{
        "metrics": s.metrics.Snapshot(),
    }
    w.Header().Set("Content-Type", "application/json")
    _ = json.NewEncoder(w).Encode(payload)
}

// HandleStats 统计只读查询，供表现层的统计页使用
// GET /stats?limit=10          排行榜 + 最近比赛
// GET /stats?player=Player%201 单个玩家战绩
func (s *Session) HandleStats(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")

    if name := r.URL.Query().Get("player"); name != "" {
        st, ok := s.store.PlayerStats(name)
        if !ok {
            http.Error(w, "unknown player", http.StatusNotFound)
            return
        }
        _ = json.NewEncoder(w).Encode(st)
        return
    }

    limit := 10
    if v := r.URL.Query().Get("limit"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            limit = n
        }
    }
    payload := map[string]any{
        "leaderboard": s.store.Leaderboard(limit),
        "recent":      s.store.RecentMatches(limit),
    }
    _ = json.NewEncoder(w).Encode(payload)
}
