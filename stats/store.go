// Package stats 维护比赛台账：逐场记录、按玩家聚合胜负与进球，
// 并提供排行榜等只读查询。持久化走 gdata 跨平台存储，载荷为 YAML。
package stats

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "ledger"
)

// PlayerRecord 单个玩家的累计战绩
type PlayerRecord struct {
	Name          string `yaml:"name"`
	Wins          int    `yaml:"wins"`
	Losses        int    `yaml:"losses"`
	GoalsScored   int    `yaml:"goalsScored"`
	GoalsConceded int    `yaml:"goalsConceded"`
}

// MatchRecord 一场完赛的记录，Winner 为空表示平局
type MatchRecord struct {
	Player1  string    `yaml:"player1"`
	Player2  string    `yaml:"player2"`
	Score1   int       `yaml:"score1"`
	Score2   int       `yaml:"score2"`
	Winner   string    `yaml:"winner,omitempty"`
	PlayedAt time.Time `yaml:"playedAt"`
}

// Standing 查询结果：战绩加按百分比计的胜率（保留一位小数）
type Standing struct {
	PlayerRecord
	WinRate float64
}

// ledger 持久化的整体结构
type ledger struct {
	Players []*PlayerRecord `yaml:"players"`
	Matches []MatchRecord   `yaml:"matches"`
}

// Store 比赛统计存储。manager 为 nil 时进入降级模式：
// 数据仅驻内存，查询照常工作，持久化静默跳过。
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	ledger  ledger
}

// Open 创建存储并加载已保存的台账
func Open(manager *gdata.Manager) (*Store, error) {
	s := &Store{manager: manager}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats ledger: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.ledger); err != nil {
		return fmt.Errorf("failed to unmarshal stats ledger: %w", err)
	}
	return nil
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.ledger)
	if err != nil {
		return fmt.Errorf("failed to marshal stats ledger: %w", err)
	}
	if err := s.manager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats ledger: %w", err)
	}
	return nil
}

// getOrCreate 按名字取玩家记录，首次出现时创建
func (s *Store) getOrCreate(name string) *PlayerRecord {
	for _, p := range s.ledger.Players {
		if p.Name == name {
			return p
		}
	}
	p := &PlayerRecord{Name: name}
	s.ledger.Players = append(s.ledger.Players, p)
	return p
}

// RecordMatch 记录一场完赛：更新双方战绩并追加比赛记录。
// 每场完赛恰好调用一次，由对局结束事件触发。
func (s *Store) RecordMatch(player1, player2 string, score1, score2 int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p1 := s.getOrCreate(player1)
	p2 := s.getOrCreate(player2)
	p1.GoalsScored += score1
	p1.GoalsConceded += score2
	p2.GoalsScored += score2
	p2.GoalsConceded += score1

	var winner string
	switch {
	case score1 > score2:
		winner = player1
		p1.Wins++
		p2.Losses++
	case score2 > score1:
		winner = player2
		p2.Wins++
		p1.Losses++
	}

	s.ledger.Matches = append(s.ledger.Matches, MatchRecord{
		Player1:  player1,
		Player2:  player2,
		Score1:   score1,
		Score2:   score2,
		Winner:   winner,
		PlayedAt: time.Now(),
	})
	return s.save()
}

// winRate 胜率百分比，保留一位小数；无完赛记录时为 0
func winRate(p *PlayerRecord) float64 {
	total := p.Wins + p.Losses
	if total == 0 {
		return 0
	}
	return math.Round(float64(p.Wins)*1000/float64(total)) / 10
}

// Leaderboard 返回至少打过一场的玩家，按胜率降序、胜场数次序排序
func (s *Store) Leaderboard(limit int) []Standing {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Standing, 0, len(s.ledger.Players))
	for _, p := range s.ledger.Players {
		if p.Wins+p.Losses == 0 {
			continue
		}
		out = append(out, Standing{PlayerRecord: *p, WinRate: winRate(p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		return out[i].Wins > out[j].Wins
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecentMatches 最近的比赛记录，新的在前
func (s *Store) RecentMatches(limit int) []MatchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.ledger.Matches)
	out := make([]MatchRecord, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, s.ledger.Matches[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// PlayerStats 单个玩家的战绩，未知玩家返回 false
func (s *Store) PlayerStats(name string) (Standing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.ledger.Players {
		if p.Name == name {
			return Standing{PlayerRecord: *p, WinRate: winRate(p)}, true
		}
	}
	return Standing{}, false
}
