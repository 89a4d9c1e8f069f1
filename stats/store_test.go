package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestManager 创建测试专用的 gdata Manager，结束后清理存储目录
func newTestManager(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("fbx_stats_test_%s_%d", name, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})
	return manager
}

func TestRecordMatchAggregates(t *testing.T) {
	s, err := Open(nil)
	require.NoError(t, err)

	require.NoError(t, s.RecordMatch("Player 1", "Player 2", 5, 3))
	require.NoError(t, s.RecordMatch("Player 1", "Player 2", 2, 5))

	p1, ok := s.PlayerStats("Player 1")
	require.True(t, ok)
	assert.Equal(t, 1, p1.Wins)
	assert.Equal(t, 1, p1.Losses)
	assert.Equal(t, 7, p1.GoalsScored)
	assert.Equal(t, 8, p1.GoalsConceded)
	assert.Equal(t, 50.0, p1.WinRate)

	p2, ok := s.PlayerStats("Player 2")
	require.True(t, ok)
	assert.Equal(t, 1, p2.Wins)
	assert.Equal(t, 8, p2.GoalsScored)
}

func TestRecordMatchDraw(t *testing.T) {
	s, err := Open(nil)
	require.NoError(t, err)

	require.NoError(t, s.RecordMatch("a", "b", 3, 3))

	recent := s.RecentMatches(1)
	require.Len(t, recent, 1)
	assert.Empty(t, recent[0].Winner)

	a, ok := s.PlayerStats("a")
	require.True(t, ok)
	assert.Zero(t, a.Wins)
	assert.Zero(t, a.Losses)
}

func TestLeaderboardOrdering(t *testing.T) {
	s, err := Open(nil)
	require.NoError(t, err)

	// c: 2胜0负（100%），a: 1胜0负（100%），b: 0胜3负
	require.NoError(t, s.RecordMatch("c", "b", 5, 0))
	require.NoError(t, s.RecordMatch("c", "b", 5, 2))
	require.NoError(t, s.RecordMatch("a", "b", 5, 4))

	board := s.Leaderboard(10)
	require.Len(t, board, 3)
	// 胜率并列时按胜场数降序
	assert.Equal(t, "c", board[0].Name)
	assert.Equal(t, "a", board[1].Name)
	assert.Equal(t, "b", board[2].Name)

	board = s.Leaderboard(2)
	assert.Len(t, board, 2)
}

func TestLeaderboardSkipsPlayersWithoutMatches(t *testing.T) {
	s, err := Open(nil)
	require.NoError(t, err)

	require.NoError(t, s.RecordMatch("a", "b", 3, 3)) // 平局双方均无胜负场次
	assert.Empty(t, s.Leaderboard(10))
}

func TestRecentMatchesNewestFirst(t *testing.T) {
	s, err := Open(nil)
	require.NoError(t, err)

	require.NoError(t, s.RecordMatch("a", "b", 5, 1))
	require.NoError(t, s.RecordMatch("a", "b", 5, 2))
	require.NoError(t, s.RecordMatch("a", "b", 5, 3))

	recent := s.RecentMatches(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].Score2)
	assert.Equal(t, 2, recent[1].Score2)
}

func TestPlayerStatsUnknown(t *testing.T) {
	s, err := Open(nil)
	require.NoError(t, err)

	_, ok := s.PlayerStats("nobody")
	assert.False(t, ok)
}

func TestLedgerSurvivesReopen(t *testing.T) {
	manager := newTestManager(t, "reopen")
	if manager == nil {
		t.Skip("cannot create gdata manager in this environment")
	}

	s, err := Open(manager)
	require.NoError(t, err)
	require.NoError(t, s.RecordMatch("Player 1", "Player 2", 5, 3))

	reopened, err := Open(manager)
	require.NoError(t, err)
	p1, ok := reopened.PlayerStats("Player 1")
	require.True(t, ok)
	assert.Equal(t, 1, p1.Wins)
	require.Len(t, reopened.RecentMatches(10), 1)
}
