package game

import (
	"sort"
	"sync"
	"time"

	"retry-snake/game/manager"
	"retry-snake/game/types"
)

// LifeRecord describes one life, from start or retry to its collision
type LifeRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     types.CollisionType
}

func (r LifeRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// LifeStats keeps the lives of the current session in memory.
// A full restart clears it; nothing is written to disk.
type LifeStats struct {
	mutex sync.RWMutex
	lives []LifeRecord

	lifeStart    time.Time
	scoreAtStart int
	lastState    manager.State
	lastFailures int

	now func() time.Time
}

func NewLifeStats() *LifeStats {
	return &LifeStats{
		lives: make([]LifeRecord, 0, types.MaxFailures),
		now:   time.Now,
	}
}

// Status implements manager.StatusSink
func (s *LifeStats) Status(st manager.Status) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	switch {
	case st.State == manager.Idle:
		s.lives = s.lives[:0]
	case st.State == manager.Running && (s.lastState == manager.Idle || s.lastState == manager.RetryPending):
		s.lifeStart = s.now()
		s.scoreAtStart = st.Score
	case st.Failures > s.lastFailures:
		s.lives = append(s.lives, LifeRecord{
			StartTime: s.lifeStart,
			EndTime:   s.now(),
			Score:     st.Score - s.scoreAtStart,
			Cause:     st.Cause,
		})
	}

	s.lastState = st.State
	s.lastFailures = st.Failures
}

// GetLives returns a copy of the finished lives, oldest first
func (s *LifeStats) GetLives() []LifeRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	lives := make([]LifeRecord, len(s.lives))
	copy(lives, s.lives)
	return lives
}

// GetLivesPlayed returns the number of finished lives
func (s *LifeStats) GetLivesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.lives)
}

// GetAverageScore returns the mean points per finished life
func (s *LifeStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.lives) == 0 {
		return 0
	}
	total := 0
	for _, life := range s.lives {
		total += life.Score
	}
	return float64(total) / float64(len(s.lives))
}

// GetMedianScore returns the median points per finished life
func (s *LifeStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.lives) == 0 {
		return 0
	}
	scores := make([]int, len(s.lives))
	for i, life := range s.lives {
		scores[i] = life.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetMaxScore returns the best single life
func (s *LifeStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, life := range s.lives {
		if life.Score > best {
			best = life.Score
		}
	}
	return best
}

// GetAverageDuration returns the mean life length
func (s *LifeStats) GetAverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.lives) == 0 {
		return 0
	}
	var total time.Duration
	for _, life := range s.lives {
		total += life.Duration()
	}
	return total / time.Duration(len(s.lives))
}
