package manager

import (
	"time"

	"github.com/google/uuid"
)

// GameState is either Active or Over.
type GameState int

const (
	Active GameState = iota
	Over
)

func (s GameState) String() string {
	if s == Over {
		return "over"
	}
	return "active"
}

// maxRounds bounds the in-memory round history.
const maxRounds = 50

// RoundRecord describes one finished round. Nothing is written to disk.
type RoundRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
}

// Duration is how long the round lasted.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager tracks the game state, the score of the current round, the
// session high score and the last maxRounds rounds.
type StateManager struct {
	state     GameState
	score     int
	highScore int
	round     RoundRecord
	history   []RoundRecord
	now       func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		state:   Active,
		history: make([]RoundRecord, 0, maxRounds),
		now:     time.Now,
	}
	sm.beginRound()
	return sm
}

func (sm *StateManager) beginRound() {
	sm.round = RoundRecord{
		ID:        uuid.New().String(),
		StartTime: sm.now(),
	}
}

func (sm *StateManager) State() GameState {
	return sm.state
}

func (sm *StateManager) IsActive() bool {
	return sm.state == Active
}

func (sm *StateManager) Score() int {
	return sm.score
}

// HighScore never decreases during the lifetime of the manager.
func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// RoundID identifies the round in progress.
func (sm *StateManager) RoundID() string {
	return sm.round.ID
}

// AddPoint credits one fruit and returns the new score.
func (sm *StateManager) AddPoint() int {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	return sm.score
}

// EndRound moves to Over, archives the finished round and zeroes the score.
// The high score is kept.
func (sm *StateManager) EndRound() RoundRecord {
	sm.state = Over

	finished := sm.round
	finished.EndTime = sm.now()
	finished.Score = sm.score

	if len(sm.history) >= maxRounds {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, finished)

	sm.score = 0
	sm.beginRound()
	return finished
}

// Resume leaves the Over state. It reports whether anything changed.
func (sm *StateManager) Resume() bool {
	if sm.state == Active {
		return false
	}
	sm.state = Active
	sm.round.StartTime = sm.now()
	return true
}

// History returns the finished rounds, oldest first.
func (sm *StateManager) History() []RoundRecord {
	out := make([]RoundRecord, len(sm.history))
	copy(out, sm.history)
	return out
}
