package manager

import (
	"github.com/google/uuid"
)

const maxScoreHistory = 50

// SessionManager tracks finished runs for the lifetime of the process.
// Nothing is written to disk.
type SessionManager struct {
	id           string
	runID        string
	highScore    int
	gamesPlayed  int
	scoreHistory []int
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		id:           uuid.New().String(),
		scoreHistory: make([]int, 0),
	}
}

// BeginRun assigns a fresh id to the run that is starting
func (sm *SessionManager) BeginRun() string {
	sm.runID = uuid.New().String()
	return sm.runID
}

// EndRun records the final score of the current run
func (sm *SessionManager) EndRun(score int) {
	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}
	if len(sm.scoreHistory) >= maxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *SessionManager) ID() string {
	return sm.id
}

func (sm *SessionManager) RunID() string {
	return sm.runID
}

func (sm *SessionManager) GetHighScore() int {
	return sm.highScore
}

func (sm *SessionManager) GamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *SessionManager) GetScoreHistory() []int {
	return sm.scoreHistory
}
