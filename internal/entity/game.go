package entity

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/dividebyhalf/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	DefaultStartValue = 1000
	TerminalValue     = 1
)

// Player identifies a seat at the table. The numeric values are the ones written to history records.
type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")

	// Divisors are the only legal moves, in the order they are offered and searched.
	Divisors = []int{2, 3, 4}
)

func (that Player) Opponent() Player {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return NoPlayer
	}
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	default:
		return "none"
	}
}

// State is the part of a game a move provider is allowed to see.
type State struct {
	Value int    `json:"value"`
	Turn  Player `json:"turn"`
}

// IsTerminal reports whether no further move can be made.
func (that State) IsTerminal() bool {
	return that.Value <= TerminalValue
}

// HistoryRecord is one applied move.
type HistoryRecord struct {
	Player      Player `json:"player"`
	Divisor     int    `json:"divisor"`
	ValueBefore int    `json:"value_before"`
	ValueAfter  int    `json:"value_after"`
}

func (that HistoryRecord) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", that.Player, that.Divisor, that.ValueBefore, that.ValueAfter)
}

type Game struct {
	ID     string
	Value  int
	Turn   Player
	Status string
	Winner Player

	history []HistoryRecord
}

func NewGameID() string {
	return uuid.NewString()
}

func NewGame(id string, startValue int) (*Game, error) {
	if startValue <= TerminalValue {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidStartValue, startValue)
	}

	return &Game{
		ID:     id,
		Value:  startValue,
		Turn:   PlayerOne,
		Status: StatusOngoing,
		Winner: NoPlayer,
	}, nil
}

func (that *Game) State() State {
	return State{Value: that.Value, Turn: that.Turn}
}

// History returns a copy of the moves applied so far, oldest first.
func (that *Game) History() []HistoryRecord {
	return append([]HistoryRecord(nil), that.history...)
}

func (that *Game) AppendHistory(record HistoryRecord) {
	that.history = append(that.history, record)
}

func (that *Game) Turns() int {
	return len(that.history)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Finish closes the game. Turn is cleared so nobody can move afterwards.
func (that *Game) Finish(winner Player) {
	that.Status = StatusFinished
	that.Winner = winner
	that.Turn = NoPlayer
}

type gameJSON struct {
	ID      string          `json:"id"`
	Value   int             `json:"value"`
	Turn    Player          `json:"player_turn"`
	Status  string          `json:"status"`
	Winner  Player          `json:"winner"`
	History []HistoryRecord `json:"history"`
}

func (that *Game) MarshalJSON() ([]byte, error) {
	history := that.history
	if history == nil {
		history = []HistoryRecord{}
	}

	return json.Marshal(gameJSON{
		ID:      that.ID,
		Value:   that.Value,
		Turn:    that.Turn,
		Status:  that.Status,
		Winner:  that.Winner,
		History: history,
	})
}

func (that *Game) UnmarshalJSON(data []byte) error {
	var raw gameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	that.ID = raw.ID
	that.Value = raw.Value
	that.Turn = raw.Turn
	that.Status = raw.Status
	that.Winner = raw.Winner
	that.history = raw.History

	return nil
}
