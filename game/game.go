package game

import (
	"fmt"

	"github.com/golang/glog"

	"math-snake/game/entity"
	"math-snake/game/manager"
	"math-snake/game/types"
)

// State is the screen the game is on
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is what a single tick did
type Outcome int

const (
	OutcomeIdle Outcome = iota // Not playing
	OutcomeMoved
	OutcomeGrew
	OutcomeWallDeath
	OutcomeSelfDeath
	OutcomeWrongAnswer
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeWallDeath:
		return "wall death"
	case OutcomeSelfDeath:
		return "self death"
	case OutcomeWrongAnswer:
		return "wrong answer"
	case OutcomeBoardFull:
		return "board full"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Terminal reports whether the outcome ended the run
func (o Outcome) Terminal() bool {
	return o >= OutcomeWallDeath
}

// Config holds the menu choices; they survive across runs
type Config struct {
	Operation  types.Operation
	Difficulty types.Difficulty
	ColorMode  types.ColorMode
}

// DefaultConfig is addition at level 1 with distinct colors
func DefaultConfig() Config {
	return Config{
		Operation:  types.Addition,
		Difficulty: types.Level1,
		ColorMode:  types.DistinctColors,
	}
}

// Game owns every piece of game state. It is not safe for concurrent use;
// frontends call Step, Tick and Render from a single goroutine.
type Game struct {
	state         State
	config        Config
	defaults      Config
	window        types.Size
	layout        types.Layout
	snake         *entity.Snake
	expression    entity.Expression
	field         []entity.FieldNumber
	score         int
	finalScore    int
	lastCollision types.CollisionType

	expressions *manager.ExpressionManager
	fields      *manager.FieldManager
	collisions  *manager.CollisionManager
	session     *manager.SessionManager
}

// NewGame creates a game on the menu screen. rng feeds both the expression
// and the field generators.
func NewGame(cfg Config, window types.Size, rng types.Rand) *Game {
	layout := types.LayoutFor(cfg.Difficulty, window)
	g := &Game{
		state:       StateMenu,
		config:      cfg,
		defaults:    cfg,
		window:      window,
		layout:      layout,
		snake:       entity.NewSnake(layout.Grid.Center()),
		expressions: manager.NewExpressionManager(rng),
		fields:      manager.NewFieldManager(rng),
		collisions:  manager.NewCollisionManager(layout.Grid),
		session:     manager.NewSessionManager(),
	}
	return g
}

// Step applies one input event. The only error is a field that cannot be
// placed when a run starts; the game then stays on the menu.
func (g *Game) Step(ev Event) error {
	if ev.Kind == EventReload {
		g.reload()
		return nil
	}

	switch g.state {
	case StateMenu:
		return g.stepMenu(ev)
	case StatePlaying:
		g.stepPlaying(ev)
	case StateGameOver:
		g.state = StateMenu
	}
	return nil
}

func (g *Game) stepMenu(ev Event) error {
	switch ev.Kind {
	case EventSelectOperation:
		if ev.Operation.Valid() {
			g.config.Operation = ev.Operation
		}
	case EventSelectDifficulty:
		if ev.Difficulty.Valid() && ev.Difficulty != g.config.Difficulty {
			g.config.Difficulty = ev.Difficulty
			g.relayout()
		}
	case EventToggleColor:
		g.config.ColorMode = g.config.ColorMode.Toggle()
	case EventStart:
		return g.start()
	}
	return nil
}

func (g *Game) stepPlaying(ev Event) {
	switch ev.Kind {
	case EventTurn:
		g.snake.SetDirection(ev.Direction)
	case EventCancel:
		glog.V(1).Infof("run %s abandoned at score %d", g.session.RunID(), g.score)
		g.state = StateMenu
	}
}

func (g *Game) relayout() {
	g.layout = types.LayoutFor(g.config.Difficulty, g.window)
	g.collisions.SetGrid(g.layout.Grid)
	g.snake = entity.NewSnake(g.layout.Grid.Center())
}

func (g *Game) reload() {
	g.config = g.defaults
	g.relayout()
	g.state = StateMenu
	g.score = 0
	g.finalScore = 0
	g.field = nil
	g.lastCollision = types.NoCollision
	g.expression = entity.Expression{}
}

func (g *Game) start() error {
	snake := entity.NewSnake(g.layout.Grid.Center())
	expression := g.expressions.Generate(g.config.Difficulty, g.config.Operation)
	field, err := g.fields.Populate(g.layout.Grid, expression.Answer, snake)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	g.snake = snake
	g.expression = expression
	g.field = field
	g.score = 0
	g.lastCollision = types.NoCollision
	g.state = StatePlaying

	runID := g.session.BeginRun()
	glog.Infof("run %s started: %s, %s, grid %dx%d",
		runID, g.config.Operation, g.config.Difficulty, g.layout.Grid.Width, g.layout.Grid.Height)
	return nil
}

// Tick advances the snake one cell. Checks run wall, then self, then field.
func (g *Game) Tick() Outcome {
	if g.state != StatePlaying {
		return OutcomeIdle
	}

	newHead := g.snake.NextHead()
	switch g.collisions.CheckCollision(newHead, g.snake) {
	case types.WallCollision:
		return g.finish(types.WallCollision, OutcomeWallDeath)
	case types.SelfCollision:
		return g.finish(types.SelfCollision, OutcomeSelfDeath)
	}

	g.snake.Move(newHead)

	number, hit := g.collisions.CheckFieldCollision(newHead, g.field)
	if !hit {
		g.snake.RemoveTail()
		if glog.V(2) {
			glog.Infof("head %v, length %d", newHead, g.snake.Len())
		}
		return OutcomeMoved
	}
	if !number.Correct {
		return g.finish(types.WrongAnswerCollision, OutcomeWrongAnswer)
	}

	g.score += types.PointsPerAnswer
	if err := g.nextQuestion(); err != nil {
		glog.Warningf("run %s: %v", g.session.RunID(), err)
		return g.finish(types.BoardFull, OutcomeBoardFull)
	}
	glog.V(1).Infof("correct answer %d, score %d, next %q", number.Value, g.score, g.expression.String())
	return OutcomeGrew
}

func (g *Game) nextQuestion() error {
	expression := g.expressions.Generate(g.config.Difficulty, g.config.Operation)
	field, err := g.fields.Populate(g.layout.Grid, expression.Answer, g.snake)
	if err != nil {
		return err
	}
	g.expression = expression
	g.field = field
	return nil
}

func (g *Game) finish(cause types.CollisionType, outcome Outcome) Outcome {
	g.state = StateGameOver
	g.finalScore = g.score
	g.lastCollision = cause
	g.session.EndRun(g.score)
	glog.Infof("run %s over (%s): score %d, best %d",
		g.session.RunID(), cause, g.finalScore, g.session.GetHighScore())
	return outcome
}

func (g *Game) State() State                       { return g.state }
func (g *Game) Config() Config                     { return g.config }
func (g *Game) Layout() types.Layout               { return g.layout }
func (g *Game) Grid() types.Grid                   { return g.layout.Grid }
func (g *Game) Window() types.Size                 { return g.window }
func (g *Game) Score() int                         { return g.score }
func (g *Game) FinalScore() int                    { return g.finalScore }
func (g *Game) HighScore() int                     { return g.session.GetHighScore() }
func (g *Game) GamesPlayed() int                   { return g.session.GamesPlayed() }
func (g *Game) LastCollision() types.CollisionType { return g.lastCollision }
func (g *Game) Expression() entity.Expression      { return g.expression }
func (g *Game) ExpressionText() string             { return g.expression.String() }

// Snake returns a copy of the body, head first
func (g *Game) Snake() []types.Point {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return body
}

func (g *Game) Direction() entity.Direction {
	return g.snake.Direction
}

// Field returns a copy of the answer cells
func (g *Game) Field() []entity.FieldNumber {
	field := make([]entity.FieldNumber, len(g.field))
	copy(field, g.field)
	return field
}
