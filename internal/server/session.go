package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nicollemakh/BS-Card-Game/internal/bots"
	"github.com/nicollemakh/BS-Card-Game/internal/engine"
)

// Options configures a session. Zero values fall back to the classic
// four-seat table with one bot and a one-second thinking delay.
type Options struct {
	Rules    engine.Rules
	BotSeats []int
	AIDelay  time.Duration
	BotCfg   bots.Config
	Seed     int64 // default seed when start_game carries none; 0 uses the clock
}

// Session owns one game and one WebSocket connection. Every state mutation
// happens under the mutex; bot turns arrive as deferred tasks stamped with
// the epoch and seat they were scheduled for, so a reset cannot receive
// stale mutations.
type Session struct {
	mu         sync.Mutex
	id         uuid.UUID
	log        *zap.Logger
	opts       Options
	state      engine.GameState
	started    bool
	epoch      int
	actionIds  map[string]bool
	conn       *websocket.Conn
	botPlayers map[int]bots.Bot
}

func NewSession(log *zap.Logger, opts Options) *Session {
	if opts.Rules.Players == 0 {
		opts.Rules = engine.ClassicPreset()
	}
	if opts.BotSeats == nil {
		opts.BotSeats = []int{1}
	}
	if opts.AIDelay == 0 {
		opts.AIDelay = time.Second
	}
	if opts.BotCfg == (bots.Config{}) {
		opts.BotCfg = bots.DefaultConfig()
	}
	return &Session{
		id:         uuid.New(),
		log:        log,
		opts:       opts,
		actionIds:  map[string]bool{},
		botPlayers: map[int]bots.Bot{},
	}
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.log.Info("client connected", zap.String("session", s.id.String()))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.log.Info("client disconnected", zap.Error(err))
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type     string     `json:"type"`
	ActionId string     `json:"actionId,omitempty"`
	Intent   *IntentDTO `json:"intent,omitempty"`
	Seed     int64      `json:"seed,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session":
		s.sendState(nil)
	case "start_game":
		s.startGame(msg.Seed)
	case "request_state":
		s.sendState(nil)
	case "player_intent":
		s.applyIntent(msg.ActionId, msg.Intent)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seed == 0 {
		seed = s.opts.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.epoch++
	s.state = engine.NewGame(s.opts.Rules, seed)
	engine.Deal(&s.state)
	s.started = true
	s.actionIds = map[string]bool{}
	s.botPlayers = map[int]bots.Bot{}
	for _, seat := range s.opts.BotSeats {
		s.botPlayers[seat] = bots.NewScripted(seed+int64(seat)+1, s.opts.BotCfg)
	}
	s.log.Info("game started",
		zap.String("session", s.id.String()),
		zap.Int64("seed", seed),
		zap.Int("epoch", s.epoch),
		zap.Ints("botSeats", s.opts.BotSeats))

	s.sendStateLocked([]Event{{Type: "cards_dealt", Data: DealPayload{
		Players:  s.opts.Rules.Players,
		HandSize: s.state.Players[0].Hand.Size(),
		Undealt:  s.state.Deck.Remaining(),
	}}})
	s.scheduleBotLocked()
}

func (s *Session) applyIntent(actionId string, dto *IntentDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendErrorLocked("not_started", "game not started")
		return
	}
	if actionId == "" {
		s.sendErrorLocked("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	intent, err := dto.ToEngine()
	if err != nil {
		s.sendErrorLocked("bad_intent", err.Error())
		return
	}

	prev := s.state
	if err := s.applyEngine(intent); err != nil {
		s.log.Info("intent rejected",
			zap.String("intent", intent.Type.String()),
			zap.Int("player", intent.Player),
			zap.Error(err))
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	s.sendStateLocked(buildEvents(prev, s.state, intent))
	s.scheduleBotLocked()
}

func (s *Session) applyEngine(intent Intent) error {
	switch intent.Type {
	case IntentPlay:
		return engine.Play(&s.state, intent.Player, intent.Indices, intent.Declared)
	case IntentCallBS:
		return engine.CallBS(&s.state, intent.Player)
	case IntentPass:
		return engine.Pass(&s.state)
	default:
		return engine.ErrUnknownPlayer
	}
}

// scheduleBotLocked defers a bot decision for the current seat. The epoch
// and seat are captured now; the fired task re-checks both under the lock,
// so a reset or an intervening human intent turns it into a no-op.
func (s *Session) scheduleBotLocked() {
	player, ok := engine.CurrentPlayer(s.state)
	if !ok {
		return
	}
	if _, isBot := s.botPlayers[player]; !isBot {
		return
	}
	epoch := s.epoch
	seat := player
	time.AfterFunc(s.opts.AIDelay, func() {
		s.runBot(epoch, seat)
	})
}

func (s *Session) runBot(epoch, seat int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch || !s.started {
		return
	}
	player, ok := engine.CurrentPlayer(s.state)
	if !ok || player != seat {
		return
	}
	bot := s.botPlayers[seat]
	if bot == nil {
		return
	}

	prev := s.state
	if bot.WantsChallenge(s.state, seat) {
		if err := engine.CallBS(&s.state, seat); err != nil {
			s.log.Warn("bot challenge failed", zap.Int("seat", seat), zap.Error(err))
			return
		}
		s.sendStateLocked(buildEvents(prev, s.state, Intent{Type: IntentCallBS, Player: seat}))
		s.scheduleBotLocked()
		return
	}

	indices, declared := bot.ChoosePlay(s.state, seat)
	intent := Intent{Type: IntentPlay, Player: seat, Indices: indices, Declared: declared}
	if err := engine.Play(&s.state, seat, indices, declared); err != nil {
		s.log.Warn("bot play failed", zap.Int("seat", seat), zap.Error(err))
		return
	}
	s.sendStateLocked(buildEvents(prev, s.state, intent))
	s.scheduleBotLocked()
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	if !s.started {
		s.state = engine.NewGame(s.opts.Rules, 0)
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.state, s.id.String(), s.botPlayers),
		Events: events,
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn("state write failed", zap.Error(err))
	}
}

// sendError takes the lock before writing: the connection has exactly one
// writer at a time, and deferred bot tasks write under the mutex too.
func (s *Session) sendError(code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendErrorLocked(code, message)
}

func (s *Session) sendErrorLocked(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn("error write failed", zap.Error(err))
	}
}
