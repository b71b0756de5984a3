package session

import (
	"context"
	"sync"
	"time"

	"bitbucket.org/sotavant/chat-room-client/internal/chatapi"
	"bitbucket.org/sotavant/chat-room-client/internal/logger"
	"bitbucket.org/sotavant/chat-room-client/internal/models"
	"bitbucket.org/sotavant/chat-room-client/internal/notify"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// DefaultPollInterval is how often the active room is refreshed.
const DefaultPollInterval = 2500 * time.Millisecond

// Listener receives the reconciled view after each successful refresh and
// non-blocking notices about transient failures. It is the only way the
// session talks to a rendering layer.
type Listener interface {
	OnSnapshot(roomName string, messages []models.Message)
	OnTransientError(err error)
}

// Config собирает зависимости сессии; Interval и Clock необязательны.
type Config struct {
	Client   chatapi.Client
	Gate     *notify.Gate
	Listener Listener
	Nickname string
	Interval time.Duration
	Clock    clock.Clock
}

// Session owns the active room, its poll lifecycle and the last-seen
// snapshot. At most one poll ticker is live at any moment; switching rooms
// cancels the old one before installing the next within a single locked
// section. A fetch is tagged with the room and generation it was issued
// for, and its completion is dropped if the tag no longer matches -
// in-flight requests cannot be cancelled, only ignored.
type Session struct {
	client   chatapi.Client
	gate     *notify.Gate
	listener Listener
	nickname string
	interval time.Duration
	clock    clock.Clock

	mu         sync.Mutex
	roomID     string
	roomName   string
	snapshot   []models.Message
	lastCount  int
	generation uint64
	visible    bool
	stopPoll   chan struct{}
	liveTimers int
}

func New(cfg Config) *Session {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	cl := cfg.Clock
	if cl == nil {
		cl = clock.New()
	}

	return &Session{
		client:   cfg.Client,
		gate:     cfg.Gate,
		listener: cfg.Listener,
		nickname: cfg.Nickname,
		interval: interval,
		clock:    cl,
		visible:  true,
	}
}

// SwitchRoom makes roomID the active room: the previous poll is cancelled,
// the held snapshot is reset, one refresh runs immediately and a new
// recurring poll is installed. A switch to the already active room is a
// no-op.
func (s *Session) SwitchRoom(roomID string) {
	s.mu.Lock()
	if roomID == s.roomID {
		s.mu.Unlock()
		return
	}

	s.cancelPollLocked()
	s.roomID = roomID
	s.roomName = ""
	s.snapshot = nil
	s.lastCount = 0
	s.generation++
	gen := s.generation
	s.installPollLocked()
	s.mu.Unlock()

	logger.Log.Debug("switched room", zap.String("room", roomID))
	s.refresh(roomID, gen)
}

// Refresh runs one fetch-and-reconcile cycle for the active room. Safe to
// call out of band, e.g. after a mutation.
func (s *Session) Refresh() {
	s.mu.Lock()
	roomID := s.roomID
	gen := s.generation
	s.mu.Unlock()

	if roomID == "" {
		return
	}
	s.refresh(roomID, gen)
}

// Stop cancels the poll if one is installed. Idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	s.cancelPollLocked()
	s.mu.Unlock()
}

// Suspend is the page-hidden transition: polling stops and notifications
// become eligible (the view no longer surfaces new messages).
func (s *Session) Suspend() {
	s.mu.Lock()
	s.visible = false
	s.cancelPollLocked()
	s.mu.Unlock()
}

// Resume is the page-visible transition: a full cancel-reinstall-refresh
// restart of the current room, so no stale gap is shown on return.
func (s *Session) Resume() {
	s.mu.Lock()
	s.visible = true
	roomID := s.roomID
	if roomID == "" {
		s.mu.Unlock()
		return
	}

	s.cancelPollLocked()
	s.generation++
	gen := s.generation
	s.installPollLocked()
	s.mu.Unlock()

	s.refresh(roomID, gen)
}

// CurrentRoom returns the active room id and its last known display name.
func (s *Session) CurrentRoom() (id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomID, s.roomName
}

// Snapshot returns a copy of the held message sequence.
func (s *Session) Snapshot() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// LiveTimers reports how many poll tickers are installed; 0 or 1 always.
func (s *Session) LiveTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveTimers
}

func (s *Session) installPollLocked() {
	stop := make(chan struct{})
	s.stopPoll = stop
	s.liveTimers++

	go func() {
		t := s.clock.Ticker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.Refresh()
			case <-stop:
				return
			}
		}
	}()
}

func (s *Session) cancelPollLocked() {
	if s.stopPoll == nil {
		return
	}
	close(s.stopPoll)
	s.stopPoll = nil
	s.liveTimers--
}

// refresh выполняет один цикл: запрос, сверка со старым снимком, рассылка
// уведомлений и публикация нового снимка. Ответ, пришедший после смены
// комнаты, молча отбрасывается.
func (s *Session) refresh(roomID string, gen uint64) {
	res, err := s.client.FetchMessages(context.Background(), roomID)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		logger.Log.Debug("discarding stale refresh", zap.String("room", roomID))
		return
	}

	if err != nil {
		s.mu.Unlock()
		logger.Log.Debug("refresh failed", zap.String("room", roomID), zap.Error(err))
		s.listener.OnTransientError(err)
		return
	}

	d := Detect(s.lastCount, res.Messages)
	s.snapshot = d.Snapshot
	s.lastCount = len(d.Snapshot)
	s.roomName = res.RoomName
	visible := s.visible
	s.mu.Unlock()

	for _, m := range d.New {
		// свои сообщения не анонсируем
		if m.Nickname == s.nickname {
			continue
		}
		s.gate.Deliver(context.Background(), res.RoomName, m, visible)
	}

	s.listener.OnSnapshot(res.RoomName, d.Snapshot)
}
