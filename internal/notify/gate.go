package notify

import (
	"context"
	"fmt"
	"sync"

	"bitbucket.org/sotavant/chat-room-client/internal/logger"
	"bitbucket.org/sotavant/chat-room-client/internal/models"
	"go.uber.org/zap"
)

// Permission holds the process-wide notification permission. It is set once
// at startup from the platform state and changes only on an explicit
// user-initiated request.
type Permission struct {
	mu      sync.Mutex
	granted bool
}

func NewPermission(granted bool) *Permission {
	return &Permission{granted: granted}
}

func (p *Permission) Granted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.granted
}

func (p *Permission) Set(granted bool) {
	p.mu.Lock()
	p.granted = granted
	p.mu.Unlock()
}

// Notifier delivers a single user-facing alert.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Nop is used when no delivery channel is configured.
type Nop struct{}

func (Nop) Notify(context.Context, string, string) error { return nil }

// ShouldNotify решает, показывать ли уведомление: пока страница видима,
// новое сообщение и так на экране.
func ShouldNotify(granted, pageVisible bool) bool {
	return granted && !pageVisible
}

// Gate sits between detected new messages and the notifier. Rendering is
// not its concern; it only decides and emits.
type Gate struct {
	perm     *Permission
	notifier Notifier
}

func NewGate(perm *Permission, notifier Notifier) *Gate {
	if notifier == nil {
		notifier = Nop{}
	}
	return &Gate{perm: perm, notifier: notifier}
}

// Deliver emits an alert for msg if the gate predicate allows it. Called
// once per detected new message, in detection order.
func (g *Gate) Deliver(ctx context.Context, roomName string, msg models.Message, pageVisible bool) {
	if !ShouldNotify(g.perm.Granted(), pageVisible) {
		return
	}

	title := fmt.Sprintf("%s in %s", msg.Nickname, roomName)
	if err := g.notifier.Notify(ctx, title, msg.Body); err != nil {
		logger.Log.Debug("cannot deliver notification", zap.Error(err))
	}
}
