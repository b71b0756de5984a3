package session

import (
	"context"
	"strings"
	"sync"

	"bitbucket.org/sotavant/chat-room-client/internal/chatapi"
	"bitbucket.org/sotavant/chat-room-client/internal/logger"
	"bitbucket.org/sotavant/chat-room-client/internal/models"
	"go.uber.org/zap"
)

// Refresher triggers an out-of-band reconciliation cycle after a mutation.
type Refresher interface {
	Refresh()
}

// Coordinator sequences message mutations against the server of record.
// It never patches the local view itself: after every successful mutation
// it asks the Refresher to pull the authoritative state, so the view stays
// derivable from server truth alone. Authorization is advisory here
// (CanModify gates the UI affordances), the server remains the authority.
type Coordinator struct {
	client    chatapi.Client
	refresher Refresher
	nickname  string

	mu          sync.Mutex
	editingID   int64
	editingRoom string
	editing     bool
}

func NewCoordinator(client chatapi.Client, refresher Refresher, nickname string) *Coordinator {
	return &Coordinator{
		client:    client,
		refresher: refresher,
		nickname:  nickname,
	}
}

// BeginEdit marks messageID in roomID as the message being edited.
// Presenting the edit surface is the caller's concern.
func (c *Coordinator) BeginEdit(roomID string, messageID int64) {
	c.mu.Lock()
	c.editingID = messageID
	c.editingRoom = roomID
	c.editing = true
	c.mu.Unlock()
}

// CancelEdit clears the editing state without contacting the server.
func (c *Coordinator) CancelEdit() {
	c.mu.Lock()
	c.editing = false
	c.mu.Unlock()
}

// Editing returns the message id currently being edited, if any.
func (c *Coordinator) Editing() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID, c.editing
}

// CommitEdit sends the new body for the message being edited. On success
// the editing state is cleared and a refresh pulls the post-edit snapshot.
// On rejection the editing state stays set so the user can retry or cancel.
func (c *Coordinator) CommitEdit(ctx context.Context, newBody string) error {
	body := strings.TrimSpace(newBody)
	if body == "" {
		return &chatapi.ValidationError{Reason: "message text cannot be empty"}
	}

	c.mu.Lock()
	if !c.editing {
		c.mu.Unlock()
		return &chatapi.ValidationError{Reason: "no message is being edited"}
	}
	roomID, messageID := c.editingRoom, c.editingID
	c.mu.Unlock()

	if err := c.client.EditMessage(ctx, roomID, messageID, body); err != nil {
		logger.Log.Debug("edit rejected", zap.Int64("message", messageID), zap.Error(err))
		return err
	}

	c.CancelEdit()
	c.refresher.Refresh()
	return nil
}

// Delete removes a message. The caller must have confirmed the action with
// the user already; the message is not removed from the view before the
// server confirms.
func (c *Coordinator) Delete(ctx context.Context, roomID string, messageID int64) error {
	if err := c.client.DeleteMessage(ctx, roomID, messageID); err != nil {
		logger.Log.Debug("delete rejected", zap.Int64("message", messageID), zap.Error(err))
		return err
	}

	c.refresher.Refresh()
	return nil
}

// Send posts a new message to roomID. On failure the caller keeps the
// typed text; nothing is consumed until the server accepts.
func (c *Coordinator) Send(ctx context.Context, roomID, body string) (int64, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, &chatapi.ValidationError{Reason: "message text cannot be empty"}
	}

	id, err := c.client.SendMessage(ctx, roomID, body)
	if err != nil {
		return 0, err
	}

	c.refresher.Refresh()
	return id, nil
}

// SendPrivate delivers a direct message. A self-addressed message is
// invalid and never reaches the network.
func (c *Coordinator) SendPrivate(ctx context.Context, recipient, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return &chatapi.ValidationError{Reason: "message text cannot be empty"}
	}
	if recipient == c.nickname {
		return &chatapi.ValidationError{Reason: "cannot send a private message to yourself"}
	}

	return c.client.SendPrivateMessage(ctx, recipient, body)
}

// CreateRoom creates a room and returns its id.
func (c *Coordinator) CreateRoom(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &chatapi.ValidationError{Reason: "room name cannot be empty"}
	}

	return c.client.CreateRoom(ctx, name)
}

// CanModify reports whether edit/delete affordances should be offered for
// msg. Advisory only.
func (c *Coordinator) CanModify(msg models.Message) bool {
	return msg.Nickname == c.nickname
}
