package chatapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"bitbucket.org/sotavant/chat-room-client/internal/logger"
	"bitbucket.org/sotavant/chat-room-client/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// requestTimeout ограничивает каждый запрос к серверу; зависший запрос
// задержит один цикл опроса, следующий тик сработает независимо.
const requestTimeout = 10 * time.Second

type Client interface {
	FetchMessages(ctx context.Context, roomID string) (*models.RoomMessages, error)
	SendMessage(ctx context.Context, roomID, body string) (int64, error)
	EditMessage(ctx context.Context, roomID string, messageID int64, body string) error
	DeleteMessage(ctx context.Context, roomID string, messageID int64) error
	ListRooms(ctx context.Context) ([]models.RoomSummary, error)
	CreateRoom(ctx context.Context, name string) (string, error)
	SendPrivateMessage(ctx context.Context, recipient, body string) error
	FetchPrivateMessages(ctx context.Context) ([]models.PrivateMessage, error)
}

// HTTPClient talks to the chat server API. It keeps no state beyond the
// transport: every call maps 1:1 to a remote endpoint and reports failures
// through the error taxonomy in errors.go. Retry policy belongs to callers.
type HTTPClient struct {
	rc *resty.Client
}

// NewHTTPClient creates a client for the server at baseURL. The nickname
// identifies the sender to the server in place of a login session; the
// generated client id lets server logs correlate one client's polls.
func NewHTTPClient(baseURL, nickname string) *HTTPClient {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Client-Id", uuid.NewString()).
		SetHeader("X-Nickname", nickname)

	rc.OnAfterResponse(logger.RequestLogger())

	return &HTTPClient{rc: rc}
}

func (c *HTTPClient) FetchMessages(ctx context.Context, roomID string) (*models.RoomMessages, error) {
	const op = "fetch messages"

	resp, err := c.rc.R().SetContext(ctx).Get("/api/messages/" + url.PathEscape(roomID))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &TransportError{Op: op, Status: resp.StatusCode()}
	}

	var out models.RoomMessages
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return &out, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, roomID, body string) (int64, error) {
	out, err := c.post(ctx, "send message", "/api/send_message", models.SendMessageRequest{
		RoomID: roomID,
		Body:   body,
	})
	if err != nil {
		return 0, err
	}

	if out.Message == nil {
		return 0, nil
	}
	return out.Message.ID, nil
}

func (c *HTTPClient) EditMessage(ctx context.Context, roomID string, messageID int64, body string) error {
	_, err := c.post(ctx, "edit message", "/api/edit_message", models.EditMessageRequest{
		RoomID:    roomID,
		MessageID: messageID,
		Body:      body,
	})
	return err
}

func (c *HTTPClient) DeleteMessage(ctx context.Context, roomID string, messageID int64) error {
	_, err := c.post(ctx, "delete message", "/api/delete_message", models.DeleteMessageRequest{
		RoomID:    roomID,
		MessageID: messageID,
	})
	return err
}

func (c *HTTPClient) ListRooms(ctx context.Context) ([]models.RoomSummary, error) {
	const op = "list rooms"

	resp, err := c.rc.R().SetContext(ctx).Get("/api/rooms")
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &TransportError{Op: op, Status: resp.StatusCode()}
	}

	var out models.RoomsResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return out.Rooms, nil
}

func (c *HTTPClient) CreateRoom(ctx context.Context, name string) (string, error) {
	out, err := c.post(ctx, "create room", "/api/create_room", models.CreateRoomRequest{
		RoomName: name,
	})
	if err != nil {
		return "", err
	}
	return out.RoomID, nil
}

func (c *HTTPClient) SendPrivateMessage(ctx context.Context, recipient, body string) error {
	_, err := c.post(ctx, "send private message", "/api/send_private_message", models.PrivateMessageRequest{
		Recipient: recipient,
		Body:      body,
	})
	return err
}

func (c *HTTPClient) FetchPrivateMessages(ctx context.Context) ([]models.PrivateMessage, error) {
	const op = "fetch private messages"

	resp, err := c.rc.R().SetContext(ctx).Get("/api/private_messages")
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &TransportError{Op: op, Status: resp.StatusCode()}
	}

	var out models.PrivateMessagesResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return out.Messages, nil
}

// post выполняет мутирующий запрос. Сервер может вернуть бизнес-отказ как
// с неуспешным статусом, так и со статусом 200 и success=false, поэтому
// сначала разбираем тело и только потом смотрим на статус.
func (c *HTTPClient) post(ctx context.Context, op, path string, body interface{}) (*models.APIResponse, error) {
	resp, err := c.rc.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	var out models.APIResponse
	if uerr := json.Unmarshal(resp.Body(), &out); uerr != nil {
		if !resp.IsSuccess() {
			return nil, &TransportError{Op: op, Status: resp.StatusCode()}
		}
		return nil, &TransportError{Op: op, Err: uerr}
	}

	if out.Error != "" {
		return nil, &RejectedError{Op: op, Reason: out.Error}
	}
	if !resp.IsSuccess() {
		return nil, &TransportError{Op: op, Status: resp.StatusCode()}
	}
	if !out.Success {
		return nil, &RejectedError{Op: op, Reason: "request rejected by server"}
	}

	return &out, nil
}
