package models

// Message описывает одно сообщение комнаты в том виде, в котором его
// возвращает сервер. Внутри комнаты id уникален и строго возрастает;
// клиент никогда не переупорядочивает сообщения по другим ключам.
type Message struct {
	ID            int64  `json:"id"`
	RoomID        string `json:"room_id,omitempty"`
	Nickname      string `json:"nickname"`
	Body          string `json:"message"`
	FormattedTime string `json:"formatted_time"`
	Private       bool   `json:"is_private,omitempty"`
	Edited        bool   `json:"edited"`
}

// RoomMessages — ответ сервера на запрос сообщений комнаты.
type RoomMessages struct {
	RoomName string    `json:"room_name"`
	Messages []Message `json:"messages"`
}

// RoomSummary используется только для списка комнат.
type RoomSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MessageCount int    `json:"message_count"`
}

type RoomsResponse struct {
	Rooms []RoomSummary `json:"rooms"`
}

// PrivateMessage — личное сообщение из входящих; сервер отдаёт и
// отправленные, и полученные текущим пользователем.
type PrivateMessage struct {
	ID            int64  `json:"id"`
	From          string `json:"from_nickname"`
	To            string `json:"to_nickname"`
	Body          string `json:"message"`
	FormattedTime string `json:"formatted_time"`
}

type PrivateMessagesResponse struct {
	Messages []PrivateMessage `json:"messages"`
}

type SendMessageRequest struct {
	RoomID string `json:"room_id"`
	Body   string `json:"message"`
}

type EditMessageRequest struct {
	RoomID    string `json:"room_id"`
	MessageID int64  `json:"message_id"`
	Body      string `json:"message"`
}

type DeleteMessageRequest struct {
	RoomID    string `json:"room_id"`
	MessageID int64  `json:"message_id"`
}

type CreateRoomRequest struct {
	RoomName string `json:"room_name"`
}

type PrivateMessageRequest struct {
	Recipient string `json:"recipient"`
	Body      string `json:"message"`
}

// APIResponse — общий ответ мутирующих запросов. Сервер сообщает о
// бизнес-ошибках полем error, транспортный статус при этом может быть
// и успешным, поэтому клиент проверяет и то и другое.
type APIResponse struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error,omitempty"`
	RoomID   string   `json:"room_id,omitempty"`
	RoomName string   `json:"room_name,omitempty"`
	Message  *Message `json:"message,omitempty"`
}
