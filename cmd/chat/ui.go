package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"bitbucket.org/sotavant/chat-room-client/internal/models"
)

// consoleUI is the thin rendering collaborator: it paints from each
// published snapshot and prints transient notices. Everything shown is
// re-derived from the snapshot it is handed; the copy of the last painted
// snapshot exists only to avoid reprinting unchanged lines each poll.
type consoleUI struct {
	nickname string
	out      io.Writer

	mu       sync.Mutex
	last     []models.Message
	lastRoom string
}

func newConsoleUI(nickname string) *consoleUI {
	return &consoleUI{nickname: nickname, out: os.Stdout}
}

func (u *consoleUI) OnSnapshot(roomName string, messages []models.Message) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// дописываем только хвост, если видимая часть не изменилась; любое
	// изменение на месте (правка, удаление) перерисовывает список целиком
	start := 0
	if roomName == u.lastRoom && len(messages) >= len(u.last) && samePrefix(u.last, messages) {
		start = len(u.last)
	} else {
		fmt.Fprintf(u.out, "--- %s ---\n", roomName)
	}

	for _, m := range messages[start:] {
		u.printMessage(m)
	}

	u.lastRoom = roomName
	u.last = messages
}

func (u *consoleUI) OnTransientError(err error) {
	fmt.Fprintf(u.out, "! %v (will retry)\n", err)
}

func (u *consoleUI) printMessage(m models.Message) {
	marker := ""
	if m.Edited {
		marker = " (edited)"
	}
	fmt.Fprintf(u.out, "[%s] #%d %s: %s%s\n", m.FormattedTime, m.ID, m.Nickname, m.Body, marker)
}

func samePrefix(prev, next []models.Message) bool {
	for i, m := range prev {
		if next[i] != m {
			return false
		}
	}
	return true
}
