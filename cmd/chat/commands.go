package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bitbucket.org/sotavant/chat-room-client/internal/chatapi"
	"bitbucket.org/sotavant/chat-room-client/internal/notify"
	"bitbucket.org/sotavant/chat-room-client/internal/session"
)

const helpText = `commands:
  /rooms                 list rooms
  /join <room>           switch to a room
  /create <name>         create a room and join it
  /edit <id> <text>      edit your message
  /delete <id>           delete your message (asks for confirmation)
  /msg <user> <text>     send a private message
  /inbox                 show your private messages
  /notify on|off         grant or revoke notifications
  /hide, /show           simulate going to background and back
  /quit                  exit
anything else is sent to the current room`

func commandLoop(sess *session.Session, coord *session.Coordinator, client chatapi.Client, perm *notify.Permission) error {
	sc := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			roomID, _ := sess.CurrentRoom()
			if _, err := coord.Send(ctx, roomID, line); err != nil {
				// текст остаётся у пользователя, можно повторить
				fmt.Printf("! send failed: %v\n", err)
			}
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "/quit":
			sess.Stop()
			return nil

		case "/help":
			fmt.Println(helpText)

		case "/rooms":
			rooms, err := client.ListRooms(ctx)
			if err != nil {
				fmt.Printf("! %v\n", err)
				continue
			}
			for _, r := range rooms {
				fmt.Printf("  %s (%s, %d messages)\n", r.ID, r.Name, r.MessageCount)
			}

		case "/join":
			if rest == "" {
				fmt.Println("! usage: /join <room>")
				continue
			}
			sess.SwitchRoom(rest)

		case "/create":
			roomID, err := coord.CreateRoom(ctx, rest)
			if err != nil {
				fmt.Printf("! %v\n", err)
				continue
			}
			sess.SwitchRoom(roomID)

		case "/edit":
			idArg, text, _ := strings.Cut(rest, " ")
			id, err := strconv.ParseInt(idArg, 10, 64)
			if err != nil {
				fmt.Println("! usage: /edit <id> <text>")
				continue
			}
			roomID, _ := sess.CurrentRoom()
			coord.BeginEdit(roomID, id)
			if err := coord.CommitEdit(ctx, text); err != nil {
				fmt.Printf("! edit failed: %v\n", err)
				coord.CancelEdit()
			}

		case "/delete":
			id, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				fmt.Println("! usage: /delete <id>")
				continue
			}
			if !confirm(sc, fmt.Sprintf("delete message #%d? [y/N] ", id)) {
				continue
			}
			roomID, _ := sess.CurrentRoom()
			if err := coord.Delete(ctx, roomID, id); err != nil {
				fmt.Printf("! delete failed: %v\n", err)
			}

		case "/msg":
			user, text, _ := strings.Cut(rest, " ")
			if user == "" || strings.TrimSpace(text) == "" {
				fmt.Println("! usage: /msg <user> <text>")
				continue
			}
			if err := coord.SendPrivate(ctx, user, text); err != nil {
				fmt.Printf("! private message failed: %v\n", err)
			}

		case "/inbox":
			pms, err := client.FetchPrivateMessages(ctx)
			if err != nil {
				fmt.Printf("! %v\n", err)
				continue
			}
			if len(pms) == 0 {
				fmt.Println("  no private messages")
				continue
			}
			for _, pm := range pms {
				fmt.Printf("  [%s] %s -> %s: %s\n", pm.FormattedTime, pm.From, pm.To, pm.Body)
			}

		case "/notify":
			perm.Set(rest == "on")

		case "/hide":
			sess.Suspend()

		case "/show":
			sess.Resume()

		default:
			fmt.Printf("! unknown command %s, try /help\n", cmd)
		}
	}

	return sc.Err()
}

func confirm(sc *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}
