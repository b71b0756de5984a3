package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTelegramNotifierValidation(t *testing.T) {
	_, err := NewTelegramNotifier(TelegramConfig{Token: "", ChatID: "42"})
	assert.Error(t, err)

	_, err = NewTelegramNotifier(TelegramConfig{Token: "abc", ChatID: "  "})
	assert.Error(t, err)
}

func TestTelegramNotify(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotPath = r.URL.Path
		gotForm = map[string]string{
			"chat_id":    r.PostFormValue("chat_id"),
			"text":       r.PostFormValue("text"),
			"parse_mode": r.PostFormValue("parse_mode"),
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	n, err := NewTelegramNotifier(TelegramConfig{Token: "secret", ChatID: "42", BaseURL: srv.URL})
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), "bob in General", "hello"))

	assert.Equal(t, "/botsecret/sendMessage", gotPath)
	assert.Equal(t, "42", gotForm["chat_id"])
	assert.Equal(t, "<b>bob in General</b>\nhello", gotForm["text"])
	assert.Equal(t, "HTML", gotForm["parse_mode"])
}

func TestTelegramNotifyBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	n, err := NewTelegramNotifier(TelegramConfig{Token: "bad", ChatID: "42", BaseURL: srv.URL})
	require.NoError(t, err)

	assert.Error(t, n.Notify(context.Background(), "t", "b"))
}
