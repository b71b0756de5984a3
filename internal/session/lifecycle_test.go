package session

import (
	"context"
	"errors"
	"testing"

	"bitbucket.org/sotavant/chat-room-client/internal/chatapi"
	"bitbucket.org/sotavant/chat-room-client/internal/chatapi/mock"
	"bitbucket.org/sotavant/chat-room-client/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	calls int
}

func (r *fakeRefresher) Refresh() {
	r.calls++
}

func TestCommitEditEmptyBodyNeverHitsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl) // no expectations: any call fails the test
	refresher := &fakeRefresher{}

	c := NewCoordinator(client, refresher, "alice")
	c.BeginEdit("general", 7)

	err := c.CommitEdit(context.Background(), "   \t ")

	var verr *chatapi.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, refresher.calls)

	id, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, int64(7), id)
}

func TestCommitEditWithoutBeginEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	c := NewCoordinator(client, &fakeRefresher{}, "alice")

	err := c.CommitEdit(context.Background(), "new text")

	var verr *chatapi.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestCommitEditSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	refresher := &fakeRefresher{}

	client.EXPECT().
		EditMessage(gomock.Any(), "general", int64(7), "fixed typo").
		Return(nil)

	c := NewCoordinator(client, refresher, "alice")
	c.BeginEdit("general", 7)

	require.NoError(t, c.CommitEdit(context.Background(), "  fixed typo  "))

	_, editing := c.Editing()
	assert.False(t, editing, "editing state cleared on success")
	assert.Equal(t, 1, refresher.calls, "success triggers a refresh")
}

func TestCommitEditRejectionKeepsEditingState(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	refresher := &fakeRefresher{}

	rejection := &chatapi.RejectedError{Op: "edit message", Reason: "Message not found or not authorized"}
	client.EXPECT().
		EditMessage(gomock.Any(), "general", int64(7), "hax").
		Return(rejection)

	c := NewCoordinator(client, refresher, "alice")
	c.BeginEdit("general", 7)

	err := c.CommitEdit(context.Background(), "hax")

	var rerr *chatapi.RejectedError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "Message not found or not authorized", rerr.Reason)

	id, editing := c.Editing()
	assert.True(t, editing, "user may retry or cancel")
	assert.Equal(t, int64(7), id)
	assert.Equal(t, 0, refresher.calls)
}

func TestDelete(t *testing.T) {
	t.Run("success_triggers_refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)
		refresher := &fakeRefresher{}

		client.EXPECT().
			DeleteMessage(gomock.Any(), "general", int64(9)).
			Return(nil)

		c := NewCoordinator(client, refresher, "alice")
		require.NoError(t, c.Delete(context.Background(), "general", 9))
		assert.Equal(t, 1, refresher.calls)
	})

	t.Run("rejection_surfaces_and_skips_refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)
		refresher := &fakeRefresher{}

		client.EXPECT().
			DeleteMessage(gomock.Any(), "general", int64(9)).
			Return(&chatapi.RejectedError{Op: "delete message", Reason: "not yours"})

		c := NewCoordinator(client, refresher, "alice")
		err := c.Delete(context.Background(), "general", 9)

		require.Error(t, err)
		assert.Equal(t, 0, refresher.calls, "no optimistic removal, no refresh on failure")
	})
}

func TestSend(t *testing.T) {
	t.Run("empty_body_never_hits_network", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)

		c := NewCoordinator(client, &fakeRefresher{}, "alice")
		_, err := c.Send(context.Background(), "general", "   ")

		var verr *chatapi.ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("success_returns_id_and_refreshes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)
		refresher := &fakeRefresher{}

		client.EXPECT().
			SendMessage(gomock.Any(), "general", "hello").
			Return(int64(42), nil)

		c := NewCoordinator(client, refresher, "alice")
		id, err := c.Send(context.Background(), "general", " hello ")

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, 1, refresher.calls)
	})

	t.Run("failure_skips_refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)
		refresher := &fakeRefresher{}

		client.EXPECT().
			SendMessage(gomock.Any(), "general", "hello").
			Return(int64(0), &chatapi.TransportError{Op: "send message", Status: 502})

		c := NewCoordinator(client, refresher, "alice")
		_, err := c.Send(context.Background(), "general", "hello")

		require.Error(t, err)
		assert.Equal(t, 0, refresher.calls)
	})
}

func TestSendPrivate(t *testing.T) {
	t.Run("self_recipient_rejected_locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)

		c := NewCoordinator(client, &fakeRefresher{}, "alice")
		err := c.SendPrivate(context.Background(), "alice", "hi me")

		var verr *chatapi.ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("empty_body_rejected_locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)

		c := NewCoordinator(client, &fakeRefresher{}, "alice")
		err := c.SendPrivate(context.Background(), "bob", "  ")

		var verr *chatapi.ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockClient(ctrl)

		client.EXPECT().
			SendPrivateMessage(gomock.Any(), "bob", "psst").
			Return(nil)

		c := NewCoordinator(client, &fakeRefresher{}, "alice")
		require.NoError(t, c.SendPrivate(context.Background(), "bob", "psst"))
	})
}

func TestCanModify(t *testing.T) {
	c := NewCoordinator(nil, nil, "alice")

	assert.True(t, c.CanModify(models.Message{Nickname: "alice"}))
	assert.False(t, c.CanModify(models.Message{Nickname: "bob"}))
}
