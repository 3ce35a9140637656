package notifyclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aswaq/aswaq-notifications/domain"
)

func TestBuildNotificationPayload(t *testing.T) {
	t.Run("always has content fields", func(t *testing.T) {
		for _, recipients := range []domain.Recipients{
			nil,
			domain.Tokens{"t1"},
			domain.PlatformTokens{IOS: []string{"a"}},
			domain.Group("vip"),
		} {
			p, err := buildNotificationPayload(domain.Notification{MessageData: "{}", Recipients: recipients}, fixedNow)
			require.NoError(t, err)
			data, err := json.Marshal(p)
			require.NoError(t, err)
			var fields map[string]any
			require.NoError(t, json.Unmarshal(data, &fields))
			for _, key := range []string{"sendDate", "messageData", "title", "body"} {
				assert.Contains(t, fields, key, "%T", recipients)
			}
			_, hasTokens := fields["userTokens"]
			_, hasGroup := fields["userTokenGroup"]
			assert.False(t, hasTokens && hasGroup)
		}
	})
	t.Run("empty legacy tokens are omitted", func(t *testing.T) {
		p, err := buildNotificationPayload(domain.Notification{MessageData: "{}", Recipients: domain.Tokens{}}, fixedNow)
		require.NoError(t, err)
		assert.Nil(t, p.UserTokens)
	})
	t.Run("send date format", func(t *testing.T) {
		p, err := buildNotificationPayload(domain.Notification{MessageData: "{}"}, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, "2024-05-06T07:08:09.000123Z", p.SendDate)
	})
}

func TestGroupTokensPath(t *testing.T) {
	path, err := groupTokensPath(addToGroupPath, "new users")
	require.NoError(t, err)
	assert.Equal(t, "notifications/api/user-token-group/new%20users/add_to_group/", path)

	_, err = groupTokensPath(removeFromGroupPath, "")
	assert.ErrorIs(t, err, ErrEmptyGroupName)

	_, err = groupTokensPath(removeFromGroupPath, "..")
	assert.ErrorIs(t, err, ErrInvalidPathSegment)
}

func TestCancelNotificationPath(t *testing.T) {
	path, err := cancelNotificationPath("ref/42")
	require.NoError(t, err)
	assert.Equal(t, "notifications/api/notifications-requests/ref%2F42/cancel_notification/", path)

	_, err = cancelNotificationPath("")
	assert.ErrorIs(t, err, ErrEmptyReferenceId)

	_, err = cancelNotificationPath("..")
	assert.ErrorIs(t, err, ErrInvalidPathSegment)
}
