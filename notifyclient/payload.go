package notifyclient

import (
	"fmt"
	"net/url"
	"time"

	"github.com/aswaq/aswaq-notifications/domain"
)

const (
	notificationsPath   = "notifications/api/notifications-requests/"
	cancelPath          = "notifications/api/notifications-requests/%s/cancel_notification/"
	tokenGroupPath      = "notifications/api/user-token-group/"
	addToGroupPath      = "notifications/api/user-token-group/%s/add_to_group/"
	removeFromGroupPath = "notifications/api/user-token-group/%s/remove_from_group/"
)

// sendDateLayout is ISO-8601 in UTC with microseconds
const sendDateLayout = "2006-01-02T15:04:05.000000Z"

type notificationPayload struct {
	SendDate       string `json:"sendDate"`
	MessageData    string `json:"messageData"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	Image          string `json:"image,omitempty"`
	ClickAction    string `json:"clickAction,omitempty"`
	UserTokens     any    `json:"userTokens,omitempty"`
	UserTokenGroup string `json:"userTokenGroup,omitempty"`
}

type tokenGroupPayload struct {
	Name       string   `json:"name"`
	UserTokens []string `json:"userTokens"`
}

type groupTokensPayload struct {
	UserTokens []string `json:"userTokens"`
}

func buildNotificationPayload(n domain.Notification, now time.Time) (p notificationPayload, err error) {
	if n.MessageData == "" {
		return p, ErrEmptyMessageData
	}
	sendDate := n.SendDate
	if sendDate.IsZero() {
		sendDate = now
	}
	p = notificationPayload{
		SendDate:    sendDate.UTC().Format(sendDateLayout),
		MessageData: n.MessageData,
		Title:       n.Title,
		Body:        n.Body,
		Image:       n.Image,
		ClickAction: n.ClickAction,
	}
	switch r := n.Recipients.(type) {
	case nil:
	case domain.Tokens:
		if len(r) > 0 {
			p.UserTokens = []string(r)
		}
	case domain.PlatformTokens:
		byPlatform := r.ByPlatform()
		if len(byPlatform) == 0 {
			break
		}
		userTokens := make(map[string][]string, len(byPlatform))
		for platform, tokens := range byPlatform {
			userTokens[platform.Key()] = tokens
		}
		p.UserTokens = userTokens
	case domain.Group:
		if r == "" {
			return p, ErrEmptyGroupName
		}
		p.UserTokenGroup = string(r)
	default:
		return p, fmt.Errorf("%w: %T", ErrUnknownRecipients, r)
	}
	return p, nil
}

func newTokenGroupPayload(group domain.TokenGroup) (tokenGroupPayload, error) {
	if group.Name == "" {
		return tokenGroupPayload{}, ErrEmptyGroupName
	}
	return tokenGroupPayload{
		Name:       group.Name,
		UserTokens: nonNilTokens(group.Tokens),
	}, nil
}

func groupTokensPath(pathFormat, groupName string) (string, error) {
	if groupName == "" {
		return "", ErrEmptyGroupName
	}
	return formatPath(pathFormat, groupName)
}

func cancelNotificationPath(referenceId string) (string, error) {
	if referenceId == "" {
		return "", ErrEmptyReferenceId
	}
	return formatPath(cancelPath, referenceId)
}

// formatPath escapes the segment into pathFormat. Dot segments are rejected,
// url.JoinPath would resolve them to another endpoint.
func formatPath(pathFormat, segment string) (string, error) {
	if segment == "." || segment == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPathSegment, segment)
	}
	return fmt.Sprintf(pathFormat, url.PathEscape(segment)), nil
}

// nonNilTokens makes the api receive [] instead of null
func nonNilTokens(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}
