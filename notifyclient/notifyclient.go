//go:generate mockgen -destination mock_notifyclient/mock_notifyclient.go github.com/aswaq/aswaq-notifications/notifyclient Client

package notifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/aswaq/aswaq-notifications/domain"
)

const CName = "notify.client"

var log = logger.NewNamed(CName)

// Client talks to the notifications api. Every call returns the normalized
// response envelope; http error statuses are not treated as errors.
type Client interface {
	SendNotifications(ctx context.Context, n domain.Notification) (domain.Envelope, error)
	CancelNotification(ctx context.Context, referenceId string) (domain.Envelope, error)
	CreateTokensGroup(ctx context.Context, group domain.TokenGroup) (domain.Envelope, error)
	AddTokenToGroup(ctx context.Context, groupName string, userTokens []string) (domain.Envelope, error)
	RemoveTokenFromGroup(ctx context.Context, groupName string, userTokens []string) (domain.Envelope, error)
}

type Component interface {
	Client
	app.Component
}

// New returns the app component. It reads its Config from the "config" component.
func New() Component {
	return new(notifyClient)
}

// NewClient builds a standalone client. Each call returns an independent instance.
func NewClient(conf Config, opts ...Option) (Client, error) {
	c := new(notifyClient)
	if err := c.configure(conf, opts...); err != nil {
		return nil, err
	}
	return c, nil
}

type Option func(c *notifyClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *notifyClient) {
		c.httpClient = client
	}
}

type notifyClient struct {
	baseUrl       string
	authorization string
	httpClient    *http.Client
	now           func() time.Time
	metrics       *metrics
}

func (c *notifyClient) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetNotifyClient()
	if err = c.configure(conf); err != nil {
		return
	}
	if m, ok := a.Component(metric.CName).(metric.Metric); ok {
		registerMetrics(m.Registry(), c)
	}
	return
}

func (c *notifyClient) Name() (name string) {
	return CName
}

func (c *notifyClient) configure(conf Config, opts ...Option) error {
	if conf.ApiToken == "" {
		return ErrEmptyApiToken
	}
	u, err := url.Parse(conf.BaseUrl)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidBaseUrl, conf.BaseUrl)
	}
	c.baseUrl = conf.BaseUrl
	c.authorization = "Token " + conf.ApiToken
	c.httpClient = http.DefaultClient
	c.now = time.Now
	for _, opt := range opts {
		opt(c)
	}
	return nil
}

func (c *notifyClient) SendNotifications(ctx context.Context, n domain.Notification) (domain.Envelope, error) {
	payload, err := buildNotificationPayload(n, c.now())
	if err != nil {
		return domain.Envelope{}, err
	}
	return c.post(ctx, "sendNotifications", notificationsPath, payload)
}

func (c *notifyClient) CancelNotification(ctx context.Context, referenceId string) (domain.Envelope, error) {
	path, err := cancelNotificationPath(referenceId)
	if err != nil {
		return domain.Envelope{}, err
	}
	return c.post(ctx, "cancelNotification", path, nil)
}

func (c *notifyClient) CreateTokensGroup(ctx context.Context, group domain.TokenGroup) (domain.Envelope, error) {
	payload, err := newTokenGroupPayload(group)
	if err != nil {
		return domain.Envelope{}, err
	}
	return c.post(ctx, "createTokensGroup", tokenGroupPath, payload)
}

func (c *notifyClient) AddTokenToGroup(ctx context.Context, groupName string, userTokens []string) (domain.Envelope, error) {
	path, err := groupTokensPath(addToGroupPath, groupName)
	if err != nil {
		return domain.Envelope{}, err
	}
	return c.post(ctx, "addTokenToGroup", path, groupTokensPayload{UserTokens: nonNilTokens(userTokens)})
}

func (c *notifyClient) RemoveTokenFromGroup(ctx context.Context, groupName string, userTokens []string) (domain.Envelope, error) {
	path, err := groupTokensPath(removeFromGroupPath, groupName)
	if err != nil {
		return domain.Envelope{}, err
	}
	return c.post(ctx, "removeTokenFromGroup", path, groupTokensPayload{UserTokens: nonNilTokens(userTokens)})
}

// post sends a request with an optional json body; a nil payload sends no body.
func (c *notifyClient) post(ctx context.Context, op, path string, payload any) (env domain.Envelope, err error) {
	st := time.Now()
	defer func() {
		dur := time.Since(st)
		c.metrics.observe(op, env.Status, dur)
		if err != nil {
			log.Warn("request failed", zap.String("op", op), metric.TotalDur(dur), zap.Error(err))
		} else {
			log.Debug("request", zap.String("op", op), metric.TotalDur(dur), zap.String("status", env.Status))
		}
	}()

	endpoint, err := url.JoinPath(c.baseUrl, path)
	if err != nil {
		return env, err
	}
	var body io.Reader
	if payload != nil {
		data, mErr := json.Marshal(payload)
		if mErr != nil {
			return env, mErr
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return env, err
	}
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, fmt.Errorf("%s: read response: %w", op, err)
	}
	return domain.NewEnvelope(resp.StatusCode, data), nil
}
