package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/metric"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aswaq/aswaq-notifications/config"
	"github.com/aswaq/aswaq-notifications/domain"
	"github.com/aswaq/aswaq-notifications/notifyclient"
)

var ErrMixedRecipients = errors.New("--token, --ios/--android and --group can't be combined")

type Dependencies struct {
	// Client is used as is when set. Otherwise it is built from the config file,
	// NOTIFY_* environment variables and flags.
	Client notifyclient.Client
	Output io.Writer
}

func NewRootCommand(dependencies Dependencies) *cobra.Command {
	return newRootCommand(&runner{
		client: dependencies.Client,
		output: dependencies.Output,
	})
}

func newRootCommand(r *runner) *cobra.Command {
	root := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Schedule push notifications and manage token groups",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "path to the yaml config file")
	flags.String("api-token", "", "notifications api token")
	flags.String("base-url", "", "notifications api base url")
	flags.BoolP("verbose", "v", false, "log every request")

	root.AddCommand(buildSendCommand(r))
	root.AddCommand(buildCancelCommand(r))
	root.AddCommand(buildGroupCommand(r))
	return root
}

type runner struct {
	client notifyclient.Client
	output io.Writer
	app    *app.App
}

// runE builds the client before fn and closes the app after it, whether fn fails or not.
func (r *runner) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err = r.setup(cmd); err != nil {
			return err
		}
		defer func() {
			if closeErr := r.teardown(cmd); err == nil {
				err = closeErr
			}
		}()
		return fn(cmd, args)
	}
}

func (r *runner) setup(cmd *cobra.Command) (err error) {
	if r.output == nil {
		r.output = cmd.OutOrStdout()
	}
	if r.client != nil {
		return nil
	}

	v := viper.New()
	v.SetEnvPrefix("notify")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err = v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	conf := &config.Config{}
	if path := v.GetString("config"); path != "" {
		if conf, err = config.NewFromFile(path); err != nil {
			return err
		}
	}
	if apiToken := v.GetString("api-token"); apiToken != "" {
		conf.NotifyClient.ApiToken = apiToken
	}
	if baseUrl := v.GetString("base-url"); baseUrl != "" {
		conf.NotifyClient.BaseUrl = baseUrl
	}
	if v.GetBool("verbose") {
		conf.Log.DefaultLevel = "debug"
	} else if conf.Log.DefaultLevel == "" {
		conf.Log.DefaultLevel = "warn"
	}
	conf.Log.ApplyGlobal()

	a := new(app.App)
	a.Register(conf)
	if conf.Metric.Addr != "" {
		a.Register(metric.New())
	}
	a.Register(notifyclient.New())
	if err = a.Start(cmd.Context()); err != nil {
		return err
	}
	r.app = a
	r.client = a.MustComponent(notifyclient.CName).(notifyclient.Client)
	return nil
}

// teardown closes the app started by setup; an injected client is kept
func (r *runner) teardown(cmd *cobra.Command) error {
	if r.app == nil {
		return nil
	}
	a := r.app
	r.app = nil
	r.client = nil
	return a.Close(cmd.Context())
}

func (r *runner) print(env domain.Envelope, err error) error {
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, string(data))
	return err
}

func buildSendCommand(r *runner) *cobra.Command {
	var (
		notification  domain.Notification
		sendDateInput string
		tokens        []string
		iosTokens     []string
		androidTokens []string
		group         string
	)

	command := &cobra.Command{
		Use:   "send",
		Short: "Schedule a notification for tokens or a token group",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(cmd *cobra.Command, args []string) error {
			if sendDateInput != "" {
				sendDate, err := time.Parse(time.RFC3339, sendDateInput)
				if err != nil {
					return fmt.Errorf("invalid send date %q: %w", sendDateInput, err)
				}
				notification.SendDate = sendDate
			}
			recipients, err := parseRecipients(tokens, iosTokens, androidTokens, group)
			if err != nil {
				return err
			}
			notification.Recipients = recipients
			return r.print(r.client.SendNotifications(cmd.Context(), notification))
		}),
	}

	flags := command.Flags()
	flags.StringVar(&notification.Title, "title", "", "notification title")
	flags.StringVar(&notification.Body, "body", "", "notification body")
	flags.StringVar(&notification.MessageData, "message-data", "", "json payload delivered to the app")
	flags.StringVar(&notification.Image, "image", "", "notification image url")
	flags.StringVar(&notification.ClickAction, "click-action", "", "action triggered when the notification is clicked")
	flags.StringVar(&sendDateInput, "send-date", "", "RFC3339 delivery time, now if empty")
	flags.StringArrayVar(&iosTokens, "ios", nil, "ios device token, repeatable")
	flags.StringArrayVar(&androidTokens, "android", nil, "android device token, repeatable")
	flags.StringArrayVar(&tokens, "token", nil, "device token without platform, repeatable (deprecated, use --ios/--android)")
	flags.StringVar(&group, "group", "", "token group name")
	markRequired(command, "message-data")

	return command
}

// parseRecipients allows one kind of recipients per notification
func parseRecipients(tokens, iosTokens, androidTokens []string, group string) (domain.Recipients, error) {
	var kinds int
	hasPlatform := len(iosTokens) > 0 || len(androidTokens) > 0
	for _, set := range []bool{len(tokens) > 0, hasPlatform, group != ""} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return nil, ErrMixedRecipients
	}
	switch {
	case len(tokens) > 0:
		return domain.Tokens(tokens), nil
	case hasPlatform:
		return domain.PlatformTokens{IOS: iosTokens, Android: androidTokens}, nil
	case group != "":
		return domain.Group(group), nil
	}
	return nil, nil
}

func buildCancelCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel REFERENCE_ID",
		Short: "Cancel a scheduled notification",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(cmd *cobra.Command, args []string) error {
			return r.print(r.client.CancelNotification(cmd.Context(), args[0]))
		}),
	}
}

func buildGroupCommand(r *runner) *cobra.Command {
	command := &cobra.Command{
		Use:   "group",
		Short: "Manage token groups",
	}

	var tokens []string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a token group",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(cmd *cobra.Command, args []string) error {
			return r.print(r.client.CreateTokensGroup(cmd.Context(), domain.TokenGroup{
				Name:   args[0],
				Tokens: tokens,
			}))
		}),
	}
	create.Flags().StringArrayVar(&tokens, "token", nil, "initial device token, repeatable")

	add := &cobra.Command{
		Use:   "add NAME TOKEN...",
		Short: "Add tokens to a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: r.runE(func(cmd *cobra.Command, args []string) error {
			return r.print(r.client.AddTokenToGroup(cmd.Context(), args[0], args[1:]))
		}),
	}

	remove := &cobra.Command{
		Use:   "remove NAME TOKEN...",
		Short: "Remove tokens from a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: r.runE(func(cmd *cobra.Command, args []string) error {
			return r.print(r.client.RemoveTokenFromGroup(cmd.Context(), args[0], args[1:]))
		}),
	}

	command.AddCommand(create, add, remove)
	return command
}

func markRequired(cmd *cobra.Command, name string) {
	_ = cmd.MarkFlagRequired(name)
}
