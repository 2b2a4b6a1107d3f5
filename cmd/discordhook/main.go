package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
	"github.com/aleister1102/discordhook/internal/config"
	"github.com/aleister1102/discordhook/internal/httpclient"
	"github.com/aleister1102/discordhook/internal/logger"
	"github.com/aleister1102/discordhook/internal/notifier"
	"github.com/aleister1102/discordhook/internal/notifier/discord"
	"github.com/rs/zerolog"
)

func main() {
	flags, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "[FATAL]", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "[FATAL]", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, flags AppFlags, logOutput io.Writer) error {
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: logOutput, NoColor: true}).With().Timestamp().Logger()

	if flags.InitConfigFile != "" {
		return config.SaveGlobalConfig(config.NewDefaultGlobalConfig(), flags.InitConfigFile, bootLogger)
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, bootLogger)
	if err != nil {
		return errorwrapper.WrapError(err, "could not load configuration")
	}

	if flags.WebhookURL != "" {
		gCfg.DiscordConfig.WebhookURL = flags.WebhookURL
	}
	if flags.Multipart {
		gCfg.DiscordConfig.AlwaysMultipart = true
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		return err
	}

	appLogger, err := logger.NewLoggerBuilder().
		WithConsoleOutput(logOutput).
		WithConfig(gCfg.LogConfig).
		Build()
	if err != nil {
		return errorwrapper.WrapError(err, "could not initialize logger")
	}
	zLogger := *appLogger.GetZerolog()

	if gCfg.DiscordConfig.WebhookURL == "" {
		return errorwrapper.NewValidationError("webhook_url", "", "no webhook URL: use -webhook, DISCORD_WEBHOOK_URL or discord_config.webhook_url")
	}

	msg, err := buildMessage(flags, gCfg.DiscordConfig, time.Now())
	if err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	if !msg.IsValid() {
		return errorwrapper.NewValidationError("message", "", "nothing to send: provide -content, an embed flag or a component")
	}

	httpClient, err := buildHTTPClient(gCfg.HTTPClientConfig, zLogger)
	if err != nil {
		return errorwrapper.WrapError(err, "could not build HTTP client")
	}

	discordNotifier, err := notifier.NewDiscordNotifier(zLogger, httpClient)
	if err != nil {
		return err
	}
	discordNotifier.WithAlwaysMultipart(gCfg.DiscordConfig.AlwaysMultipart)

	helper := notifier.NewNotificationHelper(zLogger, notifier.NewDiscordChannel(discordNotifier))
	helper.Listen(func(e notifier.Event) {
		if e.Type != notifier.EventSent {
			return
		}
		zLogger.Info().
			Str("channel", e.Channel).
			Int("status", e.Response.StatusCode).
			Msg("Notification delivered")
	})

	target := notifier.Route(notifier.RouteDiscordWebhook, gCfg.DiscordConfig.WebhookURL)
	return helper.Send(ctx, target, notifier.NotificationFunc(func(notifier.Notifiable) discord.Message {
		return msg
	}))
}

func buildHTTPClient(cfg config.HTTPClientConfig, zLogger zerolog.Logger) (*httpclient.HTTPClient, error) {
	builder := httpclient.NewHTTPClientBuilder(zLogger).
		WithTimeout(time.Duration(cfg.TimeoutSecs) * time.Second).
		WithProxy(cfg.Proxy).
		WithInsecureSkipVerify(cfg.InsecureSkipVerify).
		WithFollowRedirects(cfg.FollowRedirects).
		WithMaxRedirects(cfg.MaxRedirects).
		WithHTTP2(cfg.EnableHTTP2).
		WithMaxErrorBodySize(cfg.MaxErrorBodySize)

	if cfg.UserAgent != "" {
		builder = builder.WithUserAgent(cfg.UserAgent)
	}
	for k, v := range cfg.CustomHeaders {
		builder = builder.WithHeader(k, v)
	}

	return builder.Build()
}
