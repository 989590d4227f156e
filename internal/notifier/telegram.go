package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"jobboard/internal/config"
)

// TelegramNotifier pushes recruiting events (new job postings, new resume
// submissions) to a configured admin chat. Failures are logged and dropped;
// notifications never fail the originating request.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier creates the notifier, or returns nil when
// notifications are disabled in the configuration.
func NewTelegramNotifier(cfg *config.Config, logger *zap.Logger) (*TelegramNotifier, error) {
	if !cfg.Notifications.Enabled || cfg.Notifications.TelegramBotToken == "" {
		logger.Info("Telegram notifications are disabled (notifications.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Notifications.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("username", botAPI.Self.UserName))

	return &TelegramNotifier{
		api:    botAPI,
		chatID: cfg.Notifications.TelegramChatID,
		logger: logger,
	}, nil
}

func (n *TelegramNotifier) NotifyNewJob(jobName, companyName string) {
	if n == nil {
		return
	}
	text := fmt.Sprintf("New job posted: %s", jobName)
	if companyName != "" {
		text += fmt.Sprintf(" (%s)", companyName)
	}
	n.send(text)
}

func (n *TelegramNotifier) NotifyNewResume(applicantEmail, jobName string) {
	if n == nil {
		return
	}
	text := fmt.Sprintf("New resume from %s", applicantEmail)
	if jobName != "" {
		text += fmt.Sprintf(" for job %q", jobName)
	}
	n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.logger.Error("Failed to send Telegram notification", zap.Error(err))
	}
}
