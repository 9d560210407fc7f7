package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	app "ui-locator/internal/application"
	"ui-locator/internal/container"
	"ui-locator/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я нахожу элементы интерфейса на скриншотах браузера.

📸 Пришлите скриншот, и я верну координаты кнопок и полей ввода.

📋 Команды:
/overlay — координаты и картинка с разметкой
/detect — только координаты
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Выберите режим: /overlay или /detect
2️⃣ Пришлите скриншот
3️⃣ Получите координаты элементов (и картинку с розовой разметкой в режиме /overlay)

💡 Присылайте скриншот файлом, чтобы Telegram не пережимал его: координаты считаются по реальному размеру картинки.`

	msgAwaitingScreenshot = "📸 Пришлите скриншот страницы."
	msgCancelled          = "❌ Операция отменена. Отправьте /overlay или /detect для новой проверки."
	msgUnknownCommand     = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing         = "⏳ Обрабатываю скриншот..."
	msgNothingFound       = "🤷 Элементы интерфейса не найдены."
	msgInvalidImage       = "⚠️ Не удалось прочитать изображение. Пришлите PNG или JPEG."
	msgProcessingError    = "⚠️ Не удалось обработать скриншот. Попробуйте ещё раз."
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	detection  *app.DetectionService
	log        *logrus.Logger
	httpClient *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:        api,
		users:      c.UserService,
		detection:  c.DetectionService,
		log:        log,
		httpClient: http.DefaultClient,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.Errorf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	fileID, ok := screenshotFileID(msg)
	if !ok {
		b.sendMessage(msg.Chat.ID, msgAwaitingScreenshot)
		return
	}

	if user.State != entity.StateAwaitingScreenshot {
		// Скриншот без команды обрабатываем в режиме по умолчанию
		user, err = b.users.BeginDetect(ctx, msg.From.ID, msg.Chat.ID, user.Mode)
		if err != nil {
			b.log.Errorf("Error updating user: %v", err)
			return
		}
	}

	b.handleScreenshot(ctx, msg, user, fileID)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	var err error
	switch msg.Command() {
	case "start":
		_, err = b.users.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "overlay":
		_, err = b.users.BeginDetect(ctx, userID, chatID, entity.ModeOverlay)
		b.sendMessage(chatID, msgAwaitingScreenshot)

	case "detect":
		_, err = b.users.BeginDetect(ctx, userID, chatID, entity.ModeCoordinates)
		b.sendMessage(chatID, msgAwaitingScreenshot)

	case "cancel":
		_, err = b.users.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}

	if err != nil {
		b.log.Errorf("Error updating user %d: %v", userID, err)
	}
}

// handleScreenshot скачивает скриншот, запускает детекцию и отвечает результатом
func (b *Bot) handleScreenshot(ctx context.Context, msg *tgbotapi.Message, user *entity.User, fileID string) {
	chatID := msg.Chat.ID
	defer func() {
		if err := b.users.Finish(ctx, user.ID); err != nil {
			b.log.Errorf("Error resetting user %d: %v", user.ID, err)
		}
	}()

	if _, err := b.users.SetState(ctx, user.ID, chatID, entity.StateProcessing); err != nil {
		b.log.Errorf("Error updating user %d: %v", user.ID, err)
		return
	}
	b.sendMessage(chatID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.log.Errorf("Error downloading screenshot: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}
	b.log.Debugf("Received screenshot: %d bytes", len(imageData))

	var out *app.DetectionOutput
	if user.Mode == entity.ModeCoordinates {
		out, err = b.detection.Detect(ctx, imageData)
	} else {
		out, err = b.detection.DetectWithOverlay(ctx, imageData, entity.DefaultOverlayOptions())
	}
	if err != nil {
		b.log.Errorf("Error processing screenshot: %v", err)
		if errors.Is(err, app.ErrInvalidImage) {
			b.sendMessage(chatID, msgInvalidImage)
			return
		}
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	text := formatResult(out.Result)
	if len(out.OverlayPNG) == 0 {
		b.sendMessage(chatID, text)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "overlay.png", Bytes: out.OverlayPNG})
	photo.Caption = text
	if _, err := b.api.Send(photo); err != nil {
		b.log.Errorf("Error sending overlay: %v", err)
		b.sendMessage(chatID, text)
	}
}

// screenshotFileID возвращает файл с максимальным разрешением: фото или картинку-документ
func screenshotFileID(msg *tgbotapi.Message) (string, bool) {
	if msg.Document != nil && isImageMime(msg.Document.MimeType) {
		return msg.Document.FileID, true
	}
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	return "", false
}

func isImageMime(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorf("Error sending message: %v", err)
	}
}
