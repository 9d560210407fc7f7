package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu           UserState = "main_menu"           // В главном меню
	StateAwaitingScreenshot UserState = "awaiting_screenshot" // Ожидание скриншота
	StateProcessing         UserState = "processing"          // Обработка изображения
)

// DetectMode что вернуть пользователю после детекции
type DetectMode string

const (
	ModeCoordinates DetectMode = "coordinates" // только координаты
	ModeOverlay     DetectMode = "overlay"     // координаты и картинка с разметкой
)

// User представляет пользователя бота
type User struct {
	ID     int64      // Telegram User ID
	ChatID int64      // Telegram Chat ID
	State  UserState  // Текущее состояние пользователя
	Mode   DetectMode // Режим ответа
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
		Mode:   ModeOverlay,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// SetMode обновляет режим ответа
func (u *User) SetMode(mode DetectMode) {
	u.Mode = mode
}
