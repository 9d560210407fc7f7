package app

import (
	"context"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// BeginDetect запоминает режим ответа и ждёт скриншот
func (s *UserService) BeginDetect(ctx context.Context, userID, chatID int64, mode entity.DetectMode) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetMode(mode)
	user.SetState(entity.StateAwaitingScreenshot)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Finish возвращает пользователя в главное меню после обработки
func (s *UserService) Finish(ctx context.Context, userID int64) error {
	return s.repo.UpdateState(ctx, userID, entity.StateMainMenu)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}
