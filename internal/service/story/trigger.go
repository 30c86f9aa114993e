package story

import (
	"context"
	"fmt"

	"house_fund/internal/logger"
	"house_fund/internal/model"

	"go.uber.org/zap"
)

func (s *serv) onBalance(_ int) {
	// Баланс перечитывается: уведомления от параллельных игр могут прийти не по порядку
	balance := s.purse.Balance()

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.evaluate(balance)
}

// evaluate Показать сцену с id = progress, если баланс достиг ее порога.
// Одновременно показывается не больше одной сцены
func (s *serv) evaluate(balance int) {
	if s.current != nil {
		return
	}
	scene, ok := s.scenes[s.progress]
	if !ok || balance < scene.Trigger {
		return
	}
	s.current = &scene
	s.hidden = false
	logger.Log.Info("story scene due",
		zap.Int("scene", scene.ID),
		zap.String("speaker", scene.Speaker),
		zap.Int("balance", balance),
	)
}

// CanAdvance Есть сцена, которую можно закрыть
func (s *serv) CanAdvance() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.current != nil
}

// Advance Закрыть текущую сцену. Прогресс переходит к продолжению сцены или к следующему id
func (s *serv) Advance(_ context.Context) (*model.StoryView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.current == nil {
		return nil, fmt.Errorf("advance story: %w", model.ErrInvalidTransition)
	}

	if s.current.Next != nil {
		s.progress = *s.current.Next
	} else {
		s.progress = s.current.ID + 1
	}
	s.current = nil
	s.hidden = false
	s.evaluate(s.purse.Balance())

	v := s.view()
	return &v, nil
}

// Dismiss Скрыть сцену, не меняя прогресс
func (s *serv) Dismiss() model.StoryView {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.current != nil {
		s.hidden = true
	}
	return s.view()
}

// Resume Снова показать скрытую сцену
func (s *serv) Resume() model.StoryView {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.hidden = false
	return s.view()
}
