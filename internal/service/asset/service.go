package asset

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"house_fund/internal/config"
	"house_fund/internal/logger"
	"house_fund/internal/model"
	"house_fund/internal/service"

	"go.uber.org/zap"
)

const (
	defaultFallback = "https://picsum.photos/seed/%s/1280/720?grayscale"
)

// Provider Генератор картинок по описанию
type Provider interface {
	RequestSceneImage(ctx context.Context, prompt string) (string, error)
}

type serv struct {
	mtx         sync.Mutex
	provider    Provider
	stylePrefix string
	fallback    string
	screens     map[string]model.AssetScreen
	cache       map[string]string
	inflight    map[string]bool
	wg          sync.WaitGroup
}

// NewAssetService provider = nil - генератор выключен, сразу отдаются заглушки
func NewAssetService(cfg config.AssetConfig, provider Provider) service.AssetService {
	s := &serv{
		provider:    provider,
		stylePrefix: cfg.StylePrefix(),
		fallback:    cfg.FallbackURL(),
		screens:     make(map[string]model.AssetScreen),
		cache:       make(map[string]string),
		inflight:    make(map[string]bool),
	}
	if s.fallback == "" {
		s.fallback = defaultFallback
	}
	for _, sc := range cfg.Screens() {
		s.screens[sc.Screen] = sc
	}
	return s
}

// SceneImage Фон экрана. Пока картинка генерируется, отдается заглушка загрузки (Ready = false).
// Игровые действия от картинок не зависят
func (s *serv) SceneImage(_ context.Context, screen string) (model.SceneImage, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sc, ok := s.screens[screen]
	if !ok {
		return model.SceneImage{}, fmt.Errorf("scene image %q: %w", screen, model.ErrUnknownScreen)
	}
	if u, ok := s.cache[screen]; ok {
		return model.SceneImage{Screen: screen, URL: u, Ready: true}, nil
	}
	if s.provider == nil {
		u := s.fallbackURL(sc.Prompt)
		s.cache[screen] = u
		return model.SceneImage{Screen: screen, URL: u, Ready: true}, nil
	}

	s.fetch(sc)
	return model.SceneImage{Screen: screen, URL: sc.Placeholder, Ready: false}, nil
}

// Prefetch Запустить генерацию фонов всех экранов
func (s *serv) Prefetch(_ context.Context) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.provider == nil {
		return
	}
	for _, sc := range s.screens {
		if _, ok := s.cache[sc.Screen]; !ok {
			s.fetch(sc)
		}
	}
}

// fetch Фоновый запрос к генератору, не больше одного на экран. Вызывается под mtx
func (s *serv) fetch(sc model.AssetScreen) {
	if s.inflight[sc.Screen] {
		return
	}
	s.inflight[sc.Screen] = true
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		u, err := s.provider.RequestSceneImage(context.Background(), s.stylePrefix+sc.Prompt)
		if err != nil {
			logger.Log.Warn("scene image fallback",
				zap.String("screen", sc.Screen),
				zap.Error(err),
			)
			u = s.fallbackURL(sc.Prompt)
		}

		s.mtx.Lock()
		s.cache[sc.Screen] = u
		delete(s.inflight, sc.Screen)
		s.mtx.Unlock()
	}()
}

func (s *serv) fallbackURL(prompt string) string {
	return fmt.Sprintf(s.fallback, url.PathEscape(prompt))
}

// wait Дождаться всех фоновых запросов
func (s *serv) wait() {
	s.wg.Wait()
}
