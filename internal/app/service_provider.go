package app

import (
	"context"
	"net/http"

	assetAPI "house_fund/internal/api/asset"
	blackjackAPI "house_fund/internal/api/blackjack"
	"house_fund/internal/api/events"
	horseAPI "house_fund/internal/api/horse"
	rouletteAPI "house_fund/internal/api/roulette"
	scrapyardAPI "house_fund/internal/api/scrapyard"
	sessionAPI "house_fund/internal/api/session"
	slotsAPI "house_fund/internal/api/slots"
	storyAPI "house_fund/internal/api/story"
	"house_fund/internal/client/imagegen"
	"house_fund/internal/config"
	"house_fund/internal/config/env"
	"house_fund/internal/converter"
	"house_fund/internal/ledger"
	"house_fund/internal/logger"
	"house_fund/internal/monitoring"
	"house_fund/internal/random"
	"house_fund/internal/repository"
	"house_fund/internal/repository/round_mem_repo"
	"house_fund/internal/repository/round_repo"
	"house_fund/internal/repository/stats_repo"
	"house_fund/internal/service"
	"house_fund/internal/service/asset"
	"house_fund/internal/service/blackjack"
	"house_fund/internal/service/horse"
	"house_fund/internal/service/roulette"
	"house_fund/internal/service/round"
	"house_fund/internal/service/scrapyard"
	"house_fund/internal/service/session"
	"house_fund/internal/service/slots"
	"house_fund/internal/service/story"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const gameConfigPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Configs
	logCfg    config.LogConfig
	randomCfg config.RandomConfig
	gameCfg   config.GameConfig
	assetCfg  config.AssetProviderConfig

	// Economy bits
	rng       random.Source
	ledger    *ledger.Ledger
	roundRepo repository.RoundRepository
	statsRepo repository.StatsRepository
	recorder  *round.Recorder

	// Services
	slotsServ     service.SlotsService
	blackjackServ service.BlackjackService
	rouletteServ  service.RouletteService
	horseServ     service.HorseService
	scrapyardServ service.ScrapYardService
	storyServ     service.StoryService
	assetServ     service.AssetService
	sessionServ   service.SessionService

	// Events
	hub *events.Hub

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

// PgConfig nil, если PG_DSN не задан: журнал тогда хранится в памяти
func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			logger.Log.Info("postgres disabled", zap.Error(err))
			return nil
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = round_repo.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) RandomCfg() config.RandomConfig {
	if sp.randomCfg == nil {
		cfg, err := env.NewRandomConfig()
		if err != nil {
			panic("failed to get random config: " + err.Error())
		}
		sp.randomCfg = cfg
	}
	return sp.randomCfg
}

func (sp *ServiceProvider) AssetProviderCfg() config.AssetProviderConfig {
	if sp.assetCfg == nil {
		cfg, err := env.NewAssetProviderConfig()
		if err != nil {
			panic("failed to get asset provider config: " + err.Error())
		}
		sp.assetCfg = cfg
	}
	return sp.assetCfg
}

// Random Один источник на все игры. RANDOM_SEED = 0 - сид из crypto/rand
func (sp *ServiceProvider) Random() random.Source {
	if sp.rng == nil {
		seed := sp.RandomCfg().Seed()
		if seed != 0 {
			sp.rng = random.New(seed)
		} else {
			src, s, err := random.NewFromEntropy()
			if err != nil {
				panic("failed to seed random source: " + err.Error())
			}
			sp.rng = src
			seed = s
		}
		logger.Log.Info("random source ready", zap.Int64("seed", seed))
	}
	return sp.rng
}

func (sp *ServiceProvider) Ledger() *ledger.Ledger {
	if sp.ledger == nil {
		cfg := sp.GameCfg()
		sp.ledger = ledger.New(cfg.SeedBalance(), cfg.Goal())
		monitoring.LedgerBalance.Set(float64(cfg.SeedBalance()))
	}
	return sp.ledger
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		if sp.PgConfig() != nil {
			sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		} else {
			sp.roundRepo = round_mem_repo.NewRoundRepository()
		}
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) Recorder(ctx context.Context) *round.Recorder {
	if sp.recorder == nil {
		sp.recorder = round.NewRecorder(sp.RoundRepository(ctx), sp.StatsRepository())
	}
	return sp.recorder
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slots.NewSlotsService(sp.GameCfg(), sp.Ledger(), sp.Random(), sp.Recorder(ctx))
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(sp.GameCfg(), sp.Ledger(), sp.Random(), sp.Recorder(ctx))
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(sp.GameCfg(), sp.Ledger(), sp.Random(), sp.Recorder(ctx))
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) HorseService(ctx context.Context) service.HorseService {
	if sp.horseServ == nil {
		sp.horseServ = horse.NewHorseService(sp.GameCfg(), sp.Ledger(), sp.Random(), sp.Recorder(ctx))
	}
	return sp.horseServ
}

func (sp *ServiceProvider) ScrapYardService(ctx context.Context) service.ScrapYardService {
	if sp.scrapyardServ == nil {
		sp.scrapyardServ = scrapyard.NewScrapYardService(sp.GameCfg(), sp.Ledger(), sp.Recorder(ctx))
	}
	return sp.scrapyardServ
}

func (sp *ServiceProvider) StoryService() service.StoryService {
	if sp.storyServ == nil {
		sp.storyServ = story.NewStoryService(sp.GameCfg(), sp.Ledger())
	}
	return sp.storyServ
}

// AssetService Без ASSET_PROVIDER_URL фоны сразу заменяются заглушками
func (sp *ServiceProvider) AssetService() service.AssetService {
	if sp.assetServ == nil {
		var provider asset.Provider
		if cfg := sp.AssetProviderCfg(); cfg.URL() != "" {
			provider = imagegen.NewClient(cfg.URL(), cfg.Timeout())
		}
		sp.assetServ = asset.NewAssetService(sp.GameCfg(), provider)
	}
	return sp.assetServ
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.GameCfg(),
			sp.Ledger(),
			sp.StoryService(),
			sp.RoundRepository(ctx),
			sp.StatsRepository(),
		)
	}
	return sp.sessionServ
}

// EventHub Поток событий /events. Подписывается на кошелек после сюжета,
// чтобы в сообщении story было уже новое состояние
func (sp *ServiceProvider) EventHub() *events.Hub {
	if sp.hub == nil {
		l := sp.Ledger()
		st := sp.StoryService()
		snapshot := func() []events.Msg {
			return []events.Msg{
				balanceMsg(l.Balance(), l.Goal()),
				{T: "story", M: converter.ToStoryResponse(st.View())},
			}
		}
		hub := events.NewHub(snapshot)
		l.Subscribe(func(balance int) {
			monitoring.LedgerBalance.Set(float64(balance))
			hub.Publish(balanceMsg(balance, l.Goal()))
			hub.Publish(events.Msg{T: "story", M: converter.ToStoryResponse(st.View())})
		})
		sp.hub = hub
	}
	return sp.hub
}

func balanceMsg(balance, goal int) events.Msg {
	return events.Msg{T: "balance", M: map[string]any{
		"balance":      balance,
		"goal":         goal,
		"goal_reached": balance >= goal,
	}}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		r.Handle("/metrics", promhttp.Handler())
		r.Get("/events", sp.EventHub().ServeWS)

		// Session endpoints
		sessionHandler := sessionAPI.NewHandler(sessionAPI.HandlerDeps{Serv: sp.SessionService(ctx)})
		r.Get("/session", sessionHandler.Session)
		r.Get("/stats", sessionHandler.Stats)
		r.Get("/history", sessionHandler.History)

		// Slots endpoints
		slotsHandler := slotsAPI.NewHandler(slotsAPI.HandlerDeps{Serv: sp.SlotsService(ctx)})
		r.Route("/slots", func(rr chi.Router) {
			rr.Get("/", slotsHandler.State)
			rr.Post("/spin", slotsHandler.Spin)
		})

		// Blackjack endpoints
		blackjackHandler := blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{Serv: sp.BlackjackService(ctx)})
		r.Route("/blackjack", func(rr chi.Router) {
			rr.Get("/", blackjackHandler.Table)
			rr.Post("/deal", blackjackHandler.Deal)
			rr.Post("/hit", blackjackHandler.Hit)
			rr.Post("/stand", blackjackHandler.Stand)
		})

		// Roulette endpoints
		rouletteHandler := rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.RouletteService(ctx)})
		r.Route("/roulette", func(rr chi.Router) {
			rr.Get("/", rouletteHandler.State)
			rr.Post("/bet", rouletteHandler.Bet)
			rr.Post("/spin", rouletteHandler.Spin)
		})

		// Horse race endpoints
		horseHandler := horseAPI.NewHandler(horseAPI.HandlerDeps{Serv: sp.HorseService(ctx)})
		r.Route("/horses", func(rr chi.Router) {
			rr.Get("/", horseHandler.State)
			rr.Post("/select", horseHandler.Select)
			rr.Post("/wager", horseHandler.Wager)
			rr.Post("/start", horseHandler.Start)
		})

		// Scrap yard endpoints
		scrapyardHandler := scrapyardAPI.NewHandler(scrapyardAPI.HandlerDeps{Serv: sp.ScrapYardService(ctx)})
		r.Route("/scrapyard", func(rr chi.Router) {
			rr.Get("/", scrapyardHandler.State)
			rr.Post("/strike", scrapyardHandler.Strike)
			rr.Post("/restart", scrapyardHandler.Restart)
		})

		// Story endpoints
		storyHandler := storyAPI.NewHandler(storyAPI.HandlerDeps{Serv: sp.StoryService()})
		r.Route("/story", func(rr chi.Router) {
			rr.Get("/", storyHandler.State)
			rr.Post("/advance", storyHandler.Advance)
			rr.Post("/dismiss", storyHandler.Dismiss)
			rr.Post("/resume", storyHandler.Resume)
		})

		// Scene art
		assetHandler := assetAPI.NewHandler(assetAPI.HandlerDeps{Serv: sp.AssetService()})
		r.Get("/assets/{screen}", assetHandler.SceneImage)

		sp.router = r
	}

	return sp.router
}
