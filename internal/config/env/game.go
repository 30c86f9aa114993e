package env

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"house_fund/internal/config"
	"house_fund/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type symbolYAML struct {
	ID         string `yaml:"id"`
	Glyph      string `yaml:"glyph"`
	Multiplier int    `yaml:"multiplier"`
}

type horseYAML struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name"`
	Odds  int     `yaml:"odds"`
	Speed float64 `yaml:"speed"`
}

type partYAML struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

type sceneYAML struct {
	ID      int    `yaml:"id"`
	Trigger int    `yaml:"trigger"`
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
	Action  string `yaml:"action"`
	Next    *int   `yaml:"next"`
}

type threatYAML struct {
	Below int    `yaml:"below"`
	Text  string `yaml:"text"`
}

type screenYAML struct {
	Key         string `yaml:"key"`
	Prompt      string `yaml:"prompt"`
	Placeholder string `yaml:"placeholder"`
}

// gameYAML Структура config.yaml
type gameYAML struct {
	Economy struct {
		SeedBalance  int `yaml:"seed_balance"`
		Goal         int `yaml:"goal"`
		VIPThreshold int `yaml:"vip_threshold"`
	} `yaml:"economy"`
	Slots struct {
		DefaultBet     int          `yaml:"default_bet"`
		PairMultiplier string       `yaml:"pair_multiplier"`
		Symbols        []symbolYAML `yaml:"symbols"`
	} `yaml:"slots"`
	Blackjack struct {
		DefaultBet     int `yaml:"default_bet"`
		DealerStandsOn int `yaml:"dealer_stands_on"`
	} `yaml:"blackjack"`
	Roulette struct {
		DefaultBet int `yaml:"default_bet"`
	} `yaml:"roulette"`
	Horses struct {
		DefaultWager int         `yaml:"default_wager"`
		MaxTicks     int         `yaml:"max_ticks"`
		Field        []horseYAML `yaml:"field"`
	} `yaml:"horses"`
	ScrapYard struct {
		Reward int        `yaml:"reward"`
		Parts  []partYAML `yaml:"parts"`
	} `yaml:"scrapyard"`
	Story struct {
		Threats []threatYAML `yaml:"threats"`
		Scenes  []sceneYAML  `yaml:"scenes"`
	} `yaml:"story"`
	Assets struct {
		StylePrefix string                `yaml:"style_prefix"`
		Fallback    string                `yaml:"fallback"`
		Screens     map[string]screenYAML `yaml:"screens"`
	} `yaml:"assets"`
}

type gameConfig struct {
	seedBalance  int
	goal         int
	vipThreshold int

	symbols        []model.SlotSymbol
	pairMultiplier decimal.Decimal
	slotsBet       int

	dealerStandsOn int
	blackjackBet   int

	rouletteBet int

	horses       []model.Horse
	defaultWager int
	maxTicks     int

	parts  []model.CarPart
	reward int

	scenes  []model.StoryScene
	threats []model.ThreatLevel

	stylePrefix string
	fallback    string
	screens     []model.AssetScreen
}

// NewGameConfigFromYAML Загрузить игровые таблицы из YAML-файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (*gameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := &gameConfig{
		seedBalance:    raw.Economy.SeedBalance,
		goal:           raw.Economy.Goal,
		vipThreshold:   raw.Economy.VIPThreshold,
		slotsBet:       orDefault(raw.Slots.DefaultBet, 10),
		dealerStandsOn: orDefault(raw.Blackjack.DealerStandsOn, 17),
		blackjackBet:   orDefault(raw.Blackjack.DefaultBet, 50),
		rouletteBet:    orDefault(raw.Roulette.DefaultBet, 10),
		defaultWager:   orDefault(raw.Horses.DefaultWager, 100),
		maxTicks:       orDefault(raw.Horses.MaxTicks, 1000),
		reward:         raw.ScrapYard.Reward,
		stylePrefix:    raw.Assets.StylePrefix,
		fallback:       raw.Assets.Fallback,
	}

	if cfg.seedBalance < 0 {
		return nil, errors.New("economy: seed balance must not be negative")
	}
	if cfg.goal <= 0 {
		return nil, errors.New("economy: goal must be positive")
	}

	// Слот
	if len(raw.Slots.Symbols) == 0 {
		return nil, errors.New("slots: symbol set is empty")
	}
	for _, s := range raw.Slots.Symbols {
		if s.Multiplier <= 0 {
			return nil, fmt.Errorf("slots: symbol %q multiplier must be positive", s.ID)
		}
		cfg.symbols = append(cfg.symbols, model.SlotSymbol{ID: s.ID, Glyph: s.Glyph, Multiplier: s.Multiplier})
	}
	pair := raw.Slots.PairMultiplier
	if pair == "" {
		pair = "1.5"
	}
	pm, err := decimal.NewFromString(pair)
	if err != nil {
		return nil, fmt.Errorf("slots: pair multiplier: %w", err)
	}
	if !pm.IsPositive() {
		return nil, errors.New("slots: pair multiplier must be positive")
	}
	cfg.pairMultiplier = pm

	// Ипподром
	if len(raw.Horses.Field) == 0 {
		return nil, errors.New("horses: field is empty")
	}
	seenHorse := make(map[int]bool)
	for _, h := range raw.Horses.Field {
		if seenHorse[h.ID] || h.ID <= 0 {
			return nil, fmt.Errorf("horses: invalid or duplicate id %d", h.ID)
		}
		if h.Odds <= 0 || h.Speed < 0 {
			return nil, fmt.Errorf("horses: horse %d must have positive odds", h.ID)
		}
		seenHorse[h.ID] = true
		cfg.horses = append(cfg.horses, model.Horse{ID: h.ID, Name: h.Name, Odds: h.Odds, Speed: h.Speed})
	}

	// Свалка
	if len(raw.ScrapYard.Parts) == 0 {
		return nil, errors.New("scrapyard: no parts")
	}
	if cfg.reward < 0 {
		return nil, errors.New("scrapyard: reward must not be negative")
	}
	seenPart := make(map[string]bool)
	for _, p := range raw.ScrapYard.Parts {
		if seenPart[p.ID] || p.ID == "" {
			return nil, fmt.Errorf("scrapyard: invalid or duplicate part %q", p.ID)
		}
		if p.Health <= 0 {
			return nil, fmt.Errorf("scrapyard: part %q health must be positive", p.ID)
		}
		seenPart[p.ID] = true
		cfg.parts = append(cfg.parts, model.CarPart{ID: p.ID, Name: p.Name, Health: p.Health, X: p.X, Y: p.Y})
	}

	// Сюжет
	seenScene := make(map[int]bool)
	for _, s := range raw.Story.Scenes {
		if seenScene[s.ID] {
			return nil, fmt.Errorf("story: duplicate scene %d", s.ID)
		}
		seenScene[s.ID] = true
	}
	for _, s := range raw.Story.Scenes {
		if s.Next != nil && !seenScene[*s.Next] {
			return nil, fmt.Errorf("story: scene %d points to unknown scene %d", s.ID, *s.Next)
		}
		cfg.scenes = append(cfg.scenes, model.StoryScene{
			ID:      s.ID,
			Trigger: s.Trigger,
			Speaker: s.Speaker,
			Text:    s.Text,
			Action:  s.Action,
			Next:    s.Next,
		})
	}
	for _, t := range raw.Story.Threats {
		cfg.threats = append(cfg.threats, model.ThreatLevel{Below: t.Below, Text: t.Text})
	}

	// Фоны
	for screen, sc := range raw.Assets.Screens {
		cfg.screens = append(cfg.screens, model.AssetScreen{
			Screen:      screen,
			Key:         sc.Key,
			Prompt:      sc.Prompt,
			Placeholder: sc.Placeholder,
		})
	}
	sort.Slice(cfg.screens, func(i, j int) bool { return cfg.screens[i].Screen < cfg.screens[j].Screen })

	return cfg, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (cfg *gameConfig) SeedBalance() int  { return cfg.seedBalance }
func (cfg *gameConfig) Goal() int         { return cfg.goal }
func (cfg *gameConfig) VIPThreshold() int { return cfg.vipThreshold }

func (cfg *gameConfig) Symbols() []model.SlotSymbol {
	return append([]model.SlotSymbol(nil), cfg.symbols...)
}
func (cfg *gameConfig) PairMultiplier() decimal.Decimal { return cfg.pairMultiplier }
func (cfg *gameConfig) SlotsDefaultBet() int            { return cfg.slotsBet }

func (cfg *gameConfig) DealerStandsOn() int      { return cfg.dealerStandsOn }
func (cfg *gameConfig) BlackjackDefaultBet() int { return cfg.blackjackBet }

func (cfg *gameConfig) RouletteDefaultBet() int { return cfg.rouletteBet }

func (cfg *gameConfig) Horses() []model.Horse {
	return append([]model.Horse(nil), cfg.horses...)
}
func (cfg *gameConfig) DefaultWager() int { return cfg.defaultWager }
func (cfg *gameConfig) MaxTicks() int     { return cfg.maxTicks }

func (cfg *gameConfig) Parts() []model.CarPart {
	return append([]model.CarPart(nil), cfg.parts...)
}
func (cfg *gameConfig) Reward() int { return cfg.reward }

func (cfg *gameConfig) Scenes() []model.StoryScene {
	return append([]model.StoryScene(nil), cfg.scenes...)
}
func (cfg *gameConfig) Threats() []model.ThreatLevel {
	return append([]model.ThreatLevel(nil), cfg.threats...)
}

func (cfg *gameConfig) StylePrefix() string { return cfg.stylePrefix }
func (cfg *gameConfig) FallbackURL() string { return cfg.fallback }
func (cfg *gameConfig) Screens() []model.AssetScreen {
	return append([]model.AssetScreen(nil), cfg.screens...)
}
