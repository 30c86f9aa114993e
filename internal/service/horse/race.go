package horse

import (
	"context"
	"fmt"

	"house_fund/internal/model"
	"house_fund/internal/service/round"
)

const (
	// finishLine Прогресс, при котором лошадь финиширует
	finishLine = 100.0
	// За тик лошадь проходит rand*randomStride + speed*speedStride
	randomStride = 2.0
	speedStride  = 2.0
)

// reopen После финиша любое действие возвращает ипподром к выбору лошади
func (s *serv) reopen() {
	if s.state == model.HorseFinished {
		s.state = model.HorseSelecting
		s.progress = make([]float64, len(s.horses))
	}
}

// SelectHorse Выбрать лошадь для ставки
func (s *serv) SelectHorse(_ context.Context, id int) (*model.RaceView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state == model.HorseRacing {
		round.Reject(model.GameHorses, "select", model.ErrInvalidTransition)
		return nil, fmt.Errorf("select horse: %w", model.ErrInvalidTransition)
	}
	if _, ok := s.horse(id); !ok {
		round.Reject(model.GameHorses, "select", model.ErrUnknownHorse)
		return nil, fmt.Errorf("select horse %d: %w", id, model.ErrUnknownHorse)
	}

	s.reopen()
	s.selected = id
	s.delta = 0
	v := s.view()
	return &v, nil
}

// SetWager Изменить размер ставки. Баланс проверяется при старте
func (s *serv) SetWager(_ context.Context, amount int) (*model.RaceView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state == model.HorseRacing {
		round.Reject(model.GameHorses, "wager", model.ErrInvalidTransition)
		return nil, fmt.Errorf("set wager: %w", model.ErrInvalidTransition)
	}
	if amount <= 0 {
		round.Reject(model.GameHorses, "wager", model.ErrInvalidAmount)
		return nil, fmt.Errorf("set wager %d: %w", amount, model.ErrInvalidAmount)
	}

	s.reopen()
	s.wager = amount
	s.delta = 0
	v := s.view()
	return &v, nil
}

// CanStartRace Лошадь выбрана и ставка покрыта балансом
func (s *serv) CanStartRace() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.canStart() == nil
}

func (s *serv) canStart() error {
	if s.state == model.HorseRacing || !s.guard.CanCommit() {
		return model.ErrInvalidTransition
	}
	if s.selected == 0 {
		return model.ErrNoHorseSelected
	}
	if s.wager <= 0 {
		return model.ErrInvalidAmount
	}
	if s.wager > s.wallet.Balance() {
		return model.ErrInsufficientFunds
	}
	return nil
}

// StartRace Списать ставку и провести забег до финиша
func (s *serv) StartRace(ctx context.Context) (*model.RaceView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.canStart(); err != nil {
		round.Reject(model.GameHorses, "start", err)
		return nil, fmt.Errorf("start race: %w", err)
	}
	if err := s.wallet.Debit(s.wager); err != nil {
		round.Reject(model.GameHorses, "start", err)
		return nil, fmt.Errorf("start race: %w", err)
	}
	if err := s.guard.Commit(); err != nil {
		return nil, err
	}

	s.reopen()
	s.state = model.HorseRacing
	res := s.run()
	res.PlayerID = s.selected
	res.Wager = s.wager

	winner, _ := s.horse(res.WinnerID)
	outcome := "lost"
	if res.WinnerID == s.selected {
		res.Payout = s.wager * winner.Odds
		outcome = "won"
	}

	if err := s.wallet.Credit(res.Payout); err != nil {
		return nil, fmt.Errorf("race credit: %w", err)
	}
	if err := s.guard.Resolve(); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, model.Round{
		Game:    model.GameHorses,
		Stake:   res.Wager,
		Payout:  res.Payout,
		Outcome: fmt.Sprintf("%s: %s", outcome, winner.Name),
		Balance: s.wallet.Balance(),
	})

	s.last = &res
	s.delta = res.Payout - res.Wager
	s.state = model.HorseFinished

	v := s.view()
	return &v, nil
}

// run Тики забега. На каждом тике по одному значению источника на лошадь в порядке состава.
// Если финишную черту пересекли несколько лошадей, побеждает ушедшая дальше, при равенстве - меньший id
func (s *serv) run() model.RaceResult {
	raw := make([]float64, len(s.horses))
	var res model.RaceResult

	for tick := 1; ; tick++ {
		finished := false
		for i, h := range s.horses {
			raw[i] += s.rng.Uniform()*randomStride + h.Speed*speedStride
			if raw[i] >= finishLine {
				finished = true
			}
		}

		frame := make([]float64, len(raw))
		for i, p := range raw {
			frame[i] = min(p, finishLine)
		}
		res.Frames = append(res.Frames, frame)
		res.Ticks = tick

		if finished || tick >= s.maxTicks {
			break
		}
	}

	best := 0
	for i := 1; i < len(s.horses); i++ {
		if raw[i] > raw[best] || (raw[i] == raw[best] && s.horses[i].ID < s.horses[best].ID) {
			best = i
		}
	}
	res.WinnerID = s.horses[best].ID
	s.progress = res.Frames[len(res.Frames)-1]
	return res
}
