package blackjack

import (
	"house_fund/internal/model"
	"house_fund/internal/random"
)

const (
	// blackjack Лучшая сумма очков
	blackjack = 21
	// aceSoftening На столько уменьшается туз, когда сумма больше 21
	aceSoftening = 10
)

// newDeck Новая колода 52 карты: масти по порядку, в каждой 2..A
func newDeck() []model.Card {
	deck := make([]model.Card, 0, len(model.Suits)*len(model.Ranks))
	for _, suit := range model.Suits {
		for _, rank := range model.Ranks {
			deck = append(deck, model.Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// shuffle Тасование Фишера-Йетса
func shuffle(deck []model.Card, rng random.Source) []model.Card {
	for i := len(deck) - 1; i > 0; i-- {
		j := random.Index(rng, i+1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// score Сумма очков руки. Тузы считаются за 11, пока сумма не больше 21, иначе за 1
func score(hand []model.Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += c.Value()
		if c.Rank == "A" {
			aces++
		}
	}
	for total > blackjack && aces > 0 {
		total -= aceSoftening
		aces--
	}
	return total
}

// draw Взять верхнюю карту. Пустая колода заменяется новой
func (s *serv) draw() model.Card {
	if len(s.deck) == 0 {
		s.deck = s.newDeck()
	}
	c := s.deck[len(s.deck)-1]
	s.deck = s.deck[:len(s.deck)-1]
	return c
}
