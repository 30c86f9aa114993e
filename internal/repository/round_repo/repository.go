package round_repo

import (
	"context"
	"embed"

	"house_fund/internal/model"
	"house_fund/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

const (
	roundsTable  = "rounds"
	colID        = "id"
	colGame      = "game"
	colStake     = "stake"
	colPayout    = "payout"
	colOutcome   = "outcome"
	colBalance   = "balance"
	colSettledAt = "settled_at"

	entriesTable = "round_entries"
	colRoundID   = "round_id"
	colKind      = "kind"
	colAmount    = "amount"

	kindDebit  = "debit"
	kindCredit = "credit"
)

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.RoundRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// Migrate Создать таблицы журнала, если их нет
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = dbc.Exec(ctx, string(sqlBytes))
	return err
}

// SaveRound - записывает раунд и его проводки (ставка и выплата) в одной транзакции
func (r *repo) SaveRound(ctx context.Context, round model.Round) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		tr := r.getter.DefaultTrOrDB(txCtx, r.dbc)

		// Формируем запрос
		query := sq.Insert(roundsTable).
			Columns(colID, colGame, colStake, colPayout, colOutcome, colBalance, colSettledAt).
			Values(round.ID, string(round.Game), round.Stake, round.Payout, round.Outcome, round.Balance, round.SettledAt).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err = tr.Exec(txCtx, sqlStr, args...); err != nil {
			return err
		}

		// Проводки пишем только для ненулевых сумм
		entries := sq.Insert(entriesTable).
			Columns(colRoundID, colKind, colAmount).
			PlaceholderFormat(sq.Dollar)
		count := 0
		if round.Stake > 0 {
			entries = entries.Values(round.ID, kindDebit, round.Stake)
			count++
		}
		if round.Payout > 0 {
			entries = entries.Values(round.ID, kindCredit, round.Payout)
			count++
		}
		if count == 0 {
			return nil
		}

		sqlStr, args, err = entries.ToSql()
		if err != nil {
			return err
		}
		_, err = tr.Exec(txCtx, sqlStr, args...)
		return err
	})
}

// ListRounds - последние раунды, новые первыми. limit <= 0 - без ограничения
func (r *repo) ListRounds(ctx context.Context, limit int) ([]model.Round, error) {
	query := sq.Select(colID, colGame, colStake, colPayout, colOutcome, colBalance, colSettledAt).
		From(roundsTable).
		OrderBy(colSettledAt + " DESC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []model.Round
	for rows.Next() {
		var (
			rd   model.Round
			game string
		)
		if err := rows.Scan(&rd.ID, &game, &rd.Stake, &rd.Payout, &rd.Outcome, &rd.Balance, &rd.SettledAt); err != nil {
			return nil, err
		}
		rd.Game = model.Game(game)
		rounds = append(rounds, rd)
	}
	return rounds, rows.Err()
}
