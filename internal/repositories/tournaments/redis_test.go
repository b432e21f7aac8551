package tournaments_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/repositories/tournaments"
	"github.com/KirkDiggler/brawl-tournament/internal/testutils"
)

const testTTL = time.Hour

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       tournaments.Repository
	tournament *entities.Tournament
	data       string
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = tournaments.NewRedisRepository(&tournaments.RedisRepoConfig{
		Client: s.mockClient,
		TTL:    testTTL,
	})

	s.tournament = testutils.CreateTestTournament("t-1", "Punk", "Nefor")
	raw, err := json.Marshal(s.tournament)
	s.Require().NoError(err)
	s.data = string(raw)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestNewRedisRepositoryPanicsWithoutClient() {
	s.Panics(func() {
		tournaments.NewRedisRepository(&tournaments.RedisRepoConfig{})
	})
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()

	cutoff := s.tournament.CompletedAt.Add(-testTTL).UnixMilli()

	s.mock.ExpectSetNX("tournament:t-1", s.data, testTTL).SetVal(true)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectZAdd("tournaments:recent", redis.Z{
		Score:  float64(s.tournament.CompletedAt.UnixMilli()),
		Member: "t-1",
	}).SetVal(1)
	s.mock.ExpectZRemRangeByScore("tournaments:recent", "-inf", "("+strconv.FormatInt(cutoff, 10)).SetVal(0)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Create(ctx, s.tournament)
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestCreateExisting() {
	s.mock.ExpectSetNX("tournament:t-1", s.data, testTTL).SetVal(false)

	err := s.repo.Create(context.Background(), s.tournament)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateValidation() {
	ctx := context.Background()

	s.True(dnderr.IsInvalidArgument(s.repo.Create(ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(ctx, &entities.Tournament{})))
}

func (s *RedisRepoTestSuite) TestCreateDependencyError() {
	s.mock.ExpectSetNX("tournament:t-1", s.data, testTTL).SetErr(errors.New("redis error"))

	err := s.repo.Create(context.Background(), s.tournament)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestGet() {
	s.mock.ExpectGet("tournament:t-1").SetVal(s.data)

	got, err := s.repo.Get(context.Background(), "t-1")
	s.Require().NoError(err)
	s.Equal("t-1", got.ID)
	s.Equal([]string{"Punk", "Nefor"}, got.Roster)
	s.Require().Len(got.Fights, 1)
	s.Equal("Punk", got.Fights[0].Winner)
	s.Require().Len(got.Duels, 1)
	s.Equal(entities.TerminationKnockout, got.Duels[0].Termination)
	s.True(s.tournament.CompletedAt.Equal(got.CompletedAt))
}

func (s *RedisRepoTestSuite) TestGetMissing() {
	s.mock.ExpectGet("tournament:nope").RedisNil()

	_, err := s.repo.Get(context.Background(), "nope")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetDependencyError() {
	s.mock.ExpectGet("tournament:t-1").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(context.Background(), "t-1")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListRecent() {
	other := testutils.CreateTestTournament("t-2", "Normis", "Pickme")
	raw, err := json.Marshal(other)
	s.Require().NoError(err)

	s.mock.ExpectZRevRange("tournaments:recent", 0, 2).SetVal([]string{"t-2", "gone", "t-1"})
	s.mock.ExpectMGet("tournament:t-2", "tournament:gone", "tournament:t-1").
		SetVal([]interface{}{string(raw), nil, s.data})

	got, err := s.repo.ListRecent(context.Background(), 3)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("t-2", got[0].ID)
	s.Equal("t-1", got[1].ID)
}

func (s *RedisRepoTestSuite) TestListRecentEmpty() {
	s.mock.ExpectZRevRange("tournaments:recent", 0, -1).SetVal([]string{})

	got, err := s.repo.ListRecent(context.Background(), 0)
	s.NoError(err)
	s.Empty(got)
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("tournament:t-1").SetVal(1)
	s.mock.ExpectZRem("tournaments:recent", "t-1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "t-1"))
}

func (s *RedisRepoTestSuite) TestDeleteMissing() {
	s.mock.ExpectDel("tournament:nope").SetVal(0)

	err := s.repo.Delete(context.Background(), "nope")
	s.True(dnderr.IsNotFound(err))
}
