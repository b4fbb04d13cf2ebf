package player

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := &models.Player{
		GuildID:   "guild-1",
		UserID:    "user-1",
		Name:      "Test Player",
		Score:     3,
		XP:        57,
		Level:     1,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: player,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		GuildID: "guild-1",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("guild-1", retrieved.GuildID)
	s.Equal("user-1", retrieved.UserID)
	s.Equal("Test Player", retrieved.Name)
	s.Equal(3, retrieved.Score)
	s.Equal(57, retrieved.XP)
	s.Equal(1, retrieved.Level)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetPlayerCreatesDefaultOnMiss() {
	player, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		GuildID: "guild-1",
		UserID:  "never-seen",
	})
	s.Require().NoError(err)
	s.Require().NotNil(player)

	s.Equal("guild-1", player.GuildID)
	s.Equal("never-seen", player.UserID)
	s.Equal(0, player.Score)
	s.Equal(0, player.XP)
	s.Nil(player.InfectedUntil)
}

func (s *RedisRepositoryTestSuite) TestInfectionIndexMaintained() {
	until := s.testNow.Add(10 * time.Minute)
	infected := &models.Player{
		GuildID:       "guild-1",
		UserID:        "user-1",
		Name:          "Patient Zero",
		InfectedUntil: &until,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: infected})
	s.Require().NoError(err)

	listed, err := s.repo.ListInfected(context.Background())
	s.Require().NoError(err)
	s.Require().Len(listed.Refs, 1)
	s.Equal("guild-1", listed.Refs[0].GuildID)
	s.Equal("user-1", listed.Refs[0].UserID)

	// Clearing the field removes the player from the index
	infected.InfectedUntil = nil
	err = s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: infected})
	s.Require().NoError(err)

	listed, err = s.repo.ListInfected(context.Background())
	s.Require().NoError(err)
	s.Empty(listed.Refs)
}

func (s *RedisRepositoryTestSuite) TestListInfectedAcrossGuilds() {
	until := s.testNow.Add(time.Minute)
	for _, ref := range []struct{ guild, user string }{
		{"guild-1", "user-1"},
		{"guild-2", "user-2"},
	} {
		err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
			Player: &models.Player{
				GuildID:       ref.guild,
				UserID:        ref.user,
				InfectedUntil: &until,
			},
		})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListInfected(context.Background())
	s.Require().NoError(err)
	s.Len(listed.Refs, 2)
}

func (s *RedisRepositoryTestSuite) TestGetGuildPlayers() {
	for _, userID := range []string{"user-1", "user-2"} {
		err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
			Player: &models.Player{
				GuildID: "guild-1",
				UserID:  userID,
				Name:    "Player " + userID,
			},
		})
		s.Require().NoError(err)
	}

	// A player in another guild must not appear
	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: &models.Player{
			GuildID: "guild-2",
			UserID:  "user-3",
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.GetGuildPlayers(context.Background(), &GetGuildPlayersInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Len(out.Players, 2)

	for _, p := range out.Players {
		s.Equal("guild-1", p.GuildID)
	}
}

func (s *RedisRepositoryTestSuite) TestGetGuildPlayersEmptyGuild() {
	out, err := s.repo.GetGuildPlayers(context.Background(), &GetGuildPlayersInput{
		GuildID: "nobody-home",
	})
	s.Require().NoError(err)
	s.Empty(out.Players)
}
