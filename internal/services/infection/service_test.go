package infection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/HIDORAKAI002/flagbot/internal/common/clock/mocks"
	"github.com/HIDORAKAI002/flagbot/internal/models"
	playerRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/player"
	playerMocks "github.com/HIDORAKAI002/flagbot/internal/repositories/player/mocks"
	"github.com/HIDORAKAI002/flagbot/internal/services/infection/mocks"
)

type InfectionServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPlayerRepo *playerMocks.MockRepository
	mockNotifier   *mocks.MockNotifier
	mockClock      *clockMocks.MockClock
	svc            *service
	ctx            context.Context

	testTime    time.Time
	testGuildID string
	testUserID  string
}

func (s *InfectionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		PlayerRepo:    s.mockPlayerRepo,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		SweepInterval: time.Minute,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *InfectionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *InfectionServiceTestSuite) infectedPlayer(until time.Time) *models.Player {
	return &models.Player{
		GuildID:       s.testGuildID,
		UserID:        s.testUserID,
		Name:          "Test Player",
		InfectedUntil: &until,
	}
}

func (s *InfectionServiceTestSuite) expectList(refs ...playerRepo.InfectedRef) {
	s.mockPlayerRepo.EXPECT().
		ListInfected(gomock.Any()).
		Return(&playerRepo.ListInfectedOutput{Refs: refs}, nil)
}

func (s *InfectionServiceTestSuite) TestExpireDue_ClearsElapsedInfection() {
	s.expectList(playerRepo.InfectedRef{GuildID: s.testGuildID, UserID: s.testUserID})

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{
			GuildID: s.testGuildID,
			UserID:  s.testUserID,
		}).
		Return(s.infectedPlayer(s.testTime.Add(-time.Minute)), nil)

	var saved *models.Player
	s.mockPlayerRepo.EXPECT().
		SavePlayer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.SavePlayerInput) error {
			saved = input.Player
			return nil
		})

	s.mockNotifier.EXPECT().
		SetNickname(gomock.Any(), s.testGuildID, s.testUserID, "").
		Return(nil)

	output, err := s.svc.ExpireDue(s.ctx)

	s.Require().NoError(err)
	s.Equal([]ExpiredRef{{GuildID: s.testGuildID, UserID: s.testUserID}}, output.Expired)
	s.Require().NotNil(saved)
	s.Nil(saved.InfectedUntil)
	s.Equal(s.testTime, saved.UpdatedAt)
}

func (s *InfectionServiceTestSuite) TestExpireDue_ExactBoundaryExpires() {
	s.expectList(playerRepo.InfectedRef{GuildID: s.testGuildID, UserID: s.testUserID})

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(s.infectedPlayer(s.testTime), nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockNotifier.EXPECT().
		SetNickname(gomock.Any(), s.testGuildID, s.testUserID, "").
		Return(nil)

	output, err := s.svc.ExpireDue(s.ctx)

	s.Require().NoError(err)
	s.Len(output.Expired, 1)
}

func (s *InfectionServiceTestSuite) TestExpireDue_LeavesRunningInfection() {
	s.expectList(playerRepo.InfectedRef{GuildID: s.testGuildID, UserID: s.testUserID})

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(s.infectedPlayer(s.testTime.Add(5*time.Minute)), nil)

	output, err := s.svc.ExpireDue(s.ctx)

	s.Require().NoError(err)
	s.Empty(output.Expired)
}

func (s *InfectionServiceTestSuite) TestExpireDue_SkipsAlreadyCured() {
	s.expectList(playerRepo.InfectedRef{GuildID: s.testGuildID, UserID: s.testUserID})

	// The player was cured between the listing and the load
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{GuildID: s.testGuildID, UserID: s.testUserID}, nil)

	output, err := s.svc.ExpireDue(s.ctx)

	s.Require().NoError(err)
	s.Empty(output.Expired)
}

func (s *InfectionServiceTestSuite) TestExpireDue_NicknameFailureStillExpires() {
	s.expectList(playerRepo.InfectedRef{GuildID: s.testGuildID, UserID: s.testUserID})

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(s.infectedPlayer(s.testTime.Add(-time.Second)), nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockNotifier.EXPECT().
		SetNickname(gomock.Any(), s.testGuildID, s.testUserID, "").
		Return(errors.New("missing permissions"))

	output, err := s.svc.ExpireDue(s.ctx)

	s.Require().NoError(err)
	s.Len(output.Expired, 1)
}

func (s *InfectionServiceTestSuite) TestExpireDue_LoadFailureSkipsPlayer() {
	s.expectList(
		playerRepo.InfectedRef{GuildID: s.testGuildID, UserID: "broken-user"},
		playerRepo.InfectedRef{GuildID: s.testGuildID, UserID: s.testUserID},
	)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{
			GuildID: s.testGuildID,
			UserID:  "broken-user",
		}).
		Return(nil, errors.New("redis went away"))

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{
			GuildID: s.testGuildID,
			UserID:  s.testUserID,
		}).
		Return(s.infectedPlayer(s.testTime.Add(-time.Second)), nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockNotifier.EXPECT().
		SetNickname(gomock.Any(), s.testGuildID, s.testUserID, "").
		Return(nil)

	output, err := s.svc.ExpireDue(s.ctx)

	s.Require().NoError(err)
	s.Equal([]ExpiredRef{{GuildID: s.testGuildID, UserID: s.testUserID}}, output.Expired)
}

func (s *InfectionServiceTestSuite) TestExpireDue_ListError() {
	s.mockPlayerRepo.EXPECT().
		ListInfected(gomock.Any()).
		Return(nil, errors.New("redis went away"))

	output, err := s.svc.ExpireDue(s.ctx)

	s.Require().Error(err)
	s.Nil(output)
}

func TestInfectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InfectionServiceTestSuite))
}
