package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/HIDORAKAI002/flagbot/internal/common/clock/mocks"
	"github.com/HIDORAKAI002/flagbot/internal/models"
	playerRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/player"
	playerMocks "github.com/HIDORAKAI002/flagbot/internal/repositories/player/mocks"
)

type ModerationServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPlayerRepo *playerMocks.MockRepository
	mockClock      *clockMocks.MockClock
	svc            *service
	ctx            context.Context

	now         time.Time
	testGuildID string
	testUserID  string
}

func (s *ModerationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testUserID = "test-user-id"

	// Tests advance s.now to move through the spam window
	s.mockClock.EXPECT().
		Now().
		DoAndReturn(func() time.Time { return s.now }).
		AnyTimes()

	svc, err := New(&Config{
		PlayerRepo:      s.mockPlayerRepo,
		Clock:           s.mockClock,
		SpamWindow:      5 * time.Second,
		SpamMaxMessages: 3,
		BlockedWords:    []string{"badword", "Slur"},
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ModerationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ModerationServiceTestSuite) record() *RecordMessageOutput {
	output, err := s.svc.RecordMessage(s.ctx, &RecordMessageInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	return output
}

func (s *ModerationServiceTestSuite) expectOffense(existingOffenses int) {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{
			GuildID: s.testGuildID,
			UserID:  s.testUserID,
		}).
		Return(&models.Player{
			GuildID:      s.testGuildID,
			UserID:       s.testUserID,
			SpamOffenses: existingOffenses,
		}, nil)

	s.mockPlayerRepo.EXPECT().
		SavePlayer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.SavePlayerInput) error {
			s.Equal(existingOffenses+1, input.Player.SpamOffenses)
			return nil
		})
}

func (s *ModerationServiceTestSuite) TestRecordMessage_UnderLimit() {
	for i := 0; i < 3; i++ {
		output := s.record()
		s.False(output.Spam)
	}
}

func (s *ModerationServiceTestSuite) TestRecordMessage_BurstTriggersOffense() {
	s.expectOffense(0)

	for i := 0; i < 3; i++ {
		s.False(s.record().Spam)
	}

	output := s.record()
	s.True(output.Spam)
	s.Equal(1, output.OffenseCount)
	s.Equal(time.Minute, output.MuteDuration)
}

func (s *ModerationServiceTestSuite) TestRecordMessage_WindowExpiryForgives() {
	for i := 0; i < 3; i++ {
		s.False(s.record().Spam)
	}

	s.now = s.now.Add(6 * time.Second)

	// The earlier burst aged out, so the limit is not crossed
	for i := 0; i < 3; i++ {
		s.False(s.record().Spam)
	}
}

func (s *ModerationServiceTestSuite) TestRecordMessage_TrackerResetsAfterOffense() {
	s.expectOffense(0)

	for i := 0; i < 4; i++ {
		s.record()
	}

	// The offense cleared the tracker; the count starts over
	s.False(s.record().Spam)
}

func (s *ModerationServiceTestSuite) TestRecordMessage_MuteEscalates() {
	s.expectOffense(1)

	for i := 0; i < 3; i++ {
		s.record()
	}

	output := s.record()
	s.True(output.Spam)
	s.Equal(2, output.OffenseCount)
	s.Equal(5*time.Minute, output.MuteDuration)
}

func (s *ModerationServiceTestSuite) TestRecordMessage_MuteCapsAtLadderEnd() {
	s.expectOffense(11)

	for i := 0; i < 3; i++ {
		s.record()
	}

	output := s.record()
	s.True(output.Spam)
	s.Equal(12, output.OffenseCount)
	s.Equal(24*time.Hour, output.MuteDuration)
}

func (s *ModerationServiceTestSuite) TestRecordMessage_SendersTrackedSeparately() {
	for i := 0; i < 3; i++ {
		s.False(s.record().Spam)
	}

	// A different sender has their own window
	output, err := s.svc.RecordMessage(s.ctx, &RecordMessageInput{
		GuildID: s.testGuildID,
		UserID:  "someone-else",
	})
	s.Require().NoError(err)
	s.False(output.Spam)
}

func (s *ModerationServiceTestSuite) TestCheckNickname_Blocked() {
	output, err := s.svc.CheckNickname(s.ctx, &CheckNicknameInput{
		Nickname: "TotallyBADWORDInside",
	})

	s.Require().NoError(err)
	s.True(output.Blocked)
	s.Equal("badword", output.Word)
}

func (s *ModerationServiceTestSuite) TestCheckNickname_BlockListNormalized() {
	output, err := s.svc.CheckNickname(s.ctx, &CheckNicknameInput{
		Nickname: "quiet slur here",
	})

	s.Require().NoError(err)
	s.True(output.Blocked)
	s.Equal("slur", output.Word)
}

func (s *ModerationServiceTestSuite) TestCheckNickname_Clean() {
	output, err := s.svc.CheckNickname(s.ctx, &CheckNicknameInput{
		Nickname: "Friendly Player",
	})

	s.Require().NoError(err)
	s.False(output.Blocked)
}

func (s *ModerationServiceTestSuite) TestNew_DefaultsMatchConfig() {
	svc, err := New(&Config{PlayerRepo: s.mockPlayerRepo})

	s.Require().NoError(err)
	s.Equal(10*time.Second, svc.spamWindow)
	s.Equal(5, svc.spamMaxMessages)
}

func TestModerationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ModerationServiceTestSuite))
}
