package giveaway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/HIDORAKAI002/flagbot/internal/common/clock/mocks"
	uuidMocks "github.com/HIDORAKAI002/flagbot/internal/common/uuid/mocks"
	"github.com/HIDORAKAI002/flagbot/internal/models"
	"github.com/HIDORAKAI002/flagbot/internal/rng"
	giveawayRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/giveaway"
	repoMocks "github.com/HIDORAKAI002/flagbot/internal/repositories/giveaway/mocks"
	"github.com/HIDORAKAI002/flagbot/internal/services/giveaway/mocks"
)

type GiveawayServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *repoMocks.MockRepository
	mockNotifier *mocks.MockNotifier
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	svc          *service
	ctx          context.Context

	testTime       time.Time
	testGiveawayID string
	testGuildID    string
	testChannelID  string
	testMessageID  string
	testUserID     string
}

func (s *GiveawayServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGiveawayID = "test-giveaway-id"
	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testMessageID = "test-message-id"
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testGiveawayID).AnyTimes()

	svc, err := New(&Config{
		Repo:          s.mockRepo,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Roller:        rng.New(&rng.Config{Seed: 42}),
		SweepInterval: time.Second,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *GiveawayServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GiveawayServiceTestSuite) liveGiveaway() *models.Giveaway {
	return &models.Giveaway{
		ID:          s.testGiveawayID,
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		MessageID:   s.testMessageID,
		Prize:       "Discord Nitro",
		WinnerCount: 1,
		EndsAt:      s.testTime.Add(time.Hour),
		Active:      true,
		CreatedAt:   s.testTime,
	}
}

func (s *GiveawayServiceTestSuite) TestStart_HappyPath() {
	s.mockNotifier.EXPECT().
		AnnounceGiveaway(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(s.testMessageID, nil)

	var saved *models.Giveaway
	s.mockRepo.EXPECT().
		SaveGiveaway(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *giveawayRepo.SaveGiveawayInput) error {
			saved = input.Giveaway
			return nil
		})

	output, err := s.svc.Start(s.ctx, &StartInput{
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		Prize:       "Discord Nitro",
		WinnerCount: 1,
		Duration:    time.Hour,
	})

	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal(s.testGiveawayID, saved.ID)
	s.Equal(s.testMessageID, saved.MessageID)
	s.Equal(s.testTime.Add(time.Hour), saved.EndsAt)
	s.True(saved.Active)
	s.Equal(saved, output.Giveaway)
}

func (s *GiveawayServiceTestSuite) TestStart_AnnounceFailure() {
	s.mockNotifier.EXPECT().
		AnnounceGiveaway(gomock.Any(), s.testChannelID, gomock.Any()).
		Return("", errors.New("channel gone"))

	output, err := s.svc.Start(s.ctx, &StartInput{
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		Prize:       "Discord Nitro",
		WinnerCount: 1,
		Duration:    time.Hour,
	})

	s.Require().Error(err)
	s.Equal(ErrAnnounceFailed, err)
	s.Nil(output)
}

func (s *GiveawayServiceTestSuite) TestStart_InvalidInput() {
	tests := []struct {
		name  string
		input *StartInput
	}{
		{name: "nil input", input: nil},
		{name: "missing prize", input: &StartInput{
			GuildID: s.testGuildID, ChannelID: s.testChannelID, WinnerCount: 1, Duration: time.Hour,
		}},
		{name: "zero winners", input: &StartInput{
			GuildID: s.testGuildID, ChannelID: s.testChannelID, Prize: "x", Duration: time.Hour,
		}},
		{name: "zero duration", input: &StartInput{
			GuildID: s.testGuildID, ChannelID: s.testChannelID, Prize: "x", WinnerCount: 1,
		}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			output, err := s.svc.Start(s.ctx, tt.input)
			s.Require().Error(err)
			s.Nil(output)
		})
	}
}

func (s *GiveawayServiceTestSuite) TestEnter_HappyPath() {
	s.mockRepo.EXPECT().
		GetGiveawayByMessage(gomock.Any(), &giveawayRepo.GetGiveawayByMessageInput{
			MessageID: s.testMessageID,
		}).
		Return(s.liveGiveaway(), nil)

	s.mockRepo.EXPECT().
		AddEntrant(gomock.Any(), &giveawayRepo.AddEntrantInput{
			GiveawayID: s.testGiveawayID,
			UserID:     s.testUserID,
		}).
		Return(nil)

	output, err := s.svc.Enter(s.ctx, &EnterInput{
		MessageID: s.testMessageID,
		UserID:    s.testUserID,
	})

	s.Require().NoError(err)
	s.True(output.Entered)
}

func (s *GiveawayServiceTestSuite) TestEnter_UnknownMessageIgnored() {
	s.mockRepo.EXPECT().
		GetGiveawayByMessage(gomock.Any(), gomock.Any()).
		Return(nil, giveawayRepo.ErrGiveawayNotFound)

	output, err := s.svc.Enter(s.ctx, &EnterInput{
		MessageID: s.testMessageID,
		UserID:    s.testUserID,
	})

	s.Require().NoError(err)
	s.False(output.Entered)
}

func (s *GiveawayServiceTestSuite) TestEnter_ClosedGiveawayIgnored() {
	closed := s.liveGiveaway()
	closed.Active = false

	s.mockRepo.EXPECT().
		GetGiveawayByMessage(gomock.Any(), gomock.Any()).
		Return(closed, nil)

	output, err := s.svc.Enter(s.ctx, &EnterInput{
		MessageID: s.testMessageID,
		UserID:    s.testUserID,
	})

	s.Require().NoError(err)
	s.False(output.Entered)
}

func (s *GiveawayServiceTestSuite) TestEnter_PastEndIgnored() {
	late := s.liveGiveaway()
	late.EndsAt = s.testTime.Add(-time.Minute)

	s.mockRepo.EXPECT().
		GetGiveawayByMessage(gomock.Any(), gomock.Any()).
		Return(late, nil)

	output, err := s.svc.Enter(s.ctx, &EnterInput{
		MessageID: s.testMessageID,
		UserID:    s.testUserID,
	})

	s.Require().NoError(err)
	s.False(output.Entered)
}

func (s *GiveawayServiceTestSuite) TestResolveDue_DrawsAndAnnounces() {
	due := s.liveGiveaway()
	due.EndsAt = s.testTime.Add(-time.Second)

	s.mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(&giveawayRepo.ListActiveOutput{Giveaways: []*models.Giveaway{due}}, nil)

	// Deactivation must be persisted before the draw
	var savedActive *bool
	s.mockRepo.EXPECT().
		SaveGiveaway(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *giveawayRepo.SaveGiveawayInput) error {
			active := input.Giveaway.Active
			savedActive = &active
			return nil
		})

	s.mockRepo.EXPECT().
		GetEntrants(gomock.Any(), &giveawayRepo.GetEntrantsInput{GiveawayID: s.testGiveawayID}).
		Return(&giveawayRepo.GetEntrantsOutput{UserIDs: []string{s.testUserID}}, nil)

	s.mockNotifier.EXPECT().
		SendText(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(nil)

	output, err := s.svc.ResolveDue(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(output.Resolutions, 1)
	s.Equal([]string{s.testUserID}, output.Resolutions[0].Winners)
	s.Require().NotNil(savedActive)
	s.False(*savedActive)
}

func (s *GiveawayServiceTestSuite) TestResolveDue_NoEntrants() {
	due := s.liveGiveaway()
	due.EndsAt = s.testTime.Add(-time.Second)

	s.mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(&giveawayRepo.ListActiveOutput{Giveaways: []*models.Giveaway{due}}, nil)
	s.mockRepo.EXPECT().
		SaveGiveaway(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockRepo.EXPECT().
		GetEntrants(gomock.Any(), gomock.Any()).
		Return(&giveawayRepo.GetEntrantsOutput{}, nil)
	s.mockNotifier.EXPECT().
		SendText(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(nil)

	output, err := s.svc.ResolveDue(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(output.Resolutions, 1)
	s.Empty(output.Resolutions[0].Winners)
}

func (s *GiveawayServiceTestSuite) TestResolveDue_FewerEntrantsThanWinners() {
	due := s.liveGiveaway()
	due.EndsAt = s.testTime.Add(-time.Second)
	due.WinnerCount = 3

	s.mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(&giveawayRepo.ListActiveOutput{Giveaways: []*models.Giveaway{due}}, nil)
	s.mockRepo.EXPECT().
		SaveGiveaway(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockRepo.EXPECT().
		GetEntrants(gomock.Any(), gomock.Any()).
		Return(&giveawayRepo.GetEntrantsOutput{UserIDs: []string{"a", "b"}}, nil)
	s.mockNotifier.EXPECT().
		SendText(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(nil)

	output, err := s.svc.ResolveDue(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(output.Resolutions, 1)
	s.ElementsMatch([]string{"a", "b"}, output.Resolutions[0].Winners)
}

func (s *GiveawayServiceTestSuite) TestResolveDue_LeavesRunningGiveaways() {
	s.mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(&giveawayRepo.ListActiveOutput{
			Giveaways: []*models.Giveaway{s.liveGiveaway()},
		}, nil)

	output, err := s.svc.ResolveDue(s.ctx)

	s.Require().NoError(err)
	s.Empty(output.Resolutions)
}

func (s *GiveawayServiceTestSuite) TestResolveDue_DeactivationFailureSkipsDraw() {
	due := s.liveGiveaway()
	due.EndsAt = s.testTime.Add(-time.Second)

	s.mockRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(&giveawayRepo.ListActiveOutput{Giveaways: []*models.Giveaway{due}}, nil)
	s.mockRepo.EXPECT().
		SaveGiveaway(gomock.Any(), gomock.Any()).
		Return(errors.New("redis went away"))

	output, err := s.svc.ResolveDue(s.ctx)

	s.Require().NoError(err)
	s.Empty(output.Resolutions)
}

func TestGiveawayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GiveawayServiceTestSuite))
}
