package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/core/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JobServiceTestSuite struct {
	suite.Suite
	mockJobRepo   *MockJobRepository
	mockShiftRepo *MockShiftRepository
	service       portssvc.JobSvcFacade
	ctx           context.Context
	userID        string
}

func (s *JobServiceTestSuite) SetupTest() {
	s.mockJobRepo = new(MockJobRepository)
	s.mockShiftRepo = new(MockShiftRepository)
	s.service = services.NewJobService(s.mockJobRepo, services.WithJobShiftReader(s.mockShiftRepo))
	s.ctx = context.Background()
	s.userID = "user-1"
}

func (s *JobServiceTestSuite) TearDownTest() {
	s.mockJobRepo.AssertExpectations(s.T())
	s.mockShiftRepo.AssertExpectations(s.T())
}

func TestJobServiceSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}

func (s *JobServiceTestSuite) TestCreateJob() {
	req := dto.CreateJobRequest{
		Name:         "  Night porter ",
		PayType:      domain.PayHourly,
		HourlyRate:   dec("18.50"),
		CurrencyCode: "gbp",
	}
	s.mockJobRepo.On("SaveJob", mock.Anything, mock.MatchedBy(func(j domain.Job) bool {
		return j.UserID == s.userID && j.IsActive && j.CreatedBy == s.userID
	})).Return(nil).Once()

	job, err := s.service.CreateJob(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Equal("Night porter", job.Name)
	s.Equal("GBP", job.CurrencyCode)
	s.NotEmpty(job.JobID)
}

func (s *JobServiceTestSuite) TestCreateJob_MissingRate() {
	_, err := s.service.CreateJob(s.ctx, s.userID, dto.CreateJobRequest{
		Name:         "Shop",
		PayType:      domain.PayDaily,
		CurrencyCode: "USD",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *JobServiceTestSuite) TestCreateJob_NegativeRate() {
	_, err := s.service.CreateJob(s.ctx, s.userID, dto.CreateJobRequest{
		Name:         "Shop",
		PayType:      domain.PayHourly,
		HourlyRate:   dec("-1"),
		CurrencyCode: "USD",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *JobServiceTestSuite) TestArchiveJob() {
	existing := &domain.Job{JobID: "job-1", UserID: s.userID, Name: "Cafe", PayType: domain.PayHourly, HourlyRate: dec("20"), IsActive: true}
	s.mockJobRepo.On("FindJobByID", mock.Anything, s.userID, "job-1").Return(existing, nil).Once()
	s.mockJobRepo.On("UpdateJob", mock.Anything, mock.MatchedBy(func(j domain.Job) bool {
		return j.JobID == "job-1" && !j.IsActive
	})).Return(nil).Once()

	s.NoError(s.service.ArchiveJob(s.ctx, s.userID, "job-1"))
}

func (s *JobServiceTestSuite) TestDeleteJob_RefusesWithShifts() {
	s.mockShiftRepo.On("CountShiftsByJob", mock.Anything, s.userID, "job-1").Return(3, nil).Once()

	err := s.service.DeleteJob(s.ctx, s.userID, "job-1", false)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockJobRepo.AssertNotCalled(s.T(), "DeleteJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestDeleteJob_WithShifts() {
	s.mockJobRepo.On("DeleteJob", mock.Anything, s.userID, "job-1", true).Return(nil).Once()

	s.NoError(s.service.DeleteJob(s.ctx, s.userID, "job-1", true))
	s.mockShiftRepo.AssertNotCalled(s.T(), "CountShiftsByJob", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestGetJobByID_NotFound() {
	s.mockJobRepo.On("FindJobByID", mock.Anything, s.userID, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetJobByID(s.ctx, s.userID, "nope")

	s.ErrorIs(err, apperrors.ErrNotFound)
}
