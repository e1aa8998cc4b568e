package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/SscSPs/shiftpay/internal/handlers"
	"github.com/SscSPs/shiftpay/internal/platform/config"
	"github.com/SscSPs/shiftpay/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// closeNotifyingRecorder lets gin's Stream run against a recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyingRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          *config.Config
	jobs         *MockJobService
	shifts       *MockShiftService
	active       *MockActiveShiftService
	records      *MockFinancialRecordService
	reporting    *MockReportingService
	currencies   *MockCurrencyService
	userID       string
	defaultToken string
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	v, ok := binding.Validator.Engine().(*validator.Validate)
	suite.Require().True(ok)
	suite.Require().NoError(dto.RegisterValidators(v))
}

// generateTestToken creates a signed JWT for the test user.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	signed, err := utils.IssueToken(userID, suite.cfg.JWTSecret, suite.cfg.JWTIssuer, time.Hour, time.Now())
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		IsProduction:          true,
		JWTSecret:             "test-secret-key-that-is-long-enough",
		JWTIssuer:             "shiftpay-test",
		CountdownTick:         time.Hour,
		ShiftRedetectInterval: time.Minute,
	}
	suite.jobs = new(MockJobService)
	suite.shifts = new(MockShiftService)
	suite.active = new(MockActiveShiftService)
	suite.records = new(MockFinancialRecordService)
	suite.reporting = new(MockReportingService)
	suite.currencies = new(MockCurrencyService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Job:             suite.jobs,
		Shift:           suite.shifts,
		FinancialRecord: suite.records,
		Reporting:       suite.reporting,
		ActiveShift:     suite.active,
		Currency:        suite.currencies,
	}, nil, nil)

	suite.userID = uuid.NewString()
	suite.defaultToken = suite.generateTestToken(suite.userID)
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.defaultToken)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestMissingTokenIsRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.jobs.AssertNotCalled(suite.T(), "ListJobs")
}

func (suite *HandlerTestSuite) TestCreateJob_Success() {
	rate := decimal.NewFromInt(25)
	job := &domain.Job{JobID: "job-1", Name: "Cafe", PayType: domain.PayHourly, HourlyRate: &rate, CurrencyCode: "USD", IsActive: true}
	suite.jobs.On("CreateJob", mock.Anything, suite.userID, mock.MatchedBy(func(r dto.CreateJobRequest) bool {
		return r.Name == "Cafe" && r.PayType == domain.PayHourly && r.HourlyRate != nil && r.HourlyRate.Equal(rate)
	})).Return(job, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/jobs", `{"name":"Cafe","payType":"hourly","hourlyRate":"25","currencyCode":"USD"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.JobResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("job-1", res.JobID)
	suite.False(res.IsFixedIncome)
	suite.jobs.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateJob_RejectsUnknownPayType() {
	w := suite.do(http.MethodPost, "/api/v1/jobs", `{"name":"Cafe","payType":"weekly","currencyCode":"USD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.jobs.AssertNotCalled(suite.T(), "CreateJob")
}

func (suite *HandlerTestSuite) TestDeleteJob_WithShiftsIsConflict() {
	suite.jobs.On("DeleteJob", mock.Anything, suite.userID, "job-1", false).
		Return(apperrors.NewConflictError("job has 3 shifts")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/jobs/job-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.jobs.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteJob_CascadeFlag() {
	suite.jobs.On("DeleteJob", mock.Anything, suite.userID, "job-1", true).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/jobs/job-1?deleteShifts=true", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.jobs.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateShift_Success() {
	jobID := "job-1"
	earned := decimal.RequireFromString("212.50")
	shift := &domain.Shift{
		ShiftID:     "shift-1",
		JobID:       &jobID,
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "22:00",
		EndTime:     "06:30",
		IsOvernight: true,
		Status:      domain.StatusPlanned,
		ShiftType:   domain.ShiftWork,
		EarningsSnapshot: domain.EarningsSnapshot{
			ActualEarnings:   &earned,
			EarningsCurrency: "USD",
		},
	}
	suite.shifts.On("CreateShift", mock.Anything, suite.userID, mock.MatchedBy(func(in domain.ShiftEditIntent) bool {
		p := in.Patch
		return p.JobID != nil && *p.JobID == jobID &&
			p.Date != nil && p.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) &&
			*p.StartTime == "22:00" && *p.EndTime == "06:30" &&
			*p.Status == domain.StatusPlanned && *p.ShiftType == domain.ShiftWork &&
			p.PayOverride != nil && p.PayOverride.Type == domain.OverrideNone
	})).Return(shift, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts", `{"jobID":"job-1","date":"2024-03-15","startTime":"22:00","endTime":"06:30"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.ShiftResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("shift-1", res.ShiftID)
	suite.True(res.IsOvernight)
	suite.Equal("$212.50", res.EarningsFormatted)
	suite.shifts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateShift_RejectsBadClockTime() {
	w := suite.do(http.MethodPost, "/api/v1/shifts", `{"date":"2024-03-15","startTime":"25:00","endTime":"06:30"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.shifts.AssertNotCalled(suite.T(), "CreateShift")
}

func (suite *HandlerTestSuite) TestUpdateShift_ExplicitNullClearsActualHours() {
	shift := &domain.Shift{ShiftID: "shift-1", Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	suite.shifts.On("UpdateShift", mock.Anything, suite.userID, "shift-1", mock.MatchedBy(func(in domain.ShiftEditIntent) bool {
		p := in.Patch
		return p.ActualHours != nil && p.ActualHours.Value == nil && p.ScheduledHours == nil && p.Notes == nil
	})).Return(shift, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/shifts/shift-1", `{"actualHours":null}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.shifts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateShift_NotFound() {
	suite.shifts.On("UpdateShift", mock.Anything, suite.userID, "missing", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("shift not found")).Once()

	w := suite.do(http.MethodPatch, "/api/v1/shifts/missing", `{"notes":"late"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListShifts_ReturnsNextToken() {
	next := "token-2"
	suite.shifts.On("ListShifts", mock.Anything, suite.userID, mock.MatchedBy(func(p dto.ListShiftsParams) bool {
		return p.Limit == 50 && p.From == "2024-03-01"
	})).Return([]domain.Shift{{ShiftID: "a"}, {ShiftID: "b"}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts?from=2024-03-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListShiftsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Shifts, 2)
	suite.Require().NotNil(res.NextToken)
	suite.Equal(next, *res.NextToken)
}

func (suite *HandlerTestSuite) TestPreviewEarnings_NotCalculable() {
	suite.shifts.On("PreviewEarnings", mock.Anything, suite.userID, mock.Anything).Return(nil, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/preview", `{"startTime":"09:00","endTime":"17:00"}`)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.EarningsPreviewResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Calculable)
	suite.Nil(res.Amount)
}

func (suite *HandlerTestSuite) TestPreviewEarnings_Priced() {
	m := decimal.RequireFromString("1.5")
	suite.shifts.On("PreviewEarnings", mock.Anything, suite.userID, mock.Anything).Return(&domain.ResolvedEarnings{
		Amount:       decimal.RequireFromString("337.50"),
		CurrencyCode: "USD",
		Source:       domain.SourceJobHourly,
		Multiplier:   &m,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/preview", `{"jobID":"job-1","scheduledHours":9,"isHoliday":true,"holidayMultiplier":1.5}`)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.EarningsPreviewResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Calculable)
	suite.Equal("$337.50", res.Formatted)
	suite.Equal(string(domain.SourceJobHourly), res.Source)
}

func activeNightShift() *domain.ActiveShift {
	return &domain.ActiveShift{
		Entry: domain.Shift{ShiftID: "night", Date: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), StartTime: "22:00", EndTime: "06:00"},
		ShiftWindow: domain.ShiftWindow{
			StartDateTime: time.Date(2024, 3, 14, 22, 0, 0, 0, time.UTC),
			EndDateTime:   time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC),
			Status:        domain.WindowActive,
			IsOvernight:   true,
		},
	}
}

func (suite *HandlerTestSuite) TestGetActiveShift() {
	countdown := &domain.Countdown{RemainingMs: 4 * 3_600_000, Hours: 4}
	suite.active.On("CurrentShift", mock.Anything, suite.userID, mock.AnythingOfType("time.Time")).
		Return(activeNightShift(), countdown, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts/active", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ActiveShiftResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Found)
	suite.Equal("night", res.Shift.ShiftID)
	suite.Equal(domain.WindowActive, res.Status)
	suite.Equal("04:00:00", res.Remaining)
}

func (suite *HandlerTestSuite) TestGetActiveShift_NoneFound() {
	suite.active.On("CurrentShift", mock.Anything, suite.userID, mock.Anything).Return(nil, nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts/active", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"found":false,"isOvernight":false}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestStreamActiveShift_SendsShiftEvent() {
	suite.active.On("WatchShift", mock.Anything, suite.userID, suite.cfg.ShiftRedetectInterval, mock.Anything).
		Run(func(args mock.Arguments) {
			onChange := args.Get(3).(func(*domain.ActiveShift))
			onChange(activeNightShift())
		}).
		Return(nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/api/v1/shifts/active/stream", nil)
	req.Header.Set("Authorization", "Bearer "+suite.defaultToken)
	w := newCloseNotifyingRecorder()
	suite.router.ServeHTTP(w, req)

	body := w.Body.String()
	suite.Contains(body, "event:shift")
	suite.Contains(body, `"shiftID":"night"`)
	suite.active.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListRecords_RejectsInvertedPeriod() {
	w := suite.do(http.MethodGet, "/api/v1/records?from=2024-03-10&to=2024-03-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.records.AssertNotCalled(suite.T(), "ListRecords")
}

func (suite *HandlerTestSuite) TestCreateRecord_Success() {
	record := &domain.FinancialRecord{
		RecordID:     "rec-1",
		Type:         domain.RecordExpense,
		Amount:       decimal.NewFromInt(20),
		CurrencyCode: "USD",
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Status:       domain.RecordCompleted,
	}
	suite.records.On("CreateRecord", mock.Anything, suite.userID, mock.MatchedBy(func(r dto.CreateFinancialRecordRequest) bool {
		return r.Type == domain.RecordExpense && r.Amount.Equal(decimal.NewFromInt(20))
	})).Return(record, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/records", `{"type":"expense","amount":"20","currencyCode":"USD","date":"2024-03-05"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.FinancialRecordResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("$20.00", res.Formatted)
	suite.Equal("2024-03-05", res.Date)
}

func (suite *HandlerTestSuite) TestEarningsReport() {
	period := domain.Period{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	summary := &domain.EarningsSummary{
		Period:          period,
		ShiftIncome:     domain.CurrencyTotals{"USD": decimal.NewFromInt(80), "EUR": decimal.NewFromInt(50)},
		FixedIncome:     domain.CurrencyTotals{},
		OtherIncome:     domain.CurrencyTotals{},
		Expenses:        domain.CurrencyTotals{"USD": decimal.NewFromInt(20)},
		Expected:        domain.CurrencyTotals{},
		Net:             domain.CurrencyTotals{"USD": decimal.NewFromInt(60), "EUR": decimal.NewFromInt(50)},
		Currencies:      []string{"EUR", "USD"},
		MixedCurrencies: true,
	}
	suite.reporting.On("EarningsSummary", mock.Anything, suite.userID, period).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/earnings?from=2024-03-01&to=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.EarningsReportResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("2024-03-31", res.To)
	suite.True(res.MixedCurrencies)
	suite.Require().Len(res.Currencies, 2)
	suite.Equal("USD", res.Currencies[1].CurrencyCode)
	suite.Equal("$60.00", res.Currencies[1].Net.Formatted)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestReportingFailureIsHidden() {
	suite.reporting.On("EarningsSummary", mock.Anything, suite.userID, mock.Anything).
		Return(nil, context.DeadlineExceeded).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/earnings", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to generate report"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestFormatAmount() {
	suite.currencies.On("Format", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("1234.5"))
	}), "EUR").Return("€1,234.50").Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies/format", map[string]any{"amount": "1234.5", "currencyCode": "EUR"})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"formatted":"€1,234.50","symbol":"€"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCurrency_NotFound() {
	suite.currencies.On("GetCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.NewNotFoundError("currency XXX not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/XXX", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
