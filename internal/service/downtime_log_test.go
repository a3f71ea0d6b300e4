package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/mocks"
	"github.com/Top-Technologies/downtime/internal/repository"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DowntimeLogServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	txManager    *mocks.MockTransactionManagerInterface
	logRepo      *mocks.MockDowntimeLogRepositoryInterface
	reasonRepo   *mocks.MockDowntimeReasonRepositoryInterface
	userRepo     *mocks.MockUserRepositoryInterface
	orderRepo    *mocks.MockProductionOrderRepositoryInterface
	sequenceRepo *mocks.MockSequenceRepositoryInterface
	messageRepo  *mocks.MockMessageRepositoryInterface
	activityRepo *mocks.MockActivityRepositoryInterface
	audit        *mocks.MockAuditLogger
	scheduler    *mocks.MockTaskScheduler
	service      *service.DowntimeLogService

	reporter    *models.User
	reviewer    *models.User
	otherUser   *models.User
	reason      *models.DowntimeReason
	otherReason *models.DowntimeReason
	start       time.Time
}

func (suite *DowntimeLogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.txManager = mocks.NewMockTransactionManagerInterface(suite.ctrl)
	suite.logRepo = mocks.NewMockDowntimeLogRepositoryInterface(suite.ctrl)
	suite.reasonRepo = mocks.NewMockDowntimeReasonRepositoryInterface(suite.ctrl)
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.orderRepo = mocks.NewMockProductionOrderRepositoryInterface(suite.ctrl)
	suite.sequenceRepo = mocks.NewMockSequenceRepositoryInterface(suite.ctrl)
	suite.messageRepo = mocks.NewMockMessageRepositoryInterface(suite.ctrl)
	suite.activityRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.audit = mocks.NewMockAuditLogger(suite.ctrl)
	suite.scheduler = mocks.NewMockTaskScheduler(suite.ctrl)
	suite.service = suite.newService(false)

	suite.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	suite.reporter = newTestUser("alice", "Alice Operator")
	suite.reviewer = newTestUser("bob", "Bob Supervisor")
	suite.otherUser = newTestUser("carol", "Carol Planner")
	suite.reason = newTestReason("Conveyor jam", models.DowntimeCategoryMechanical, *suite.reviewer, *suite.otherUser)
	suite.otherReason = newTestReason("Power outage", models.DowntimeCategoryElectrical, *suite.otherUser)
	suite.start = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func (suite *DowntimeLogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DowntimeLogServiceTestSuite) newService(enforceEndAfterStart bool) *service.DowntimeLogService {
	return service.NewDowntimeLogService(service.DowntimeLogDeps{
		TxManager:            suite.txManager,
		LogRepo:              suite.logRepo,
		ReasonRepo:           suite.reasonRepo,
		UserRepo:             suite.userRepo,
		OrderRepo:            suite.orderRepo,
		SequenceRepo:         suite.sequenceRepo,
		MessageRepo:          suite.messageRepo,
		ActivityRepo:         suite.activityRepo,
		Audit:                suite.audit,
		Scheduler:            suite.scheduler,
		Validator:            validator.New(),
		EnforceEndAfterStart: enforceEndAfterStart,
	})
}

func newTestUser(login, name string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Login:     login,
		Name:      name,
		Active:    true,
	}
}

func newTestReason(name string, category models.DowntimeCategory, responsible ...models.User) *models.DowntimeReason {
	return &models.DowntimeReason{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             name,
		Category:         category,
		DepartmentID:     uuid.New(),
		NotificationType: models.NotificationTypeActivity,
		Active:           true,
		ResponsibleUsers: responsible,
	}
}

// draftLog builds a 75 minute draft reported by the suite reporter
func (suite *DowntimeLogServiceTestSuite) draftLog() *models.DowntimeLog {
	log := models.NewDowntimeLog(suite.reporter.ID)
	log.ID = uuid.New()
	log.Reference = "DT/00001"
	log.StartTime = suite.start
	log.EndTime = suite.start.Add(75 * time.Minute)
	log.ReasonID = suite.reason.ID
	log.Reason = *suite.reason
	log.ReportedBy = *suite.reporter
	log.ComputeDuration()
	return log
}

func (suite *DowntimeLogServiceTestSuite) submittedLog() *models.DowntimeLog {
	log := suite.draftLog()
	log.MarkSubmitted()
	return log
}

func (suite *DowntimeLogServiceTestSuite) expectActor(user *models.User) {
	suite.userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
}

func (suite *DowntimeLogServiceTestSuite) expectLocked(log *models.DowntimeLog) {
	suite.logRepo.EXPECT().GetForUpdate(gomock.Any(), log.ID).Return(log, nil)
}

func (suite *DowntimeLogServiceTestSuite) createRequest() *service.CreateDowntimeLogRequest {
	end := suite.start.Add(75 * time.Minute)
	return &service.CreateDowntimeLogRequest{
		StartTime:   &suite.start,
		EndTime:     &end,
		ReasonID:    suite.reason.ID,
		Description: "Belt slipped off the drive roller",
	}
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_AssignsSequenceReference() {
	req := suite.createRequest()
	logID := uuid.New()

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.sequenceRepo.EXPECT().NextByCode(gomock.Any(), models.SequenceCodeDowntime).Return("DT/00042", nil)
	suite.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.DowntimeLog) error {
			assert.Equal(suite.T(), models.DowntimeStateDraft, log.State)
			assert.True(suite.T(), log.IsEditable)
			assert.False(suite.T(), log.WasSubmitted)
			assert.Equal(suite.T(), "alice", log.CreatedBy)
			log.ID = logID
			return nil
		})
	suite.audit.EXPECT().PostNote(gomock.Any(), models.ResModelDowntimeLog, logID, suite.reporter, "Downtime Log created by Alice Operator").Return(nil)

	resp, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "DT/00042", resp.Reference)
	assert.Equal(suite.T(), 75.0, resp.DurationMinutes)
	assert.Equal(suite.T(), models.DowntimeCategoryMechanical, resp.Category)
	assert.Equal(suite.T(), "Conveyor jam", resp.ReasonName)
	assert.Len(suite.T(), resp.ResponsibleUsers, 2)
	assert.True(suite.T(), resp.IsReporter)
	assert.False(suite.T(), resp.IsResponsible)
	assert.False(suite.T(), resp.EndBeforeStart)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_PendingReferenceUsesSequence() {
	req := suite.createRequest()
	req.Reference = "New"

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.sequenceRepo.EXPECT().NextByCode(gomock.Any(), models.SequenceCodeDowntime).Return("DT/00007", nil)
	suite.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "DT/00007", resp.Reference)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_ExplicitReferenceKept() {
	req := suite.createRequest()
	req.Reference = "LINE2-001"

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.logRepo.EXPECT().GetByReference(gomock.Any(), "LINE2-001").Return(nil, gorm.ErrRecordNotFound)
	suite.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "LINE2-001", resp.Reference)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_DuplicateReference() {
	req := suite.createRequest()
	req.Reference = "DT/00001"

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.logRepo.EXPECT().GetByReference(gomock.Any(), "DT/00001").Return(suite.draftLog(), nil)

	resp, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDowntimeLogExists)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_WithProductionOrder() {
	order := &models.ProductionOrder{BaseModel: models.BaseModel{ID: uuid.New()}, Reference: "WH/MO/00012"}
	req := suite.createRequest()
	req.ProductionOrderID = &order.ID

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
	suite.sequenceRepo.EXPECT().NextByCode(gomock.Any(), models.SequenceCodeDowntime).Return("DT/00003", nil)
	suite.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), &order.ID, resp.ProductionOrderID)
	assert.Equal(suite.T(), "WH/MO/00012", resp.ProductionOrderRef)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_UnknownProductionOrder() {
	orderID := uuid.New()
	req := suite.createRequest()
	req.ProductionOrderID = &orderID

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.orderRepo.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "production_order_id")
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_UnknownReason() {
	req := suite.createRequest()

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "reason_id")
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_InactiveReason() {
	suite.reason.Active = false
	req := suite.createRequest()

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)

	_, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInactiveReason)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_MissingActingUser() {
	_, err := suite.service.Create(context.Background(), uuid.Nil, suite.createRequest())
	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingActingUser)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_UnknownActingUser() {
	actorID := uuid.New()
	suite.userRepo.EXPECT().GetByID(gomock.Any(), actorID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(context.Background(), actorID, suite.createRequest())

	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_MissingStartTime() {
	req := suite.createRequest()
	req.StartTime = nil

	_, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "start_time")
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_EndBeforeStartAllowedByDefault() {
	req := suite.createRequest()
	end := suite.start.Add(-30 * time.Minute)
	req.EndTime = &end

	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.sequenceRepo.EXPECT().NextByCode(gomock.Any(), models.SequenceCodeDowntime).Return("DT/00002", nil)
	suite.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Create(context.Background(), suite.reporter.ID, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), -30.0, resp.DurationMinutes)
	assert.True(suite.T(), resp.EndBeforeStart)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_EndBeforeStartRejectedWhenEnforced() {
	svc := suite.newService(true)
	req := suite.createRequest()
	end := suite.start.Add(-30 * time.Minute)
	req.EndTime = &end

	_, err := svc.Create(context.Background(), suite.reporter.ID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEndBeforeStart)
}

func (suite *DowntimeLogServiceTestSuite) TestCreate_RepositoryErrorRollsBack() {
	suite.expectActor(suite.reporter)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.reason.ID).Return(suite.reason, nil)
	suite.sequenceRepo.EXPECT().NextByCode(gomock.Any(), models.SequenceCodeDowntime).Return("DT/00002", nil)
	suite.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := suite.service.Create(context.Background(), suite.reporter.ID, suite.createRequest())

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "insert failed")
}

func (suite *DowntimeLogServiceTestSuite) TestSubmit_SchedulesReviewForEachResponsibleUser() {
	log := suite.draftLog()

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), models.ResModelDowntimeLog, log.ID, suite.reporter, "Downtime submitted by Alice Operator").Return(nil)
	suite.scheduler.EXPECT().ScheduleActivity(gomock.Any(), models.ResModelDowntimeLog, log.ID, suite.reviewer.ID, "Downtime requires review", "Downtime reported: Conveyor jam").Return(nil)
	suite.scheduler.EXPECT().ScheduleActivity(gomock.Any(), models.ResModelDowntimeLog, log.ID, suite.otherUser.ID, "Downtime requires review", "Downtime reported: Conveyor jam").Return(nil)

	resp, err := suite.service.Submit(context.Background(), suite.reporter.ID, log.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateSubmitted, resp.State)
	assert.False(suite.T(), resp.IsEditable)
	assert.True(suite.T(), resp.WasSubmitted)
}

func (suite *DowntimeLogServiceTestSuite) TestSubmit_NoActivitiesWithoutActivityNotification() {
	log := suite.draftLog()
	log.Reason.NotificationType = ""

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Submit(context.Background(), suite.reporter.ID, log.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateSubmitted, resp.State)
}

func (suite *DowntimeLogServiceTestSuite) TestSubmit_ApprovedLogIsResubmitted() {
	log := suite.submittedLog()
	log.MarkApproved()

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	suite.scheduler.EXPECT().ScheduleActivity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	resp, err := suite.service.Submit(context.Background(), suite.reporter.ID, log.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateSubmitted, resp.State)
}

func (suite *DowntimeLogServiceTestSuite) TestSubmit_NotFound() {
	id := uuid.New()
	suite.expectActor(suite.reporter)
	suite.logRepo.EXPECT().GetForUpdate(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Submit(context.Background(), suite.reporter.ID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDowntimeLogNotFound)
}

func (suite *DowntimeLogServiceTestSuite) TestSubmit_SchedulerErrorFailsTransaction() {
	log := suite.draftLog()

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	suite.scheduler.EXPECT().ScheduleActivity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("activity insert failed"))

	_, err := suite.service.Submit(context.Background(), suite.reporter.ID, log.ID)

	assert.Error(suite.T(), err)
}

func (suite *DowntimeLogServiceTestSuite) TestEdit_ReporterUnlocks() {
	log := suite.submittedLog()

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), models.ResModelDowntimeLog, log.ID, suite.reporter, "Downtime unlocked for editing by Alice Operator").Return(nil)

	resp, err := suite.service.Edit(context.Background(), suite.reporter.ID, log.ID)

	suite.Require().NoError(err)
	assert.True(suite.T(), resp.IsEditable)
	assert.Equal(suite.T(), models.DowntimeStateSubmitted, resp.State)
}

func (suite *DowntimeLogServiceTestSuite) TestEdit_OnlyReporter() {
	log := suite.submittedLog()

	suite.expectActor(suite.reviewer)
	suite.expectLocked(log)

	resp, err := suite.service.Edit(context.Background(), suite.reviewer.ID, log.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOnlyReporterCanEdit)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.False(suite.T(), log.IsEditable)
}

func (suite *DowntimeLogServiceTestSuite) TestApprove_ResponsibleUser() {
	log := suite.submittedLog()

	suite.expectActor(suite.reviewer)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), models.ResModelDowntimeLog, log.ID, suite.reviewer, "Downtime approved by Bob Supervisor").Return(nil)

	resp, err := suite.service.Approve(context.Background(), suite.reviewer.ID, log.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateApproved, resp.State)
	assert.False(suite.T(), resp.IsEditable)
	assert.True(suite.T(), resp.IsResponsible)
	assert.False(suite.T(), resp.IsReporter)
}

func (suite *DowntimeLogServiceTestSuite) TestApprove_ReporterIsNotResponsible() {
	log := suite.submittedLog()

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)

	_, err := suite.service.Approve(context.Background(), suite.reporter.ID, log.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOnlyResponsibleCanApprove)
	assert.Equal(suite.T(), models.DowntimeStateSubmitted, log.State)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdateSubmit_LocksAndRenotifies() {
	log := suite.submittedLog()
	log.Unlock()
	log.State = models.DowntimeStateNeedsUpdate

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), models.ResModelDowntimeLog, log.ID, suite.reporter, "Downtime updated by Alice Operator").Return(nil)
	suite.scheduler.EXPECT().ScheduleActivity(gomock.Any(), models.ResModelDowntimeLog, log.ID, gomock.Any(), "Downtime updated", "Downtime log was modified after submission").Return(nil).Times(2)

	resp, err := suite.service.UpdateSubmit(context.Background(), suite.reporter.ID, log.ID)

	suite.Require().NoError(err)
	assert.False(suite.T(), resp.IsEditable)
	assert.Equal(suite.T(), models.DowntimeStateNeedsUpdate, resp.State)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdate_DraftEditIsSilent() {
	log := suite.draftLog()
	desc := "Drive roller replaced"

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)

	resp, err := suite.service.Update(context.Background(), suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{Description: &desc})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateDraft, resp.State)
	assert.Equal(suite.T(), desc, resp.Description)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdate_LockedSubmittedLogKeepsState() {
	log := suite.submittedLog()
	desc := "Drive roller replaced"

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)

	resp, err := suite.service.Update(context.Background(), suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{Description: &desc})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateSubmitted, resp.State)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdate_UnlockedSubmittedLogNeedsUpdate() {
	log := suite.submittedLog()
	log.Unlock()
	end := log.EndTime.Add(15 * time.Minute)

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)
	suite.audit.EXPECT().PostNote(gomock.Any(), models.ResModelDowntimeLog, log.ID, suite.reporter, "Downtime modified by Alice Operator, requires re-submission").Return(nil)

	resp, err := suite.service.Update(context.Background(), suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{EndTime: &end})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateNeedsUpdate, resp.State)
	assert.Equal(suite.T(), 90.0, resp.DurationMinutes)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdate_NoChangeSkipsWrite() {
	log := suite.submittedLog()
	log.Unlock()
	desc := log.Description
	reasonID := log.ReasonID

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)

	resp, err := suite.service.Update(context.Background(), suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{
		Description: &desc,
		ReasonID:    &reasonID,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.DowntimeStateSubmitted, resp.State)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdate_InactiveReasonRejected() {
	log := suite.draftLog()
	suite.otherReason.Active = false

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.otherReason.ID).Return(suite.otherReason, nil)

	_, err := suite.service.Update(context.Background(), suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{ReasonID: &suite.otherReason.ID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInactiveReason)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdate_ClearProductionOrder() {
	orderID := uuid.New()
	log := suite.draftLog()
	log.ProductionOrderID = &orderID
	log.ProductionOrder = &models.ProductionOrder{BaseModel: models.BaseModel{ID: orderID}, Reference: "WH/MO/00001"}

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil)

	resp, err := suite.service.Update(context.Background(), suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{ClearProductionOrder: true})

	suite.Require().NoError(err)
	assert.Nil(suite.T(), resp.ProductionOrderID)
	assert.Empty(suite.T(), resp.ProductionOrderRef)
}

func (suite *DowntimeLogServiceTestSuite) TestUpdate_EndBeforeStartRejectedWhenEnforced() {
	svc := suite.newService(true)
	log := suite.draftLog()
	end := suite.start.Add(-time.Minute)

	suite.expectActor(suite.reporter)
	suite.expectLocked(log)

	_, err := svc.Update(context.Background(), suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{EndTime: &end})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEndBeforeStart)
}

// Reported, submitted, edited while locked, then unlocked and re-classified.
func (suite *DowntimeLogServiceTestSuite) TestWorkflow_EditAfterSubmission() {
	log := suite.draftLog()
	suite.Require().Equal(75.0, log.DurationMinutes)

	suite.userRepo.EXPECT().GetByID(gomock.Any(), suite.reporter.ID).Return(suite.reporter, nil).AnyTimes()
	suite.logRepo.EXPECT().GetForUpdate(gomock.Any(), log.ID).Return(log, nil).AnyTimes()
	suite.logRepo.EXPECT().Update(gomock.Any(), log).Return(nil).AnyTimes()
	suite.audit.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	suite.scheduler.EXPECT().ScheduleActivity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	suite.reasonRepo.EXPECT().GetByID(gomock.Any(), suite.otherReason.ID).Return(suite.otherReason, nil)

	ctx := context.Background()

	resp, err := suite.service.Submit(ctx, suite.reporter.ID, log.ID)
	suite.Require().NoError(err)
	suite.Equal(models.DowntimeStateSubmitted, resp.State)
	suite.True(resp.WasSubmitted)

	desc := "Operator note added"
	resp, err = suite.service.Update(ctx, suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{Description: &desc})
	suite.Require().NoError(err)
	suite.Equal(models.DowntimeStateSubmitted, resp.State)

	resp, err = suite.service.Edit(ctx, suite.reporter.ID, log.ID)
	suite.Require().NoError(err)
	suite.True(resp.IsEditable)

	resp, err = suite.service.Update(ctx, suite.reporter.ID, log.ID, &service.UpdateDowntimeLogRequest{ReasonID: &suite.otherReason.ID})
	suite.Require().NoError(err)
	suite.Equal(models.DowntimeStateNeedsUpdate, resp.State)
	suite.Equal(models.DowntimeCategoryElectrical, resp.Category)
	suite.Equal("Power outage", resp.ReasonName)
}

func (suite *DowntimeLogServiceTestSuite) TestGetByID_ViewerFlags() {
	log := suite.submittedLog()
	suite.logRepo.EXPECT().GetByID(gomock.Any(), log.ID).Return(log, nil)

	resp, err := suite.service.GetByID(context.Background(), suite.otherUser.ID, log.ID)

	suite.Require().NoError(err)
	assert.False(suite.T(), resp.IsReporter)
	assert.True(suite.T(), resp.IsResponsible)
	assert.Equal(suite.T(), "alice", resp.ReportedBy.Login)
}

func (suite *DowntimeLogServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.logRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(context.Background(), suite.reporter.ID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDowntimeLogNotFound)
}

func (suite *DowntimeLogServiceTestSuite) TestList_MapsViewerFilters() {
	viewer := suite.reviewer.ID
	suite.logRepo.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repository.DowntimeLogFilter) ([]models.DowntimeLog, int64, error) {
			assert.Equal(suite.T(), models.DowntimeStateSubmitted, filter.State)
			assert.Equal(suite.T(), &viewer, filter.ResponsibleUserID)
			assert.Equal(suite.T(), &viewer, filter.ReportedByID)
			assert.Equal(suite.T(), 10, filter.Limit)
			assert.Equal(suite.T(), 10, filter.Offset)
			return []models.DowntimeLog{*suite.submittedLog()}, int64(11), nil
		})

	resp, err := suite.service.List(context.Background(), viewer, &service.ListDowntimeLogsRequest{
		State:        models.DowntimeStateSubmitted,
		ReportedByMe: true,
		ToReview:     true,
		Page:         2,
		PageSize:     10,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(11), resp.Total)
	assert.Equal(suite.T(), 2, resp.Page)
	assert.Len(suite.T(), resp.DowntimeLogs, 1)
	assert.True(suite.T(), resp.DowntimeLogs[0].IsResponsible)
}

func (suite *DowntimeLogServiceTestSuite) TestList_DefaultPagination() {
	suite.logRepo.EXPECT().List(gomock.Any(), repository.DowntimeLogFilter{Limit: 20, Offset: 0}).Return(nil, int64(0), nil)

	resp, err := suite.service.List(context.Background(), suite.reporter.ID, nil)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Empty(suite.T(), resp.DowntimeLogs)
}

func (suite *DowntimeLogServiceTestSuite) TestList_InvalidState() {
	_, err := suite.service.List(context.Background(), suite.reporter.ID, &service.ListDowntimeLogsRequest{State: "closed"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
}

func (suite *DowntimeLogServiceTestSuite) TestGetMessages() {
	log := suite.draftLog()
	suite.logRepo.EXPECT().GetByID(gomock.Any(), log.ID).Return(log, nil)
	suite.messageRepo.EXPECT().ListByRecord(gomock.Any(), models.ResModelDowntimeLog, log.ID).Return([]models.Message{
		{Body: "Downtime Log created by Alice Operator", Author: suite.reporter},
		{Body: "System note"},
	}, nil)

	msgs, err := suite.service.GetMessages(context.Background(), log.ID)

	suite.Require().NoError(err)
	suite.Require().Len(msgs, 2)
	assert.Equal(suite.T(), "alice", msgs[0].Author.Login)
	assert.Nil(suite.T(), msgs[1].Author)
}

func (suite *DowntimeLogServiceTestSuite) TestGetActivities_NotFound() {
	id := uuid.New()
	suite.logRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetActivities(context.Background(), id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDowntimeLogNotFound)
}

func (suite *DowntimeLogServiceTestSuite) TestGetActivities() {
	log := suite.submittedLog()
	suite.logRepo.EXPECT().GetByID(gomock.Any(), log.ID).Return(log, nil)
	suite.activityRepo.EXPECT().ListByRecord(gomock.Any(), models.ResModelDowntimeLog, log.ID).Return([]models.Activity{
		{ResModel: models.ResModelDowntimeLog, ResID: log.ID, UserID: suite.reviewer.ID, User: *suite.reviewer, Summary: "Downtime requires review", State: models.ActivityStatePlanned},
	}, nil)

	activities, err := suite.service.GetActivities(context.Background(), log.ID)

	suite.Require().NoError(err)
	suite.Require().Len(activities, 1)
	assert.Equal(suite.T(), "bob", activities[0].AssignedTo.Login)
}

func TestDowntimeLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DowntimeLogServiceTestSuite))
}
