package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	staffmodel "bperformance_backend/internals/features/operations/staff/model"
	"bperformance_backend/internals/features/scheduler/model"
	"bperformance_backend/internals/helpers"
	"bperformance_backend/internals/notifier"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingMailer struct {
	sent []string // subjects
	to   []string
	fail bool
}

func (m *recordingMailer) Send(to []string, subject, htmlBody string, attachments ...notifier.Attachment) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, subject)
	m.to = append(m.to, to...)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&staffmodel.StaffProfileModel{},
		&model.ScheduleSlotModel{},
		&model.ScheduleChangeLogModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*ApprovalService, *recordingMailer) {
	t.Helper()
	mailer := &recordingMailer{}
	svc := NewApprovalService(newTestDB(t), mailer, "http://localhost:3000", "admin@example.com")
	return svc, mailer
}

func seedStaff(t *testing.T, db *gorm.DB, name string) staffmodel.StaffProfileModel {
	t.Helper()
	staff := staffmodel.StaffProfileModel{
		StaffProfileFullName:     name,
		StaffProfileDepartmentID: uuid.New(),
		StaffProfileIsActive:     true,
		StaffProfileJoinedDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return staff
}

func testActor(name string) helper.Actor {
	return helper.Actor{ID: uuid.New(), Name: name}
}

var (
	nineAM = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tenAM  = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	eleven = time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	noon   = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
)

func proposeOfficeSlot(t *testing.T, svc *ApprovalService, staffID uuid.UUID, requester helper.Actor) (*model.ScheduleSlotModel, *model.ScheduleChangeLogModel) {
	t.Helper()
	slot, entry, err := svc.ProposeCreate(context.Background(), ProposeCreateInput{
		StaffID:   staffID,
		Location:  "Office",
		Start:     nineAM,
		End:       tenAM,
	}, requester)
	if err != nil {
		t.Fatalf("propose create: %v", err)
	}
	return slot, entry
}

func TestProposeCreateStagesPendingSlotWithUnresolvedLog(t *testing.T) {
	svc, mailer := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")

	slot, entry := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))

	if slot.ScheduleSlotStatus != model.SlotPending {
		t.Errorf("slot status = %s, want PENDING", slot.ScheduleSlotStatus)
	}
	if entry.ScheduleChangeLogAction != model.ChangeActionCreate {
		t.Errorf("log action = %s, want CREATE", entry.ScheduleChangeLogAction)
	}
	if entry.IsResolved() {
		t.Error("log entry should be unresolved immediately after propose")
	}
	if entry.ScheduleChangeLogSlotID == nil || *entry.ScheduleChangeLogSlotID != slot.ScheduleSlotID {
		t.Error("log entry should reference the staged slot")
	}

	var count int64
	svc.DB.Model(&model.ScheduleChangeLogModel{}).Count(&count)
	if count != 1 {
		t.Errorf("log entries = %d, want exactly 1 per propose", count)
	}
	if len(mailer.sent) != 1 || mailer.to[0] != "admin@example.com" {
		t.Errorf("expected one approval mail to admin@example.com, got %v -> %v", mailer.sent, mailer.to)
	}
}

func TestProposeCreateRejectsInvertedTimeRange(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")

	_, _, err := svc.ProposeCreate(context.Background(), ProposeCreateInput{
		StaffID:  staff.StaffProfileID,
		Location: "Office",
		Start:    tenAM,
		End:      nineAM,
	}, testActor("manager"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestProposeCreateUnknownStaff(t *testing.T) {
	svc, mailer := newTestService(t)

	_, _, err := svc.ProposeCreate(context.Background(), ProposeCreateInput{
		StaffID:  uuid.New(),
		Location: "Office",
		Start:    nineAM,
		End:      tenAM,
	}, testActor("manager"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var count int64
	svc.DB.Model(&model.ScheduleChangeLogModel{}).Count(&count)
	if count != 0 {
		t.Error("failed propose must not leave a log entry behind")
	}
	if len(mailer.sent) != 0 {
		t.Error("failed propose must not notify")
	}
}

func TestProposeMoveSnapshotsPreviousTimes(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, _ := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))

	// Even a move to identical times must snapshot the pre-mutation values.
	moved, entry, err := svc.ProposeMove(context.Background(), slot.ScheduleSlotID, nineAM, tenAM, testActor("manager"))
	if err != nil {
		t.Fatalf("propose move: %v", err)
	}
	if entry.ScheduleChangeLogPreviousStart == nil || !entry.ScheduleChangeLogPreviousStart.Equal(nineAM) {
		t.Errorf("previous_start = %v, want %v", entry.ScheduleChangeLogPreviousStart, nineAM)
	}
	if entry.ScheduleChangeLogPreviousEnd == nil || !entry.ScheduleChangeLogPreviousEnd.Equal(tenAM) {
		t.Errorf("previous_end = %v, want %v", entry.ScheduleChangeLogPreviousEnd, tenAM)
	}
	if moved.ScheduleSlotStatus != model.SlotPending {
		t.Errorf("moved slot status = %s, want PENDING", moved.ScheduleSlotStatus)
	}
}

func TestProposeMoveUnknownSlot(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.ProposeMove(context.Background(), uuid.New(), nineAM, tenAM, testActor("manager"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProposeDeleteSoftMarksSlot(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, _ := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))

	marked, entry, err := svc.ProposeDelete(context.Background(), slot.ScheduleSlotID, testActor("manager"))
	if err != nil {
		t.Fatalf("propose delete: %v", err)
	}
	if marked.ScheduleSlotStatus != model.SlotPendingDelete {
		t.Errorf("slot status = %s, want PENDING_DELETE", marked.ScheduleSlotStatus)
	}
	if entry.ScheduleChangeLogAction != model.ChangeActionDelete {
		t.Errorf("log action = %s, want DELETE", entry.ScheduleChangeLogAction)
	}

	// Still retrievable: deletion only happens on approval.
	if _, err := svc.SlotByID(context.Background(), slot.ScheduleSlotID); err != nil {
		t.Errorf("slot should still exist while deletion is pending: %v", err)
	}
}

func TestResolveApproveCreate(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, entry := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))

	approver := testActor("director")
	resolved, err := svc.Resolve(context.Background(), entry.ScheduleChangeLogID, DecisionApprove, approver, "looks fine")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ScheduleChangeLogApprovedByName != "director" {
		t.Errorf("approved_by_name = %q, want director", resolved.ScheduleChangeLogApprovedByName)
	}
	if resolved.ScheduleChangeLogComments != "looks fine" {
		t.Errorf("comments = %q", resolved.ScheduleChangeLogComments)
	}

	got, err := svc.SlotByID(context.Background(), slot.ScheduleSlotID)
	if err != nil {
		t.Fatalf("slot lookup: %v", err)
	}
	if got.ScheduleSlotStatus != model.SlotApproved {
		t.Errorf("slot status = %s, want APPROVED", got.ScheduleSlotStatus)
	}
}

func TestResolveRejectCreate(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, entry := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))

	if _, err := svc.Resolve(context.Background(), entry.ScheduleChangeLogID, DecisionReject, testActor("director"), ""); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got, _ := svc.SlotByID(context.Background(), slot.ScheduleSlotID)
	if got.ScheduleSlotStatus != model.SlotRejected {
		t.Errorf("slot status = %s, want REJECTED", got.ScheduleSlotStatus)
	}
}

// Scenario: an approved 09:00-10:00 slot is moved to 11:00-12:00, then the
// move is rejected. The slot must return to 09:00-10:00 APPROVED.
func TestResolveRejectUpdateRevertsTimes(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, entry := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))
	if _, err := svc.Resolve(context.Background(), entry.ScheduleChangeLogID, DecisionApprove, testActor("director"), ""); err != nil {
		t.Fatalf("approve create: %v", err)
	}

	moved, moveEntry, err := svc.ProposeMove(context.Background(), slot.ScheduleSlotID, eleven, noon, testActor("manager"))
	if err != nil {
		t.Fatalf("propose move: %v", err)
	}
	if !moved.ScheduleSlotStartTime.Equal(eleven) || !moved.ScheduleSlotEndTime.Equal(noon) {
		t.Fatal("new times must be applied optimistically at propose time")
	}

	if _, err := svc.Resolve(context.Background(), moveEntry.ScheduleChangeLogID, DecisionReject, testActor("director"), "keep original"); err != nil {
		t.Fatalf("reject move: %v", err)
	}

	got, _ := svc.SlotByID(context.Background(), slot.ScheduleSlotID)
	if !got.ScheduleSlotStartTime.Equal(nineAM) || !got.ScheduleSlotEndTime.Equal(tenAM) {
		t.Errorf("times = %v..%v, want reverted to %v..%v",
			got.ScheduleSlotStartTime, got.ScheduleSlotEndTime, nineAM, tenAM)
	}
	if got.ScheduleSlotStatus != model.SlotApproved {
		t.Errorf("slot status = %s, want APPROVED (last known good), not PENDING or REJECTED", got.ScheduleSlotStatus)
	}
}

func TestResolveApproveDeleteRemovesSlotKeepsHistory(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, createEntry := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))
	if _, err := svc.Resolve(context.Background(), createEntry.ScheduleChangeLogID, DecisionApprove, testActor("director"), ""); err != nil {
		t.Fatalf("approve create: %v", err)
	}

	_, delEntry, err := svc.ProposeDelete(context.Background(), slot.ScheduleSlotID, testActor("manager"))
	if err != nil {
		t.Fatalf("propose delete: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), delEntry.ScheduleChangeLogID, DecisionApprove, testActor("director"), "obsolete"); err != nil {
		t.Fatalf("approve delete: %v", err)
	}

	if _, err := svc.SlotByID(context.Background(), slot.ScheduleSlotID); !errors.Is(err, ErrNotFound) {
		t.Errorf("slot lookup after approved delete: err = %v, want ErrNotFound", err)
	}

	// Both log entries survive, their slot references nulled.
	entries, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history entries = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.ScheduleChangeLogSlotID != nil {
			t.Errorf("entry %s still references deleted slot", e.ScheduleChangeLogID)
		}
	}
}

// Scenario: a delete proposal on an approved slot is rejected. The slot stays
// with unchanged times, status back to APPROVED, and the entry cannot be
// resolved twice.
func TestResolveRejectDeleteCancelsDeletion(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, createEntry := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))
	if _, err := svc.Resolve(context.Background(), createEntry.ScheduleChangeLogID, DecisionApprove, testActor("director"), ""); err != nil {
		t.Fatalf("approve create: %v", err)
	}

	_, delEntry, err := svc.ProposeDelete(context.Background(), slot.ScheduleSlotID, testActor("manager"))
	if err != nil {
		t.Fatalf("propose delete: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), delEntry.ScheduleChangeLogID, DecisionReject, testActor("director"), "still needed"); err != nil {
		t.Fatalf("reject delete: %v", err)
	}

	got, err := svc.SlotByID(context.Background(), slot.ScheduleSlotID)
	if err != nil {
		t.Fatalf("slot lookup: %v", err)
	}
	if got.ScheduleSlotStatus != model.SlotApproved {
		t.Errorf("slot status = %s, want APPROVED", got.ScheduleSlotStatus)
	}
	if !got.ScheduleSlotStartTime.Equal(nineAM) || !got.ScheduleSlotEndTime.Equal(tenAM) {
		t.Error("rejecting a delete must not touch the slot times")
	}

	if _, err := svc.Resolve(context.Background(), delEntry.ScheduleChangeLogID, DecisionApprove, testActor("director"), ""); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("second resolve: err = %v, want ErrAlreadyResolved", err)
	}
}

func TestResolveTwiceFailsWithoutReRunningMutation(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	slot, entry := proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))

	if _, err := svc.Resolve(context.Background(), entry.ScheduleChangeLogID, DecisionApprove, testActor("director"), "first"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), entry.ScheduleChangeLogID, DecisionReject, testActor("impostor"), "second"); !errors.Is(err, ErrAlreadyResolved) {
		t.Fatalf("second resolve: err = %v, want ErrAlreadyResolved", err)
	}

	// First decision stands untouched.
	got, _ := svc.LogByID(context.Background(), entry.ScheduleChangeLogID)
	if got.ScheduleChangeLogApprovedByName != "director" || got.ScheduleChangeLogComments != "first" {
		t.Errorf("resolution overwritten: %q / %q", got.ScheduleChangeLogApprovedByName, got.ScheduleChangeLogComments)
	}
	slotNow, _ := svc.SlotByID(context.Background(), slot.ScheduleSlotID)
	if slotNow.ScheduleSlotStatus != model.SlotApproved {
		t.Errorf("slot status = %s, want APPROVED from first decision", slotNow.ScheduleSlotStatus)
	}
}

func TestResolveUnknownLog(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Resolve(context.Background(), uuid.New(), DecisionApprove, testActor("director"), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveInvalidDecision(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Resolve(context.Background(), uuid.New(), Decision("maybe"), testActor("director"), ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestResolveRecordsDecisionWhenSlotAlreadyGone(t *testing.T) {
	svc, _ := newTestService(t)

	entry := model.ScheduleChangeLogModel{
		ScheduleChangeLogAction:          model.ChangeActionDelete,
		ScheduleChangeLogRequestedByName: "manager",
	}
	if err := svc.DB.Create(&entry).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), entry.ScheduleChangeLogID, DecisionApprove, testActor("director"), "late sign-off")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !resolved.IsResolved() {
		t.Error("decision must be recorded even with no slot to mutate")
	}
}

func TestProposeSucceedsWhenNotificationFails(t *testing.T) {
	svc, mailer := newTestService(t)
	mailer.fail = true
	staff := seedStaff(t, svc.DB, "Dana Cole")

	slot, entry, err := svc.ProposeCreate(context.Background(), ProposeCreateInput{
		StaffID:  staff.StaffProfileID,
		Location: "Office",
		Start:    nineAM,
		End:      tenAM,
	}, testActor("manager"))
	if err != nil {
		t.Fatalf("propose must survive a notification failure: %v", err)
	}
	if slot == nil || entry == nil {
		t.Fatal("slot and log entry must be committed despite the mail error")
	}
	if _, err := svc.SlotByID(context.Background(), slot.ScheduleSlotID); err != nil {
		t.Errorf("slot not persisted: %v", err)
	}
}

func TestSlotsForRangeAndLogsForDay(t *testing.T) {
	svc, _ := newTestService(t)
	staff := seedStaff(t, svc.DB, "Dana Cole")
	proposeOfficeSlot(t, svc, staff.StaffProfileID, testActor("manager"))

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	slots, err := svc.SlotsForRange(context.Background(), from, to)
	if err != nil {
		t.Fatalf("slots for range: %v", err)
	}
	if len(slots) != 1 {
		t.Errorf("slots in range = %d, want 1", len(slots))
	}

	outside, err := svc.SlotsForRange(context.Background(), to, to.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("slots for range: %v", err)
	}
	if len(outside) != 0 {
		t.Errorf("slots outside range = %d, want 0", len(outside))
	}

	logs, err := svc.LogsForDay(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("logs for day: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("today's logs = %d, want 1", len(logs))
	}
}
