package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ztrack_backend/internal/apperror"
	"ztrack_backend/internal/dto"
	"ztrack_backend/internal/model"
)

type mockExamRepo struct {
	exams            map[primitive.ObjectID]*model.Exam
	calls            int
	lastUpdateFields bson.M
}

func newMockExamRepo() *mockExamRepo {
	return &mockExamRepo{exams: make(map[primitive.ObjectID]*model.Exam)}
}

func (m *mockExamRepo) Insert(_ context.Context, exam *model.Exam) (primitive.ObjectID, error) {
	m.calls++
	id := primitive.NewObjectID()
	stored := *exam
	stored.ID = id
	m.exams[id] = &stored
	return id, nil
}

func (m *mockExamRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Exam, error) {
	m.calls++
	exam, ok := m.exams[id]
	if !ok {
		return nil, nil
	}
	copy := *exam
	return &copy, nil
}

func (m *mockExamRepo) FindByStudentID(_ context.Context, studentID string) ([]model.Exam, error) {
	m.calls++
	result := make([]model.Exam, 0)
	for _, e := range m.exams {
		if e.StudentID == studentID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockExamRepo) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	m.calls++
	m.lastUpdateFields = fields
	exam, ok := m.exams[id]
	if !ok {
		return 0, nil
	}
	changed := false
	if subject, ok := fields["subject"]; ok && exam.Subject != subject.(string) {
		exam.Subject = subject.(string)
		changed = true
	}
	if score, ok := fields["score"]; ok && exam.Score != score.(float64) {
		exam.Score = score.(float64)
		changed = true
	}
	if changed {
		return 1, nil
	}
	return 0, nil
}

func (m *mockExamRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.calls++
	if _, ok := m.exams[id]; !ok {
		return false, nil
	}
	delete(m.exams, id)
	return true, nil
}

func newExamService(t *testing.T) (ExamService, *mockExamRepo, *mockStudentRepo) {
	t.Helper()
	examRepo := newMockExamRepo()
	studentRepo := newMockStudentRepo()
	svc := NewExamService(examRepo, studentRepo)
	return svc, examRepo, studentRepo
}

func seedExam(repo *mockExamRepo, studentID, subject string, score float64, date time.Time) primitive.ObjectID {
	id := primitive.NewObjectID()
	repo.exams[id] = &model.Exam{
		ID:        id,
		StudentID: studentID,
		Subject:   subject,
		Score:     score,
		ExamDate:  date,
	}
	return id
}

func TestExamCreate(t *testing.T) {
	svc, _, studentRepo := newExamService(t)
	studentID := seedStudent(studentRepo, "70203040", "ana@x.com")

	resp, err := svc.Create(context.Background(), dto.ExamCreateRequest{
		StudentID: studentID.Hex(),
		Subject:   "Math",
		Score:     floatPtr(18.5),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, studentID.Hex(), resp.StudentID)
	assert.Equal(t, 18.5, resp.Score)
	assert.NotEmpty(t, resp.ExamDate)
}

func TestExamCreate_StampsServerDate(t *testing.T) {
	svc, _, studentRepo := newExamService(t)
	studentID := seedStudent(studentRepo, "70203040", "ana@x.com")

	before := time.Now().UTC()
	resp, err := svc.Create(context.Background(), dto.ExamCreateRequest{
		StudentID: studentID.Hex(),
		Subject:   "Math",
		Score:     floatPtr(12),
	})
	require.NoError(t, err)

	stamped, err := time.Parse(time.RFC3339, resp.ExamDate)
	require.NoError(t, err)
	assert.WithinDuration(t, before, stamped, 5*time.Second)
}

func TestExamCreate_InvalidStudentID(t *testing.T) {
	svc, examRepo, _ := newExamService(t)

	_, err := svc.Create(context.Background(), dto.ExamCreateRequest{
		StudentID: "garbage",
		Subject:   "Math",
		Score:     floatPtr(10),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidID))
	assert.Zero(t, examRepo.calls)
}

func TestExamCreate_StudentMissing(t *testing.T) {
	svc, examRepo, _ := newExamService(t)

	_, err := svc.Create(context.Background(), dto.ExamCreateRequest{
		StudentID: primitive.NewObjectID().Hex(),
		Subject:   "Math",
		Score:     floatPtr(10),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrStudentMissing))
	assert.Empty(t, examRepo.exams, "exam collection must stay unchanged")
}

func TestExamListByStudent(t *testing.T) {
	svc, examRepo, _ := newExamService(t)
	studentA := primitive.NewObjectID().Hex()
	studentB := primitive.NewObjectID().Hex()
	seedExam(examRepo, studentA, "Math", 15, time.Now())
	seedExam(examRepo, studentA, "History", 11.5, time.Now())
	seedExam(examRepo, studentB, "Math", 8, time.Now())

	exams, err := svc.ListByStudent(context.Background(), studentA)
	require.NoError(t, err)
	assert.Len(t, exams, 2)
	for _, e := range exams {
		assert.Equal(t, studentA, e.StudentID)
	}
}

func TestExamListByStudent_InvalidID(t *testing.T) {
	svc, examRepo, _ := newExamService(t)

	_, err := svc.ListByStudent(context.Background(), "???")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidID))
	assert.Zero(t, examRepo.calls)
}

func TestExamUpdate_OnlySubjectAndScore(t *testing.T) {
	svc, examRepo, _ := newExamService(t)
	date := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	id := seedExam(examRepo, primitive.NewObjectID().Hex(), "Math", 15, date)

	resp, modified, err := svc.Update(context.Background(), id.Hex(), dto.ExamUpdateRequest{
		Subject: "Algebra",
		Score:   floatPtr(17),
	})
	require.NoError(t, err)
	assert.True(t, modified)
	assert.Equal(t, "Algebra", resp.Subject)
	assert.Equal(t, 17.0, resp.Score)

	// The update document may never touch the date or the student reference.
	assert.Len(t, examRepo.lastUpdateFields, 2)
	assert.Contains(t, examRepo.lastUpdateFields, "subject")
	assert.Contains(t, examRepo.lastUpdateFields, "score")
	assert.Equal(t, date.Format(time.RFC3339), resp.ExamDate)
}

func TestExamUpdate_NoChanges(t *testing.T) {
	svc, examRepo, _ := newExamService(t)
	date := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	id := seedExam(examRepo, primitive.NewObjectID().Hex(), "Math", 15, date)

	resp, modified, err := svc.Update(context.Background(), id.Hex(), dto.ExamUpdateRequest{
		Subject: "Math",
		Score:   floatPtr(15),
	})
	require.NoError(t, err)
	assert.False(t, modified)
	assert.Equal(t, date.Format(time.RFC3339), resp.ExamDate)
}

func TestExamUpdate_NotFound(t *testing.T) {
	svc, _, _ := newExamService(t)

	_, _, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), dto.ExamUpdateRequest{
		Subject: "Math",
		Score:   floatPtr(15),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestExamDelete(t *testing.T) {
	svc, examRepo, _ := newExamService(t)
	id := seedExam(examRepo, primitive.NewObjectID().Hex(), "Math", 15, time.Now())

	require.NoError(t, svc.Delete(context.Background(), id.Hex()))
	assert.Empty(t, examRepo.exams)
}

func TestExamDelete_NotFound(t *testing.T) {
	svc, _, _ := newExamService(t)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
