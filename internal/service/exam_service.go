package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"ztrack_backend/internal/apperror"
	"ztrack_backend/internal/dto"
	"ztrack_backend/internal/model"
	"ztrack_backend/internal/repository"
)

type ExamService interface {
	Create(ctx context.Context, req dto.ExamCreateRequest) (*dto.ExamResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]dto.ExamResponse, error)
	Update(ctx context.Context, id string, req dto.ExamUpdateRequest) (*dto.ExamResponse, bool, error)
	Delete(ctx context.Context, id string) error
}

type examService struct {
	repo        repository.ExamRepository
	studentRepo repository.StudentRepository // to check the owning student exists
}

func NewExamService(repo repository.ExamRepository, studentRepo repository.StudentRepository) ExamService {
	return &examService{repo: repo, studentRepo: studentRepo}
}

func (s *examService) Create(ctx context.Context, req dto.ExamCreateRequest) (*dto.ExamResponse, error) {
	oid, err := parseObjectID(req.StudentID, "student id")
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if student == nil {
		log.Warn().Str("student_id", req.StudentID).Msg("Exam creation for unknown student rejected")
		return nil, apperror.StudentMissing(req.StudentID)
	}

	exam := model.Exam{
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Score:     *req.Score,
		ExamDate:  time.Now().UTC(), // always the server clock, never the client
	}

	id, err := s.repo.Insert(ctx, &exam)
	if err != nil {
		log.Error().Err(err).Msg("Failed to insert exam")
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperror.NotFound("exam")
	}
	return mapExam(created), nil
}

func (s *examService) ListByStudent(ctx context.Context, studentID string) ([]dto.ExamResponse, error) {
	if _, err := parseObjectID(studentID, "student id"); err != nil {
		return nil, err
	}
	exams, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		resp = append(resp, *mapExam(&exams[i]))
	}
	return resp, nil
}

func (s *examService) Update(ctx context.Context, id string, req dto.ExamUpdateRequest) (*dto.ExamResponse, bool, error) {
	oid, err := parseObjectID(id, "exam id")
	if err != nil {
		return nil, false, err
	}

	// Subject and score only; exam_date and student_id stay untouched.
	fields := bson.M{
		"subject": req.Subject,
		"score":   *req.Score,
	}

	modified, err := s.repo.UpdateByID(ctx, oid, fields)
	if err != nil {
		return nil, false, err
	}
	if modified > 0 {
		updated, err := s.repo.FindByID(ctx, oid)
		if err != nil {
			return nil, false, err
		}
		if updated == nil {
			return nil, false, apperror.NotFound("exam")
		}
		return mapExam(updated), true, nil
	}

	exam, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, false, err
	}
	if exam == nil {
		return nil, false, apperror.NotFound("exam")
	}
	return mapExam(exam), false, nil
}

func (s *examService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id, "exam id")
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("exam")
	}
	return nil
}

func mapExam(exam *model.Exam) *dto.ExamResponse {
	var resp dto.ExamResponse
	copier.Copy(&resp, exam)
	resp.ID = exam.ID.Hex()
	resp.ExamDate = exam.ExamDate.Format(time.RFC3339)
	return &resp
}
