package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ztrack_backend/internal/apperror"
	"ztrack_backend/internal/dto"
	"ztrack_backend/internal/model"
	"ztrack_backend/internal/repository"
)

type StudentService interface {
	Create(ctx context.Context, req dto.StudentCreateRequest) (*dto.StudentResponse, error)
	List(ctx context.Context, limit int64) ([]dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	// Update reports whether the stored document actually changed, so the
	// caller can tell "updated" apart from "no changes".
	Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (*dto.StudentResponse, bool, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (*dto.StudentResponse, error) {
	existing, err := s.repo.FindByDNI(ctx, req.DNI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Duplicate("dni", "a student with this dni already exists")
	}

	existing, err = s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Duplicate("email", "a student with this email already exists")
	}

	student := model.Student{}
	copier.Copy(&student, &req)
	student.Age = *req.Age

	id, err := s.repo.Insert(ctx, &student)
	if err != nil {
		// The unique indexes reject inserts that slipped past the checks above.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Duplicate("dni", "a student with this dni or email already exists")
		}
		log.Error().Err(err).Msg("Failed to insert student")
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperror.NotFound("student")
	}
	return mapStudent(created), nil
}

func (s *studentService) List(ctx context.Context, limit int64) ([]dto.StudentResponse, error) {
	students, err := s.repo.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		resp = append(resp, *mapStudent(&students[i]))
	}
	return resp, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	oid, err := parseObjectID(id, "student id")
	if err != nil {
		return nil, err
	}
	student, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}
	return mapStudent(student), nil
}

func (s *studentService) Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (*dto.StudentResponse, bool, error) {
	oid, err := parseObjectID(id, "student id")
	if err != nil {
		return nil, false, err
	}

	fields := bson.M{}
	if req.DNI != nil {
		fields["dni"] = *req.DNI
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Classroom != nil {
		fields["classroom"] = *req.Classroom
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.GuardianName != nil {
		fields["guardian_name"] = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		fields["guardian_phone"] = *req.GuardianPhone
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}

	if len(fields) > 0 {
		modified, err := s.repo.UpdateByID(ctx, oid, fields)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, false, apperror.Duplicate("dni", "a student with this dni or email already exists")
			}
			return nil, false, err
		}
		if modified > 0 {
			updated, err := s.repo.FindByID(ctx, oid)
			if err != nil {
				return nil, false, err
			}
			if updated == nil {
				return nil, false, apperror.NotFound("student")
			}
			return mapStudent(updated), true, nil
		}
	}

	// Nothing changed: the record either matches the request already or is gone.
	student, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, false, err
	}
	if student == nil {
		return nil, false, apperror.NotFound("student")
	}
	return mapStudent(student), false, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id, "student id")
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("student")
	}
	return nil
}

func mapStudent(student *model.Student) *dto.StudentResponse {
	var resp dto.StudentResponse
	copier.Copy(&resp, student)
	resp.ID = student.ID.Hex()
	return &resp
}
