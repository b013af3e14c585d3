package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ztrack_backend/internal/apperror"
	"ztrack_backend/internal/dto"
	"ztrack_backend/internal/service"
)

const defaultStudentLimit = 50

type Controller struct {
	studentSvc service.StudentService
	examSvc    service.ExamService
}

func NewController(studentSvc service.StudentService, examSvc service.ExamService) *Controller {
	return &Controller{
		studentSvc: studentSvc,
		examSvc:    examSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.RootHandler)

	api := router.Group("/api")
	{
		students := api.Group("/students")
		students.POST("", ctrl.CreateStudentHandler)
		students.GET("", ctrl.ListStudentsHandler)
		students.GET("/:id", ctrl.GetStudentHandler)
		students.PUT("/:id", ctrl.UpdateStudentHandler)
		students.DELETE("/:id", ctrl.DeleteStudentHandler)

		exams := api.Group("/exams")
		exams.POST("", ctrl.CreateExamHandler)
		exams.GET("/:student_id", ctrl.GetStudentExamsHandler)
		exams.PUT("/:id", ctrl.UpdateExamHandler)
		exams.DELETE("/:id", ctrl.DeleteExamHandler)
	}
}

// RootHandler godoc
// @Summary Service status
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (ctrl *Controller) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the ZTRACK API - Status: ONLINE"})
}

// --- Student Handlers ---

// CreateStudentHandler godoc
// @Summary Register a new student
// @Description dni and email must be unique across all students
// @Tags students
// @Accept json
// @Produce json
// @Param student body dto.StudentCreateRequest true "Student data"
// @Success 200 {object} dto.Response
// @Failure 409 {object} dto.ErrorResponse "Duplicate dni or email"
// @Failure 422 {object} dto.ErrorResponse "Validation failure"
// @Router /students [post]
func (ctrl *Controller) CreateStudentHandler(c *gin.Context) {
	var req dto.StudentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StudentCreateRequest")
		respondBindError(c, err)
		return
	}

	student, err := ctrl.studentSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, student, "student registered successfully")
}

// ListStudentsHandler godoc
// @Summary List students
// @Tags students
// @Produce json
// @Param limit query int false "Maximum number of students returned" default(50)
// @Success 200 {object} dto.Response
// @Router /students [get]
func (ctrl *Controller) ListStudentsHandler(c *gin.Context) {
	limit := int64(defaultStudentLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			respondError(c, apperror.Validation("limit", "limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	students, err := ctrl.studentSvc.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, students, "students retrieved successfully")
}

// GetStudentHandler godoc
// @Summary Get a student by id
// @Tags students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (ctrl *Controller) GetStudentHandler(c *gin.Context) {
	student, err := ctrl.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, student, "student found")
}

// UpdateStudentHandler godoc
// @Summary Update a student
// @Description Partial update; omitted fields keep their stored value
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student id"
// @Param student body dto.StudentUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (ctrl *Controller) UpdateStudentHandler(c *gin.Context) {
	var req dto.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StudentUpdateRequest")
		respondBindError(c, err)
		return
	}

	student, modified, err := ctrl.studentSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if modified {
		respondOK(c, student, "student updated")
		return
	}
	respondOK(c, student, "no changes detected")
}

// DeleteStudentHandler godoc
// @Summary Delete a student
// @Description Exams referencing the student are left in place
// @Tags students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (ctrl *Controller) DeleteStudentHandler(c *gin.Context) {
	if err := ctrl.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "student deleted", "deletion successful")
}

// --- Exam Handlers ---

// CreateExamHandler godoc
// @Summary Register an exam score
// @Description The exam date is stamped with the server clock at creation
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateRequest true "Exam data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Malformed student id"
// @Failure 404 {object} dto.ErrorResponse "Student does not exist"
// @Failure 422 {object} dto.ErrorResponse "Validation failure"
// @Router /exams [post]
func (ctrl *Controller) CreateExamHandler(c *gin.Context) {
	var req dto.ExamCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamCreateRequest")
		respondBindError(c, err)
		return
	}

	exam, err := ctrl.examSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, exam, "exam registered successfully")
}

// GetStudentExamsHandler godoc
// @Summary List the exams of a student
// @Tags exams
// @Produce json
// @Param student_id path string true "Student id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Malformed student id"
// @Router /exams/{student_id} [get]
func (ctrl *Controller) GetStudentExamsHandler(c *gin.Context) {
	exams, err := ctrl.examSvc.ListByStudent(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, exams, "exams retrieved successfully")
}

// UpdateExamHandler godoc
// @Summary Update an exam
// @Description Only subject and score can change; date and student are immutable
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam id"
// @Param exam body dto.ExamUpdateRequest true "Subject and score"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [put]
func (ctrl *Controller) UpdateExamHandler(c *gin.Context) {
	var req dto.ExamUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamUpdateRequest")
		respondBindError(c, err)
		return
	}

	exam, modified, err := ctrl.examSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if modified {
		respondOK(c, exam, "exam updated")
		return
	}
	respondOK(c, exam, "no changes detected")
}

// DeleteExamHandler godoc
// @Summary Delete an exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (ctrl *Controller) DeleteExamHandler(c *gin.Context) {
	if err := ctrl.examSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "exam deleted", "deletion successful")
}
