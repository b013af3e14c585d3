package dto

// ExamCreateRequest registers a score for a student. There is deliberately
// no exam_date field: the date is stamped with the server clock at insert
// time, so a client-supplied value would be discarded anyway.
type ExamCreateRequest struct {
	StudentID string   `json:"student_id" binding:"required"`
	Subject   string   `json:"subject" binding:"required,min=1"`
	Score     *float64 `json:"score" binding:"required,gte=0,lte=20"`
}

// ExamUpdateRequest can change the subject and score only. The exam date
// and the student reference are immutable after creation.
type ExamUpdateRequest struct {
	Subject string   `json:"subject" binding:"required,min=1"`
	Score   *float64 `json:"score" binding:"required,gte=0,lte=20"`
}

type ExamResponse struct {
	ID        string  `json:"id"`
	StudentID string  `json:"student_id"`
	Subject   string  `json:"subject"`
	Score     float64 `json:"score"`
	ExamDate  string  `json:"exam_date"`
}
