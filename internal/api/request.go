package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/starquake/quizcrud/internal/httputil"
	"github.com/starquake/quizcrud/internal/quiz"
)

// Accepted close_date layouts. Date and time may be split by "T" or a space.
// Timestamps without a zone are taken as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// quizCreateRequest is the QuizCreate payload. Pointers tell a missing field from a zero value.
type quizCreateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CloseDate   *string `json:"close_date"`
	IsActive    *bool   `json:"is_active"`
	OwnerID     *string `json:"owner_id"`
}

type quizResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	CreationDate time.Time  `json:"creation_date"`
	CloseDate    *time.Time `json:"close_date"`
	IsActive     bool       `json:"is_active"`
	OwnerID      uuid.UUID  `json:"owner_id"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func quizResponseFromQuiz(qz *quiz.Quiz) quizResponse {
	return quizResponse{
		ID:           qz.ID,
		Title:        qz.Title,
		Description:  qz.Description,
		CreationDate: qz.CreationDate,
		CloseDate:    qz.CloseDate,
		IsActive:     qz.IsActive,
		OwnerID:      qz.OwnerID,
	}
}

func missing(field string) httputil.ValidationProblem {
	return httputil.ValidationProblem{Loc: []string{"body", field}, Msg: "Field required", Type: "missing"}
}

// decodeQuizFields reads a QuizCreate body. It returns the problems found, if any.
func decodeQuizFields(r *http.Request) (quiz.Fields, []httputil.ValidationProblem) {
	req, err := httputil.DecodeJSON[quizCreateRequest](r)
	if err != nil {
		return quiz.Fields{}, []httputil.ValidationProblem{httputil.DecodeProblem(err)}
	}

	return req.fields(r.Context())
}

func (req quizCreateRequest) fields(ctx context.Context) (quiz.Fields, []httputil.ValidationProblem) {
	var problems []httputil.ValidationProblem
	var f quiz.Fields

	if req.Title == nil {
		problems = append(problems, missing("title"))
	} else {
		f.Title = *req.Title
	}

	f.Description = req.Description

	if req.CloseDate != nil {
		closeDate, ok := parseTime(*req.CloseDate)
		if !ok {
			problems = append(problems, httputil.ValidationProblem{
				Loc:  []string{"body", "close_date"},
				Msg:  "Input should be a valid datetime",
				Type: "datetime_parsing",
			})
		} else {
			f.CloseDate = &closeDate
		}
	}

	if req.IsActive == nil {
		problems = append(problems, missing("is_active"))
	} else {
		f.IsActive = *req.IsActive
	}

	if req.OwnerID == nil {
		problems = append(problems, missing("owner_id"))
	} else {
		ownerID, err := uuid.Parse(*req.OwnerID)
		if err != nil {
			problems = append(problems, httputil.ValidationProblem{
				Loc:  []string{"body", "owner_id"},
				Msg:  "Input should be a valid UUID",
				Type: "uuid_parsing",
			})
		} else {
			f.OwnerID = ownerID
		}
	}

	if req.Title != nil {
		for field, msg := range f.Valid(ctx) {
			problems = append(problems, httputil.ValidationProblem{
				Loc:  []string{"body", field},
				Msg:  msg,
				Type: "value_error",
			})
		}
	}

	return f, problems
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
