package quiz

import (
	"time"

	"github.com/google/uuid"
)

// SeedQuizzes returns the quizzes a fresh store starts with. IDs are left empty so the store assigns them.
func SeedQuizzes() []*Quiz {
	ptr := func(s string) *string { return &s }
	at := func(year int, month time.Month, day, hour, minute, sec int) *time.Time {
		t := time.Date(year, month, day, hour, minute, sec, 0, time.UTC)

		return &t
	}

	return []*Quiz{
		{
			Title:        "Customer Satisfaction Quiz",
			Description:  ptr("Quiz about customer satisfaction"),
			CreationDate: *at(2025, time.April, 20, 10, 0, 0),
			CloseDate:    at(2025, time.April, 30, 23, 59, 59),
			IsActive:     true,
			OwnerID:      uuid.MustParse("e7b3f5b4-8a63-4e2e-baad-5a8c5c5b1234"),
		},
		{
			Title:        "Employee Feedback Quiz",
			Description:  ptr("Quiz to collect employee feedback"),
			CreationDate: *at(2025, time.April, 21, 12, 0, 0),
			IsActive:     true,
			OwnerID:      uuid.MustParse("0e00b3e1-2c66-4f56-9332-9e20bfcdb812"),
		},
		{
			Title:        "Website Usability Quiz",
			Description:  ptr("Quiz to evaluate website usability"),
			CreationDate: *at(2025, time.April, 22, 14, 0, 0),
			CloseDate:    at(2025, time.May, 1, 20, 0, 0),
			IsActive:     false,
			OwnerID:      uuid.MustParse("7f6c9aee-681c-4f61-812d-dcd7edb7b029"),
		},
	}
}
