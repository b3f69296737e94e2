package response

import (
	"time"

	"sudar-backend/internal/data/entity"
)

type ActivityResponse struct {
	ActivityID string    `json:"activity_id"`
	SubjectID  string    `json:"subject_id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Helper converters
func ActivityToResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ActivityID: activity.ID.String(),
		SubjectID:  activity.SubjectID.String(),
		Title:      activity.Title,
		Type:       string(activity.Type),
		CreatedAt:  activity.CreatedAt,
		UpdatedAt:  activity.UpdatedAt,
	}
}

func ActivitiesToResponse(activities []*entity.Activity) []ActivityResponse {
	result := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		result = append(result, ActivityToResponse(activity))
	}
	return result
}
