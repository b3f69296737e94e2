package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const TeacherIDKey contextKey = "teacher_id"

// SetTeacherContext menambahkan teacher ID ke context
func SetTeacherContext(ctx context.Context, teacherID uuid.UUID) context.Context {
	return context.WithValue(ctx, TeacherIDKey, teacherID.String())
}

func GetTeacherIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	teacherIDVal := ctx.Value(TeacherIDKey)
	if teacherIDVal == nil {
		return uuid.Nil, false
	}

	teacherIDStr, ok := teacherIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	teacherID, err := uuid.Parse(teacherIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return teacherID, true
}
