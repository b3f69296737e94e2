package wire

import (
	"sudar-backend/internal/adaptor"
	"sudar-backend/internal/data/repository"
	"sudar-backend/pkg/middleware"
	"sudar-backend/pkg/token"
	"sudar-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClassroom(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Manager,
	config *utils.Config,
	log *zap.Logger,
) {
	// Semua route classroom (termasuk nested students/subjects/activities)
	// butuh auth - ownership dicek di service layer
	r.Route("/classrooms", func(r chi.Router) {
		r.Use(middleware.AuthTeacher(repo.Teacher, tokens, log))

		// Classroom CRUD
		r.Post("/", handler.Classroom.CreateClassroom)
		r.Get("/", handler.Classroom.GetClassrooms)

		r.Route("/{classroomID}", func(r chi.Router) {
			r.Get("/", handler.Classroom.GetClassroomByID)
			r.Put("/", handler.Classroom.UpdateClassroom)
			r.Delete("/", handler.Classroom.DeleteClassroom)

			// Students nested di bawah classroom
			r.Route("/students", func(r chi.Router) {
				r.Post("/", handler.Student.CreateStudent)
				r.Get("/", handler.Student.GetStudents)

				r.Route("/{rollno}", func(r chi.Router) {
					r.Get("/", handler.Student.GetStudentByRollno)
					r.Put("/", handler.Student.UpdateStudent)
					r.Delete("/", handler.Student.DeleteStudent)
				})
			})

			// Subjects nested di bawah classroom
			r.Route("/subjects", func(r chi.Router) {
				r.Post("/", handler.Subject.CreateSubject)
				r.Get("/", handler.Subject.GetSubjects)

				r.Route("/{subjectID}", func(r chi.Router) {
					r.Get("/", handler.Subject.GetSubjectByID)
					r.Put("/", handler.Subject.UpdateSubject)
					r.Delete("/", handler.Subject.DeleteSubject)

					// Activities nested di bawah subject
					r.Route("/activities", func(r chi.Router) {
						r.Post("/", handler.Activity.CreateActivity)
						r.Get("/", handler.Activity.GetActivities)

						r.Route("/{activityID}", func(r chi.Router) {
							r.Get("/", handler.Activity.GetActivityByID)
							r.Put("/", handler.Activity.UpdateActivity)
							r.Delete("/", handler.Activity.DeleteActivity)
						})
					})
				})
			})
		})
	})
}
