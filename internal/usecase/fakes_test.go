package usecase

// In-memory repository fakes untuk test service layer.
// Perilaku mengikuti repository asli: Find* yang tidak ketemu
// mengembalikan nil, nil; Update/Delete baris yang hilang error "not found".

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sudar-backend/internal/data/entity"
	"sudar-backend/internal/data/repository"
	"sudar-backend/pkg/token"
	"sudar-backend/pkg/utils"
)

// ---------- teacher ----------

type fakeTeacherRepo struct {
	byID map[uuid.UUID]*entity.Teacher
	err  error
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{byID: make(map[uuid.UUID]*entity.Teacher)}
}

func (f *fakeTeacherRepo) Create(ctx context.Context, teacher *entity.Teacher) error {
	if f.err != nil {
		return f.err
	}
	f.byID[teacher.ID] = teacher
	return nil
}

func (f *fakeTeacherRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeTeacherRepo) FindByEmail(ctx context.Context, email string) (*entity.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, teacher := range f.byID {
		if teacher.Email == email {
			return teacher, nil
		}
	}
	return nil, nil
}

func (f *fakeTeacherRepo) SetResetCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error {
	if f.err != nil {
		return f.err
	}
	teacher, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("teacher %s not found", id.String())
	}
	teacher.ResetPasswordCode = &code
	teacher.CodeExpiryTime = &expiry
	return nil
}

func (f *fakeTeacherRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	if f.err != nil {
		return f.err
	}
	teacher, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("teacher %s not found", id.String())
	}
	teacher.HashedPassword = hashedPassword
	teacher.ResetPasswordCode = nil
	teacher.CodeExpiryTime = nil
	return nil
}

// ---------- verification code ----------

type fakeVerificationCodeRepo struct {
	byEmail map[string]*entity.EmailVerificationCode
	err     error
}

func newFakeVerificationCodeRepo() *fakeVerificationCodeRepo {
	return &fakeVerificationCodeRepo{byEmail: make(map[string]*entity.EmailVerificationCode)}
}

func (f *fakeVerificationCodeRepo) Upsert(ctx context.Context, code *entity.EmailVerificationCode) error {
	if f.err != nil {
		return f.err
	}
	f.byEmail[code.Email] = code
	return nil
}

func (f *fakeVerificationCodeRepo) FindByEmail(ctx context.Context, email string) (*entity.EmailVerificationCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeVerificationCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byEmail[email]; !ok {
		return fmt.Errorf("verification code for %s not found", email)
	}
	delete(f.byEmail, email)
	return nil
}

// ---------- classroom ----------

type fakeClassroomRepo struct {
	byID map[uuid.UUID]*entity.Classroom
	err  error
}

func newFakeClassroomRepo() *fakeClassroomRepo {
	return &fakeClassroomRepo{byID: make(map[uuid.UUID]*entity.Classroom)}
}

func (f *fakeClassroomRepo) Create(ctx context.Context, classroom *entity.Classroom) error {
	if f.err != nil {
		return f.err
	}
	f.byID[classroom.ID] = classroom
	return nil
}

func (f *fakeClassroomRepo) FindByIDAndTeacher(ctx context.Context, id, teacherID uuid.UUID) (*entity.Classroom, error) {
	if f.err != nil {
		return nil, f.err
	}
	classroom, ok := f.byID[id]
	if !ok || classroom.TeacherID != teacherID {
		return nil, nil
	}
	return classroom, nil
}

func (f *fakeClassroomRepo) FindAllByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entity.Classroom, error) {
	if f.err != nil {
		return nil, f.err
	}
	var classrooms []*entity.Classroom
	for _, classroom := range f.byID {
		if classroom.TeacherID == teacherID {
			classrooms = append(classrooms, classroom)
		}
	}
	return classrooms, nil
}

func (f *fakeClassroomRepo) Update(ctx context.Context, classroom *entity.Classroom) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.byID[classroom.ID]
	if !ok || existing.TeacherID != classroom.TeacherID {
		return fmt.Errorf("classroom %s not found", classroom.ID.String())
	}
	f.byID[classroom.ID] = classroom
	return nil
}

func (f *fakeClassroomRepo) Delete(ctx context.Context, id, teacherID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	classroom, ok := f.byID[id]
	if !ok || classroom.TeacherID != teacherID {
		return fmt.Errorf("classroom %s not found", id.String())
	}
	delete(f.byID, id)
	return nil
}

// ---------- student ----------

type fakeStudentRepo struct {
	byRollno map[string]*entity.Student
	err      error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byRollno: make(map[string]*entity.Student)}
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	if f.err != nil {
		return f.err
	}
	f.byRollno[student.Rollno] = student
	return nil
}

func (f *fakeStudentRepo) FindByRollno(ctx context.Context, rollno string) (*entity.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byRollno[rollno], nil
}

func (f *fakeStudentRepo) FindByRollnoAndClassroom(ctx context.Context, rollno string, classroomID uuid.UUID) (*entity.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	student, ok := f.byRollno[rollno]
	if !ok || student.ClassroomID != classroomID {
		return nil, nil
	}
	return student, nil
}

func (f *fakeStudentRepo) FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	var students []*entity.Student
	for _, student := range f.byRollno {
		if student.ClassroomID == classroomID {
			students = append(students, student)
		}
	}
	return students, nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *entity.Student) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.byRollno[student.Rollno]
	if !ok || existing.ClassroomID != student.ClassroomID {
		return fmt.Errorf("student %s not found", student.Rollno)
	}
	f.byRollno[student.Rollno] = student
	return nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, rollno string, classroomID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	student, ok := f.byRollno[rollno]
	if !ok || student.ClassroomID != classroomID {
		return fmt.Errorf("student %s not found", rollno)
	}
	delete(f.byRollno, rollno)
	return nil
}

// ---------- subject ----------

type fakeSubjectRepo struct {
	byID map[uuid.UUID]*entity.Subject
	err  error
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{byID: make(map[uuid.UUID]*entity.Subject)}
}

func (f *fakeSubjectRepo) Create(ctx context.Context, subject *entity.Subject) error {
	if f.err != nil {
		return f.err
	}
	f.byID[subject.ID] = subject
	return nil
}

func (f *fakeSubjectRepo) FindByIDAndClassroom(ctx context.Context, id, classroomID uuid.UUID) (*entity.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	subject, ok := f.byID[id]
	if !ok || subject.ClassroomID != classroomID {
		return nil, nil
	}
	return subject, nil
}

func (f *fakeSubjectRepo) FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	var subjects []*entity.Subject
	for _, subject := range f.byID {
		if subject.ClassroomID == classroomID {
			subjects = append(subjects, subject)
		}
	}
	return subjects, nil
}

func (f *fakeSubjectRepo) Update(ctx context.Context, subject *entity.Subject) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.byID[subject.ID]
	if !ok || existing.ClassroomID != subject.ClassroomID {
		return fmt.Errorf("subject %s not found", subject.ID.String())
	}
	f.byID[subject.ID] = subject
	return nil
}

func (f *fakeSubjectRepo) Delete(ctx context.Context, id, classroomID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	subject, ok := f.byID[id]
	if !ok || subject.ClassroomID != classroomID {
		return fmt.Errorf("subject %s not found", id.String())
	}
	delete(f.byID, id)
	return nil
}

// ---------- activity ----------

type fakeActivityRepo struct {
	byID map[uuid.UUID]*entity.Activity
	err  error
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{byID: make(map[uuid.UUID]*entity.Activity)}
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	if f.err != nil {
		return f.err
	}
	f.byID[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) FindByIDAndSubject(ctx context.Context, id, subjectID uuid.UUID) (*entity.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	activity, ok := f.byID[id]
	if !ok || activity.SubjectID != subjectID {
		return nil, nil
	}
	return activity, nil
}

func (f *fakeActivityRepo) FindAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	var activities []*entity.Activity
	for _, activity := range f.byID {
		if activity.SubjectID == subjectID {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

func (f *fakeActivityRepo) Update(ctx context.Context, activity *entity.Activity) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.byID[activity.ID]
	if !ok || existing.SubjectID != activity.SubjectID {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}
	f.byID[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) Delete(ctx context.Context, id, subjectID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	activity, ok := f.byID[id]
	if !ok || activity.SubjectID != subjectID {
		return fmt.Errorf("activity %s not found", id.String())
	}
	delete(f.byID, id)
	return nil
}

// ---------- mailer ----------

type fakeMailer struct {
	verificationCodes map[string]string
	resetCodes        map[string]string
	sendErr           error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		verificationCodes: make(map[string]string),
		resetCodes:        make(map[string]string),
	}
}

func (f *fakeMailer) SendVerificationCode(to, teacherName, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.verificationCodes[to] = code
	return nil
}

func (f *fakeMailer) SendResetCode(to, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.resetCodes[to] = code
	return nil
}

// ---------- wiring helpers ----------

type fakeRepos struct {
	teacher    *fakeTeacherRepo
	codes      *fakeVerificationCodeRepo
	classrooms *fakeClassroomRepo
	students   *fakeStudentRepo
	subjects   *fakeSubjectRepo
	activities *fakeActivityRepo
}

func newFakeRepos() (*fakeRepos, *repository.Repository) {
	fakes := &fakeRepos{
		teacher:    newFakeTeacherRepo(),
		codes:      newFakeVerificationCodeRepo(),
		classrooms: newFakeClassroomRepo(),
		students:   newFakeStudentRepo(),
		subjects:   newFakeSubjectRepo(),
		activities: newFakeActivityRepo(),
	}

	repo := &repository.Repository{
		Teacher:          fakes.teacher,
		VerificationCode: fakes.codes,
		Classroom:        fakes.classrooms,
		Student:          fakes.students,
		Subject:          fakes.subjects,
		Activity:         fakes.activities,
	}

	return fakes, repo
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:              "service-test-secret",
			AccessExpiryMinutes: 10,
			RefreshExpiryDays:   7,
		},
		Verification: utils.VerificationConfig{
			CodeLength:    6,
			ExpiryMinutes: 10,
		},
	}
}

func newTestTokenManager() *token.Manager {
	return token.NewManager(testConfig().JWT)
}

func seedTeacher(t *fakeTeacherRepo, email, password string) *entity.Teacher {
	hash, _ := utils.HashPassword(password)
	teacher := &entity.Teacher{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeacherName:    "Test Teacher",
		Email:          email,
		HashedPassword: hash,
	}
	t.byID[teacher.ID] = teacher
	return teacher
}

func seedClassroom(c *fakeClassroomRepo, teacherID uuid.UUID, name string) *entity.Classroom {
	classroom := &entity.Classroom{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeacherID:     teacherID,
		ClassroomName: name,
	}
	c.byID[classroom.ID] = classroom
	return classroom
}

func seedSubject(s *fakeSubjectRepo, classroomID uuid.UUID, name string) *entity.Subject {
	subject := &entity.Subject{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClassroomID: classroomID,
		SubjectName: name,
	}
	s.byID[subject.ID] = subject
	return subject
}

func nopLogger() *zap.Logger { return zap.NewNop() }
