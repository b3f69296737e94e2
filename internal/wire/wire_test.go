package wire

// End-to-end test lewat router: request HTTP asli masuk lewat middleware,
// handler, dan service, hanya repository yang diganti in-memory fake.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sudar-backend/internal/data/entity"
	"sudar-backend/internal/data/repository"
	"sudar-backend/pkg/utils"
)

// ---------- in-memory repository fakes ----------

type memTeacherRepo struct {
	byID map[uuid.UUID]*entity.Teacher
}

func (m *memTeacherRepo) Create(ctx context.Context, teacher *entity.Teacher) error {
	m.byID[teacher.ID] = teacher
	return nil
}

func (m *memTeacherRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	return m.byID[id], nil
}

func (m *memTeacherRepo) FindByEmail(ctx context.Context, email string) (*entity.Teacher, error) {
	for _, teacher := range m.byID {
		if teacher.Email == email {
			return teacher, nil
		}
	}
	return nil, nil
}

func (m *memTeacherRepo) SetResetCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error {
	teacher, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("teacher %s not found", id.String())
	}
	teacher.ResetPasswordCode = &code
	teacher.CodeExpiryTime = &expiry
	return nil
}

func (m *memTeacherRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	teacher, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("teacher %s not found", id.String())
	}
	teacher.HashedPassword = hashedPassword
	teacher.ResetPasswordCode = nil
	teacher.CodeExpiryTime = nil
	return nil
}

type memVerificationCodeRepo struct {
	byEmail map[string]*entity.EmailVerificationCode
}

func (m *memVerificationCodeRepo) Upsert(ctx context.Context, code *entity.EmailVerificationCode) error {
	m.byEmail[code.Email] = code
	return nil
}

func (m *memVerificationCodeRepo) FindByEmail(ctx context.Context, email string) (*entity.EmailVerificationCode, error) {
	return m.byEmail[email], nil
}

func (m *memVerificationCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	if _, ok := m.byEmail[email]; !ok {
		return fmt.Errorf("verification code for %s not found", email)
	}
	delete(m.byEmail, email)
	return nil
}

type memClassroomRepo struct {
	byID map[uuid.UUID]*entity.Classroom
}

func (m *memClassroomRepo) Create(ctx context.Context, classroom *entity.Classroom) error {
	m.byID[classroom.ID] = classroom
	return nil
}

func (m *memClassroomRepo) FindByIDAndTeacher(ctx context.Context, id, teacherID uuid.UUID) (*entity.Classroom, error) {
	classroom, ok := m.byID[id]
	if !ok || classroom.TeacherID != teacherID {
		return nil, nil
	}
	return classroom, nil
}

func (m *memClassroomRepo) FindAllByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entity.Classroom, error) {
	var classrooms []*entity.Classroom
	for _, classroom := range m.byID {
		if classroom.TeacherID == teacherID {
			classrooms = append(classrooms, classroom)
		}
	}
	return classrooms, nil
}

func (m *memClassroomRepo) Update(ctx context.Context, classroom *entity.Classroom) error {
	existing, ok := m.byID[classroom.ID]
	if !ok || existing.TeacherID != classroom.TeacherID {
		return fmt.Errorf("classroom %s not found", classroom.ID.String())
	}
	m.byID[classroom.ID] = classroom
	return nil
}

func (m *memClassroomRepo) Delete(ctx context.Context, id, teacherID uuid.UUID) error {
	classroom, ok := m.byID[id]
	if !ok || classroom.TeacherID != teacherID {
		return fmt.Errorf("classroom %s not found", id.String())
	}
	delete(m.byID, id)
	return nil
}

type memStudentRepo struct {
	byRollno map[string]*entity.Student
}

func (m *memStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	m.byRollno[student.Rollno] = student
	return nil
}

func (m *memStudentRepo) FindByRollno(ctx context.Context, rollno string) (*entity.Student, error) {
	return m.byRollno[rollno], nil
}

func (m *memStudentRepo) FindByRollnoAndClassroom(ctx context.Context, rollno string, classroomID uuid.UUID) (*entity.Student, error) {
	student, ok := m.byRollno[rollno]
	if !ok || student.ClassroomID != classroomID {
		return nil, nil
	}
	return student, nil
}

func (m *memStudentRepo) FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Student, error) {
	var students []*entity.Student
	for _, student := range m.byRollno {
		if student.ClassroomID == classroomID {
			students = append(students, student)
		}
	}
	return students, nil
}

func (m *memStudentRepo) Update(ctx context.Context, student *entity.Student) error {
	existing, ok := m.byRollno[student.Rollno]
	if !ok || existing.ClassroomID != student.ClassroomID {
		return fmt.Errorf("student %s not found", student.Rollno)
	}
	m.byRollno[student.Rollno] = student
	return nil
}

func (m *memStudentRepo) Delete(ctx context.Context, rollno string, classroomID uuid.UUID) error {
	student, ok := m.byRollno[rollno]
	if !ok || student.ClassroomID != classroomID {
		return fmt.Errorf("student %s not found", rollno)
	}
	delete(m.byRollno, rollno)
	return nil
}

type memSubjectRepo struct {
	byID map[uuid.UUID]*entity.Subject
}

func (m *memSubjectRepo) Create(ctx context.Context, subject *entity.Subject) error {
	m.byID[subject.ID] = subject
	return nil
}

func (m *memSubjectRepo) FindByIDAndClassroom(ctx context.Context, id, classroomID uuid.UUID) (*entity.Subject, error) {
	subject, ok := m.byID[id]
	if !ok || subject.ClassroomID != classroomID {
		return nil, nil
	}
	return subject, nil
}

func (m *memSubjectRepo) FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Subject, error) {
	var subjects []*entity.Subject
	for _, subject := range m.byID {
		if subject.ClassroomID == classroomID {
			subjects = append(subjects, subject)
		}
	}
	return subjects, nil
}

func (m *memSubjectRepo) Update(ctx context.Context, subject *entity.Subject) error {
	existing, ok := m.byID[subject.ID]
	if !ok || existing.ClassroomID != subject.ClassroomID {
		return fmt.Errorf("subject %s not found", subject.ID.String())
	}
	m.byID[subject.ID] = subject
	return nil
}

func (m *memSubjectRepo) Delete(ctx context.Context, id, classroomID uuid.UUID) error {
	subject, ok := m.byID[id]
	if !ok || subject.ClassroomID != classroomID {
		return fmt.Errorf("subject %s not found", id.String())
	}
	delete(m.byID, id)
	return nil
}

type memActivityRepo struct {
	byID map[uuid.UUID]*entity.Activity
}

func (m *memActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	m.byID[activity.ID] = activity
	return nil
}

func (m *memActivityRepo) FindByIDAndSubject(ctx context.Context, id, subjectID uuid.UUID) (*entity.Activity, error) {
	activity, ok := m.byID[id]
	if !ok || activity.SubjectID != subjectID {
		return nil, nil
	}
	return activity, nil
}

func (m *memActivityRepo) FindAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Activity, error) {
	var activities []*entity.Activity
	for _, activity := range m.byID {
		if activity.SubjectID == subjectID {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

func (m *memActivityRepo) Update(ctx context.Context, activity *entity.Activity) error {
	existing, ok := m.byID[activity.ID]
	if !ok || existing.SubjectID != activity.SubjectID {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}
	m.byID[activity.ID] = activity
	return nil
}

func (m *memActivityRepo) Delete(ctx context.Context, id, subjectID uuid.UUID) error {
	activity, ok := m.byID[id]
	if !ok || activity.SubjectID != subjectID {
		return fmt.Errorf("activity %s not found", id.String())
	}
	delete(m.byID, id)
	return nil
}

// ---------- harness ----------

type testStore struct {
	teachers   *memTeacherRepo
	codes      *memVerificationCodeRepo
	classrooms *memClassroomRepo
	students   *memStudentRepo
	subjects   *memSubjectRepo
	activities *memActivityRepo
}

func newTestApp() (*App, *testStore) {
	store := &testStore{
		teachers:   &memTeacherRepo{byID: make(map[uuid.UUID]*entity.Teacher)},
		codes:      &memVerificationCodeRepo{byEmail: make(map[string]*entity.EmailVerificationCode)},
		classrooms: &memClassroomRepo{byID: make(map[uuid.UUID]*entity.Classroom)},
		students:   &memStudentRepo{byRollno: make(map[string]*entity.Student)},
		subjects:   &memSubjectRepo{byID: make(map[uuid.UUID]*entity.Subject)},
		activities: &memActivityRepo{byID: make(map[uuid.UUID]*entity.Activity)},
	}

	repo := &repository.Repository{
		Teacher:          store.teachers,
		VerificationCode: store.codes,
		Classroom:        store.classrooms,
		Student:          store.students,
		Subject:          store.subjects,
		Activity:         store.activities,
	}

	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:              "wire-test-secret",
			AccessExpiryMinutes: 10,
			RefreshExpiryDays:   7,
		},
		Cookie: utils.CookieConfig{SameSite: "lax"},
		Verification: utils.VerificationConfig{
			CodeLength:    6,
			ExpiryMinutes: 10,
		},
	}

	app := Wiring(repo, config, zap.NewNop())
	return app, store
}

type apiResponse struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func doRequest(app *App, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func decodeAPIResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) apiResponse {
	t.Helper()
	resp := decodeAPIResponse(t, w)
	require.NotNil(t, resp.Data, "response data is empty")
	require.NoError(t, json.Unmarshal(resp.Data, dst))
	return resp
}

// signupTeacher registrasi teacher lewat endpoint publik, return cookie auth
func signupTeacher(t *testing.T, app *App, store *testStore, email string) []*http.Cookie {
	t.Helper()

	w := doRequest(app, http.MethodPost, "/auth/send-verification-code", map[string]string{
		"email":        email,
		"teacher_name": "Test Teacher",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	code := store.codes.byEmail[email]
	require.NotNil(t, code, "verification code must be stored")

	w = doRequest(app, http.MethodPost, "/auth/signup", map[string]string{
		"email":             email,
		"teacher_name":      "Test Teacher",
		"password":          "ValidPass123",
		"verification_code": code.Code,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// ---------- root & health ----------

func TestRootEndpoint(t *testing.T) {
	app, _ := newTestApp()

	w := doRequest(app, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.Equal(t, "Welcome to Sudar API", payload["message"])
	assert.Equal(t, "1.0.0", payload["version"])
	assert.Equal(t, "running", payload["status"])
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp()

	w := doRequest(app, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.Equal(t, map[string]string{"status": "healthy"}, payload)
}
