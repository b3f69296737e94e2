package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudar-backend/internal/dto/request"
)

func newStudentTestService() (StudentService, *fakeRepos) {
	fakes, repo := newFakeRepos()
	return NewStudentService(repo, nopLogger()), fakes
}

func studentPayload(rollno string) *request.StudentRequest {
	return &request.StudentRequest{
		Rollno:      rollno,
		StudentName: "Siti",
		DOB:         "2015-06-15",
		Grade:       5,
	}
}

func TestCreateStudent(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroom := seedClassroom(fakes.classrooms, owner, "Kelas 5A")

	resp, err := svc.CreateStudent(context.Background(), owner, classroom.ID.String(), studentPayload("R001"))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "R001", resp.Rollno)
	assert.Equal(t, "Siti", resp.StudentName)
	assert.Equal(t, "2015-06-15", resp.DOB)
	assert.Equal(t, 5, resp.Grade)
	assert.Equal(t, classroom.ID.String(), resp.ClassroomID)
}

func TestCreateStudentDuplicateRollnoAcrossClassrooms(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroomA := seedClassroom(fakes.classrooms, owner, "Kelas 5A")
	classroomB := seedClassroom(fakes.classrooms, owner, "Kelas 5B")

	_, err := svc.CreateStudent(context.Background(), owner, classroomA.ID.String(), studentPayload("R001"))
	require.NoError(t, err)

	// Rollno unik global, classroom lain pun ditolak
	_, err = svc.CreateStudent(context.Background(), owner, classroomB.ID.String(), studentPayload("R001"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateStudentInClassroomNotOwned(t *testing.T) {
	svc, fakes := newStudentTestService()
	classroom := seedClassroom(fakes.classrooms, uuid.New(), "Kelas 5A")

	_, err := svc.CreateStudent(context.Background(), uuid.New(), classroom.ID.String(), studentPayload("R001"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateStudentBadDateFormat(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroom := seedClassroom(fakes.classrooms, owner, "Kelas 5A")

	payload := studentPayload("R001")
	payload.DOB = "15-06-2015"

	_, err := svc.CreateStudent(context.Background(), owner, classroom.ID.String(), payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateStudentPartial(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroom := seedClassroom(fakes.classrooms, owner, "Kelas 5A")

	_, err := svc.CreateStudent(context.Background(), owner, classroom.ID.String(), studentPayload("R001"))
	require.NoError(t, err)

	// Update grade saja, field lain tidak berubah
	grade := 6
	resp, err := svc.UpdateStudent(context.Background(), owner, classroom.ID.String(), "R001",
		&request.StudentUpdateRequest{Grade: &grade})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Grade)
	assert.Equal(t, "Siti", resp.StudentName)
	assert.Equal(t, "2015-06-15", resp.DOB)

	// Update nama saja
	name := "Siti Rahma"
	resp, err = svc.UpdateStudent(context.Background(), owner, classroom.ID.String(), "R001",
		&request.StudentUpdateRequest{StudentName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Siti Rahma", resp.StudentName)
	assert.Equal(t, 6, resp.Grade)

	// Update dob saja
	dob := "2015-07-20"
	resp, err = svc.UpdateStudent(context.Background(), owner, classroom.ID.String(), "R001",
		&request.StudentUpdateRequest{DOB: &dob})
	require.NoError(t, err)

	assert.Equal(t, "2015-07-20", resp.DOB)
	assert.Equal(t, "Siti Rahma", resp.StudentName)
}

func TestUpdateStudentNoFieldsReturnsUnchanged(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroom := seedClassroom(fakes.classrooms, owner, "Kelas 5A")

	_, err := svc.CreateStudent(context.Background(), owner, classroom.ID.String(), studentPayload("R001"))
	require.NoError(t, err)
	before := fakes.students.byRollno["R001"].UpdatedAt

	resp, err := svc.UpdateStudent(context.Background(), owner, classroom.ID.String(), "R001",
		&request.StudentUpdateRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Siti", resp.StudentName)
	assert.True(t, before.Equal(fakes.students.byRollno["R001"].UpdatedAt))
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroom := seedClassroom(fakes.classrooms, owner, "Kelas 5A")

	grade := 6
	_, err := svc.UpdateStudent(context.Background(), owner, classroom.ID.String(), "R999",
		&request.StudentUpdateRequest{Grade: &grade})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetStudentFromAnotherClassroom(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroomA := seedClassroom(fakes.classrooms, owner, "Kelas 5A")
	classroomB := seedClassroom(fakes.classrooms, owner, "Kelas 5B")

	_, err := svc.CreateStudent(context.Background(), owner, classroomA.ID.String(), studentPayload("R001"))
	require.NoError(t, err)

	// Student ada tapi di classroom lain: not found
	_, err = svc.GetStudentByRollno(context.Background(), owner, classroomB.ID.String(), "R001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteStudent(t *testing.T) {
	svc, fakes := newStudentTestService()
	owner := uuid.New()
	classroom := seedClassroom(fakes.classrooms, owner, "Kelas 5A")

	_, err := svc.CreateStudent(context.Background(), owner, classroom.ID.String(), studentPayload("R001"))
	require.NoError(t, err)

	err = svc.DeleteStudent(context.Background(), owner, classroom.ID.String(), "R001")
	require.NoError(t, err)
	assert.Empty(t, fakes.students.byRollno)

	err = svc.DeleteStudent(context.Background(), owner, classroom.ID.String(), "R001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
