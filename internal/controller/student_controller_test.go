package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/dto"
)

func registerStudent(t *testing.T, f *queryFixture, req dto.RegisterStudentRequest) (*dto.StudentInfoResponse, int) {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest("POST", "/api/student/register", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.app.Test(httpReq, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.StudentInfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return &out, resp.StatusCode
}

func fetchInfo(t *testing.T, f *queryFixture, sessionID string) (*dto.StudentInfoResponse, int) {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/student/info/"+sessionID, nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.StudentInfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return &out, resp.StatusCode
}

func TestRegisterAndFetchInfo(t *testing.T) {
	f := newQueryFixture(t)

	out, status := registerStudent(t, f, dto.RegisterStudentRequest{
		SessionID: "sess-1",
		Class:     "Class 6",
		Board:     "ICSE",
		Language:  "English",
		Name:      "Meera",
	})

	assert.Equal(t, fiber.StatusOK, status)
	require.True(t, out.Success)
	assert.Equal(t, "Class 6", out.StudentInfo.Class)
	assert.False(t, out.StudentInfo.RegisteredAt.IsZero())

	info, status := fetchInfo(t, f, "sess-1")
	assert.Equal(t, fiber.StatusOK, status)
	require.True(t, info.Success)
	assert.Equal(t, "Meera", info.StudentInfo.Name)
}

func TestRegisterRequiresSessionID(t *testing.T) {
	f := newQueryFixture(t)

	out, status := registerStudent(t, f, dto.RegisterStudentRequest{
		Class: "Class 6",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, out.Success)
}

func TestRegisterOverwriteLastWriteWins(t *testing.T) {
	f := newQueryFixture(t)

	_, _ = registerStudent(t, f, dto.RegisterStudentRequest{SessionID: "sess-1", Class: "Class 4"})
	_, _ = registerStudent(t, f, dto.RegisterStudentRequest{SessionID: "sess-1", Class: "Class 9"})

	info, status := fetchInfo(t, f, "sess-1")
	assert.Equal(t, fiber.StatusOK, status)
	require.True(t, info.Success)
	assert.Equal(t, "Class 9", info.StudentInfo.Class, "second registration must win")
}

func TestFetchInfoUnknownSession(t *testing.T) {
	f := newQueryFixture(t)

	_, status := fetchInfo(t, f, "ghost")
	assert.Equal(t, fiber.StatusNotFound, status)
}
