package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func studentRouter(s *MockStore) *gin.Engine {
	r := gin.New()
	h := NewStudentHandler(s)
	r.GET("/api/students", h.List)
	r.GET("/api/students/:id", h.Get)
	r.POST("/api/students", h.Create)
	r.PUT("/api/students/:id", h.Update)
	r.DELETE("/api/students/:id", h.Delete)
	return r
}

func attendanceRouter(s *MockStore) *gin.Engine {
	r := gin.New()
	h := NewAttendanceHandler(s)
	r.POST("/api/attendance", h.Mark)
	r.GET("/api/attendance", h.ByDate)
	r.GET("/api/attendance/student/:studentId", h.StudentHistory)
	return r
}

func classRouter(s *MockStore) *gin.Engine {
	r := gin.New()
	h := NewClassHandler(s)
	r.GET("/api/classes", h.List)
	r.POST("/api/classes", h.Create)
	r.PUT("/api/classes/:id", h.Update)
	r.DELETE("/api/classes/:id", h.Delete)
	return r
}

func teacherRouter(s *MockStore) *gin.Engine {
	r := gin.New()
	h := NewTeacherHandler(s)
	r.GET("/api/teachers", h.List)
	r.GET("/api/teachers/email/:email", h.GetByEmail)
	r.POST("/api/teachers", h.Create)
	r.PUT("/api/teachers/:id", h.Update)
	setup := NewSetupHandler(s)
	r.POST("/api/setup", setup.Run)
	return r
}
