package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nehawork/smart-attendence/internal/model"
)

func TestAddStudent(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.request(http.MethodPost, "/v1/students",
		`{"name":"Asha","class":"10","division":"A","image_path":"images/asha.png"}`)
	assert.NoError(t, env.roster.AddStudent(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
}

func TestAddStudentMissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{"name":"","class":"10","division":"A","image_path":"images/x.png"}`,
		`{"name":"Asha","class":"10","division":"A","image_path":""}`,
	} {
		c, rec := env.request(http.MethodPost, "/v1/students", body)
		assert.NoError(t, env.roster.AddStudent(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.JSONEq(t, `{"error":"Please fill all fields and upload image"}`, rec.Body.String())
	}
}

func TestListStudents(t *testing.T) {
	env := newTestEnv(t)
	env.addStudent(t, "Zoya", "10", "A")
	env.addStudent(t, "Asha", "10", "A")
	env.addStudent(t, "Ravi", "9", "B")

	c, rec := env.request(http.MethodGet, "/v1/students", "")
	assert.NoError(t, env.roster.ListStudents(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Students []model.Student `json:"students"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.Len(t, resp.Students, 3) {
		assert.Equal(t, "Asha", resp.Students[0].Name)
		assert.Equal(t, "Ravi", resp.Students[1].Name)
		assert.Equal(t, "Zoya", resp.Students[2].Name)
	}
}

func TestListStudentsBySection(t *testing.T) {
	env := newTestEnv(t)
	env.addStudent(t, "Asha", "10", "A")
	env.addStudent(t, "Ravi", "9", "B")

	c, rec := env.request(http.MethodGet, "/v1/students?class=10&division=A", "")
	assert.NoError(t, env.roster.ListStudents(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Students []model.StudentRef `json:"students"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.Len(t, resp.Students, 1) {
		assert.Equal(t, "Asha", resp.Students[0].Name)
	}
}

func TestListSectionsAndClasses(t *testing.T) {
	env := newTestEnv(t)
	env.addStudent(t, "Asha", "10", "A")
	env.addStudent(t, "Meera", "10", "B")
	env.addStudent(t, "Ravi", "9", "B")

	c, rec := env.request(http.MethodGet, "/v1/sections", "")
	assert.NoError(t, env.roster.ListSections(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	var sections struct {
		Sections []model.Section `json:"sections"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))
	assert.Equal(t, []model.Section{
		{Class: "10", Division: "A"},
		{Class: "10", Division: "B"},
		{Class: "9", Division: "B"},
	}, sections.Sections)

	c, rec = env.request(http.MethodGet, "/v1/classes", "")
	assert.NoError(t, env.roster.ListClasses(c))
	assert.JSONEq(t, `{"classes":["10","9"]}`, rec.Body.String())

	c, rec = env.request(http.MethodGet, "/v1/classes/10/divisions", "")
	c.SetParamNames("class")
	c.SetParamValues("10")
	assert.NoError(t, env.roster.ListDivisions(c))
	assert.JSONEq(t, `{"divisions":["A","B"]}`, rec.Body.String())
}
