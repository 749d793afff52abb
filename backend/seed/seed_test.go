package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"elearning/backend/models"
	"elearning/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlFixture = `
courses:
  - id: 10
    title: Go in Practice
    description: Services and tooling
    instructor: Rob
    level: advanced
    price: 49.5
    rating: 4.2
    students_count: 12
    category: programming
    modules:
      - id: 1
        title: Goroutines
      - id: 2
        title: Channels
students:
  - id: 5
    name: Grace
    email: grace@example.com
quizzes:
  - id: 3
    course_id: 10
    module_id: 1
    title: Concurrency
    questions:
      - id: 1
        question: Which keyword starts a goroutine?
        options: [go, async, spawn]
        correct_answer: 0
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSampleLoader(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ds, err := SampleLoader{Now: func() time.Time { return fixed }}.Load()
	require.NoError(t, err)

	require.Len(t, ds.Courses, 3)
	assert.Len(t, ds.Students, 2)
	assert.Len(t, ds.Quizzes, 1)
	for i, c := range ds.Courses {
		assert.Equal(t, i+1, c.ID)
		assert.Len(t, c.Modules, 5)
		assert.Equal(t, fixed, c.CreatedAt)
	}
	assert.NoError(t, Validate(ds))
}

func TestFileLoaderYAML(t *testing.T) {
	path := writeFixture(t, "catalog.yaml", yamlFixture)

	ds, err := FileLoader{Path: path}.Load()
	require.NoError(t, err)

	require.Len(t, ds.Courses, 1)
	assert.Equal(t, "Go in Practice", ds.Courses[0].Title)
	assert.Equal(t, 12, ds.Courses[0].StudentsCount)
	assert.Len(t, ds.Courses[0].Modules, 2)
	require.Len(t, ds.Quizzes, 1)
	assert.Equal(t, []string{"go", "async", "spawn"}, ds.Quizzes[0].Questions[0].Options)
	assert.NoError(t, Validate(ds))
}

func TestFileLoaderJSON(t *testing.T) {
	path := writeFixture(t, "catalog.json", `{"courses":[{"id":1,"title":"T","level":"beginner","category":"misc"}]}`)

	ds, err := FileLoader{Path: path}.Load()
	require.NoError(t, err)
	require.Len(t, ds.Courses, 1)
	assert.Equal(t, "misc", ds.Courses[0].Category)
}

func TestFileLoaderRejectsUnknownExtension(t *testing.T) {
	path := writeFixture(t, "catalog.toml", "")
	_, err := FileLoader{Path: path}.Load()
	assert.Error(t, err)
}

func TestValidateRejectsBadData(t *testing.T) {
	cases := map[string]*Dataset{
		"missing title": {Courses: []models.Course{{ID: 1, Level: "beginner", Category: "x"}}},
		"bad email":     {Students: []models.Student{{ID: 1, Name: "A", Email: "not-an-email"}}},
		"answer out of range": {Quizzes: []models.Quiz{{
			ID:    1,
			Title: "Q",
			Questions: []models.Question{
				{ID: 1, Question: "?", Options: []string{"a", "b"}, CorrectAnswer: 2},
			},
		}}},
		"duplicate course id": {Courses: []models.Course{
			{ID: 1, Title: "A", Level: "beginner", Category: "x"},
			{ID: 1, Title: "B", Level: "beginner", Category: "x"},
		}},
	}

	for name, ds := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate(ds))
		})
	}
}

func TestRunSeedsStore(t *testing.T) {
	st := store.NewMemoryStore(nil)
	require.NoError(t, Run(context.Background(), st, SampleLoader{}))

	courses, err := st.Courses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 3)

	student, err := st.Student(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", student.Name)

	quiz, err := st.Quiz(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)
}

func TestLoaderFor(t *testing.T) {
	assert.IsType(t, SampleLoader{}, LoaderFor(""))
	assert.Equal(t, FileLoader{Path: "x.yaml"}, LoaderFor("x.yaml"))
}
