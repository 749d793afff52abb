package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"elearning/backend/models"
	"elearning/backend/store"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Dataset is the initial catalog the platform starts from
type Dataset struct {
	Courses  []models.Course  `json:"courses" validate:"dive"`
	Students []models.Student `json:"students" validate:"dive"`
	Quizzes  []models.Quiz    `json:"quizzes" validate:"dive"`
}

// Loader supplies the initial dataset
type Loader interface {
	Load() (*Dataset, error)
}

// FileLoader reads a dataset from a .json, .yaml or .yml file
type FileLoader struct {
	Path string
}

func (f FileLoader) Load() (*Dataset, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		// decode through a generic tree so the json tags on the models apply
		var tree interface{}
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("decode yaml seed file: %w", err)
		}
		if raw, err = json.Marshal(tree); err != nil {
			return nil, fmt.Errorf("convert yaml seed file: %w", err)
		}
	case ".json":
	default:
		return nil, fmt.Errorf("unsupported seed file type %q", filepath.Ext(f.Path))
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &ds, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		q := sl.Current().Interface().(models.Question)
		if q.CorrectAnswer >= len(q.Options) {
			sl.ReportError(q.CorrectAnswer, "CorrectAnswer", "correct_answer", "optionindex", "")
		}
	}, models.Question{})
	return v
}

// Validate checks field constraints and that ids are unique per collection
func Validate(ds *Dataset) error {
	if err := validate.Struct(ds); err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}

	seen := map[string]map[int]bool{"course": {}, "student": {}, "quiz": {}}
	check := func(kind string, id int) error {
		if seen[kind][id] {
			return fmt.Errorf("invalid seed data: duplicate %s id %d", kind, id)
		}
		seen[kind][id] = true
		return nil
	}
	for _, c := range ds.Courses {
		if err := check("course", c.ID); err != nil {
			return err
		}
	}
	for _, s := range ds.Students {
		if err := check("student", s.ID); err != nil {
			return err
		}
	}
	for _, q := range ds.Quizzes {
		if err := check("quiz", q.ID); err != nil {
			return err
		}
	}
	return nil
}

// Apply validates ds and writes it into st
func Apply(ctx context.Context, st store.Store, ds *Dataset) error {
	if err := Validate(ds); err != nil {
		return err
	}

	for _, c := range ds.Courses {
		if err := st.SaveCourse(ctx, c); err != nil {
			return fmt.Errorf("seed course %d: %w", c.ID, err)
		}
	}
	for _, s := range ds.Students {
		if err := st.SaveStudent(ctx, s); err != nil {
			return fmt.Errorf("seed student %d: %w", s.ID, err)
		}
	}
	for _, q := range ds.Quizzes {
		if err := st.SaveQuiz(ctx, q); err != nil {
			return fmt.Errorf("seed quiz %d: %w", q.ID, err)
		}
	}

	log.Printf("Seeded %d courses, %d students, %d quizzes", len(ds.Courses), len(ds.Students), len(ds.Quizzes))
	return nil
}

// Run loads a dataset from loader and applies it
func Run(ctx context.Context, st store.Store, loader Loader) error {
	ds, err := loader.Load()
	if err != nil {
		return err
	}
	return Apply(ctx, st, ds)
}

// LoaderFor returns a FileLoader for a non-empty path and the built-in sample data otherwise
func LoaderFor(path string) Loader {
	if path == "" {
		return SampleLoader{}
	}
	return FileLoader{Path: path}
}
