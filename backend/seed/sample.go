package seed

import (
	"time"

	"elearning/backend/models"
)

// SampleLoader returns the built-in demo catalog: three courses, two students and one quiz.
type SampleLoader struct {
	// Now stamps created_at and joined_date; time.Now when nil
	Now func() time.Time
}

func (s SampleLoader) Load() (*Dataset, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	return &Dataset{
		Courses: []models.Course{
			{
				ID:            1,
				Title:         "Python Programming Fundamentals",
				Description:   "Learn Python from scratch with hands-on projects and real-world applications",
				Instructor:    "Dr. Sarah Johnson",
				Duration:      "8 weeks",
				Level:         "beginner",
				Price:         99.99,
				Rating:        4.8,
				StudentsCount: 1250,
				Category:      "programming",
				Image:         "/static/images/python_course.jpg",
				Modules: []models.Module{
					{ID: 1, Title: "Introduction to Python", Duration: "2 hours"},
					{ID: 2, Title: "Variables and Data Types", Duration: "1.5 hours"},
					{ID: 3, Title: "Control Structures", Duration: "2.5 hours"},
					{ID: 4, Title: "Functions and Modules", Duration: "3 hours"},
					{ID: 5, Title: "Object-Oriented Programming", Duration: "4 hours"},
				},
				CreatedAt: now,
			},
			{
				ID:            2,
				Title:         "Data Science with R",
				Description:   "Master data analysis and visualization using R programming language",
				Instructor:    "Prof. Mike Chen",
				Duration:      "10 weeks",
				Level:         "intermediate",
				Price:         149.99,
				Rating:        4.6,
				StudentsCount: 890,
				Category:      "data-science",
				Image:         "/static/images/r_course.jpg",
				Modules: []models.Module{
					{ID: 1, Title: "R Basics and RStudio", Duration: "2 hours"},
					{ID: 2, Title: "Data Manipulation with dplyr", Duration: "3 hours"},
					{ID: 3, Title: "Data Visualization with ggplot2", Duration: "3.5 hours"},
					{ID: 4, Title: "Statistical Analysis", Duration: "4 hours"},
					{ID: 5, Title: "Machine Learning in R", Duration: "5 hours"},
				},
				CreatedAt: now,
			},
			{
				ID:            3,
				Title:         "Web Development with React",
				Description:   "Build modern web applications using React, JavaScript, and modern tools",
				Instructor:    "Emily Davis",
				Duration:      "12 weeks",
				Level:         "intermediate",
				Price:         199.99,
				Rating:        4.9,
				StudentsCount: 2100,
				Category:      "web-development",
				Image:         "/static/images/react_course.jpg",
				Modules: []models.Module{
					{ID: 1, Title: "JavaScript ES6+ Fundamentals", Duration: "3 hours"},
					{ID: 2, Title: "React Components and JSX", Duration: "2.5 hours"},
					{ID: 3, Title: "State Management and Hooks", Duration: "4 hours"},
					{ID: 4, Title: "Routing and Navigation", Duration: "2 hours"},
					{ID: 5, Title: "API Integration and Deployment", Duration: "3.5 hours"},
				},
				CreatedAt: now,
			},
		},
		Students: []models.Student{
			{ID: 1, Name: "John Smith", Email: "john@email.com", JoinedDate: now, CoursesCompleted: 2, TotalHours: 45},
			{ID: 2, Name: "Jane Doe", Email: "jane@email.com", JoinedDate: now, CoursesCompleted: 1, TotalHours: 28},
		},
		Quizzes: []models.Quiz{
			{
				ID:       1,
				CourseID: 1,
				ModuleID: 1,
				Title:    "Python Basics Quiz",
				Questions: []models.Question{
					{
						ID:            1,
						Question:      "What is the correct way to create a variable in Python?",
						Options:       []string{"var x = 5", "x = 5", "int x = 5", "x := 5"},
						CorrectAnswer: 1,
					},
					{
						ID:            2,
						Question:      "Which of the following is a Python data type?",
						Options:       []string{"string", "list", "dictionary", "all of the above"},
						CorrectAnswer: 3,
					},
				},
			},
		},
	}, nil
}
