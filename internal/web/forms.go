package web

import (
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/service"
)

// deadlineLayout matches the value of an HTML datetime-local input.
const deadlineLayout = "2006-01-02T15:04"

const (
	minPasswordLen = 8
	maxPasswordLen = 128
	maxEmailLen    = 255
)

// RegisterForm backs the /auth/register page.
type RegisterForm struct {
	Email    string
	Password string
	Confirm  string
	Errors   map[string]string
}

func parseRegisterForm(c echo.Context) *RegisterForm {
	return &RegisterForm{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
		Confirm:  c.FormValue("confirm_password"),
		Errors:   make(map[string]string),
	}
}

func (f *RegisterForm) Validate() bool {
	if f.Email == "" {
		f.Errors["email"] = "email is required"
	} else if utf8.RuneCountInString(f.Email) > maxEmailLen {
		f.Errors["email"] = "email is too long"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		f.Errors["email"] = "enter a valid email address"
	}

	if n := utf8.RuneCountInString(f.Password); n < minPasswordLen || n > maxPasswordLen {
		f.Errors["password"] = "password must be 8 to 128 characters"
	}
	if f.Confirm != f.Password {
		f.Errors["confirm_password"] = "passwords do not match"
	}
	return len(f.Errors) == 0
}

// LoginForm backs the /auth/login page.
type LoginForm struct {
	Email    string
	Password string
	Remember bool
	Errors   map[string]string
}

func parseLoginForm(c echo.Context) *LoginForm {
	return &LoginForm{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
		Remember: c.FormValue("remember") != "",
		Errors:   make(map[string]string),
	}
}

func (f *LoginForm) Validate() bool {
	if f.Email == "" {
		f.Errors["email"] = "email is required"
	}
	if f.Password == "" {
		f.Errors["password"] = "password is required"
	}
	return len(f.Errors) == 0
}

// TaskForm backs task creation and editing. It only parses; the semantic
// constraints live in the task service and come back as a ValidationError.
type TaskForm struct {
	Title       string
	Description string
	Deadline    string
	Priority    string
	CategoryID  string
	IsDone      bool
	Errors      map[string]string
}

func parseTaskForm(c echo.Context) *TaskForm {
	return &TaskForm{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Deadline:    strings.TrimSpace(c.FormValue("deadline")),
		Priority:    c.FormValue("priority"),
		CategoryID:  c.FormValue("category_id"),
		IsDone:      c.FormValue("is_done") != "",
		Errors:      make(map[string]string),
	}
}

// taskFormFromModel prefills the edit form, mirroring how the create form
// posts its values back.
func taskFormFromModel(title, description string, deadline *time.Time, priority int, categoryID *uint, isDone bool) *TaskForm {
	f := &TaskForm{
		Title:       title,
		Description: description,
		Priority:    strconv.Itoa(priority),
		CategoryID:  "0",
		IsDone:      isDone,
		Errors:      make(map[string]string),
	}
	if deadline != nil {
		f.Deadline = deadline.Format(deadlineLayout)
	}
	if categoryID != nil {
		f.CategoryID = strconv.FormatUint(uint64(*categoryID), 10)
	}
	return f
}

// Input converts the raw form into a service input. Format-level problems
// (unparseable date, non-numeric ids) are recorded as field errors.
func (f *TaskForm) Input() (service.TaskInput, bool) {
	var input service.TaskInput
	input.Title = f.Title
	input.Description = f.Description
	input.IsDone = f.IsDone

	if f.Deadline != "" {
		parsed, err := time.Parse(deadlineLayout, f.Deadline)
		if err != nil {
			f.Errors["deadline"] = "use the format 2006-01-02T15:04"
		} else {
			input.Deadline = &parsed
		}
	}

	if f.Priority != "" {
		p, err := strconv.Atoi(f.Priority)
		if err != nil {
			f.Errors["priority"] = "priority must be 1, 2 or 3"
		} else {
			input.Priority = p
		}
	}

	if f.CategoryID != "" {
		id, err := strconv.ParseUint(f.CategoryID, 10, 32)
		if err != nil {
			f.Errors["category_id"] = "invalid category"
		} else {
			input.CategoryID = uint(id)
		}
	}

	return input, len(f.Errors) == 0
}

// absorb copies service-side validation messages onto the form.
func (f *TaskForm) absorb(err *service.ValidationError) {
	for field, msg := range err.Fields {
		f.Errors[field] = msg
	}
}
