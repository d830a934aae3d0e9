package scenario

import (
	"fmt"
	"time"

	"github.com/Iron-Ham/toaster/internal/toast"
)

// Builtin returns the built-in scenarios in name order.
func Builtin() []Scenario {
	return []Scenario{
		burst(),
		categories(),
		signupSuccess(),
		signupValidation(),
	}
}

func burst() Scenario {
	steps := make([]Step, 8)
	for i := range steps {
		steps[i] = Step{
			Delay: 150 * time.Millisecond,
			Data:  toast.Data{Title: fmt.Sprintf("Notification %d", i+1)},
		}
	}
	steps[0].Delay = 0
	return Scenario{
		Name:        "burst",
		Description: "Eight info toasts in quick succession",
		Steps:       steps,
	}
}

func categories() Scenario {
	return Scenario{
		Name:        "categories",
		Description: "One toast per category, plus an unknown one shown as info",
		Steps: []Step{
			{Data: toast.Data{Category: toast.CategoryInfo, Title: "Heads up", Description: "Toasts close after three seconds"}},
			{Delay: 400 * time.Millisecond, Data: toast.Data{Category: toast.CategorySuccess, Title: "Saved", Description: "Your changes are live"}},
			{Delay: 400 * time.Millisecond, Data: toast.Data{Category: toast.CategoryError, Title: "Something went wrong", Description: "Please try again"}},
			{Delay: 400 * time.Millisecond, Data: toast.Data{Category: "warning", Title: "Unknown category"}},
		},
	}
}

func signupSuccess() Scenario {
	return Scenario{
		Name:        "signup-success",
		Description: "A successful sign-up",
		Steps: []Step{
			{Data: toast.Data{Category: toast.CategorySuccess, Title: "Sign-up complete", Description: "You can now log in"}},
		},
	}
}

func signupValidation() Scenario {
	const title = "Sign-up failed"
	return Scenario{
		Name:        "signup-validation",
		Description: "A sign-up with every field invalid",
		Steps: []Step{
			{Data: toast.Data{Category: toast.CategoryError, Title: title, Description: "Name is required"}},
			{Data: toast.Data{Category: toast.CategoryError, Title: title, Description: "Email is required"}},
			{Data: toast.Data{Category: toast.CategoryError, Title: title, Description: "Password must be at least 6 characters"}},
			{Data: toast.Data{Category: toast.CategoryError, Title: title}},
		},
	}
}
