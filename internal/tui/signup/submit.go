package signup

import (
	"context"

	"github.com/Iron-Ham/toaster/internal/logging"
	"github.com/Iron-Ham/toaster/internal/toast"
)

// Toast texts.
const (
	FailureTitle       = "Sign-up failed"
	SuccessTitle       = "Sign-up complete"
	SuccessDescription = "You can now log in"
)

// Publisher is the part of toast.Store the submitter needs.
type Publisher interface {
	Publish(data toast.Data) (string, error)
}

// Result describes one submission.
type Result struct {
	FieldErrors []FieldError
	// Err is the registration error, if registration was attempted and failed.
	Err error
	// ToastIDs lists the toasts published, in order.
	ToastIDs []string
}

// OK reports whether the account was created.
func (r Result) OK() bool {
	return len(r.FieldErrors) == 0 && r.Err == nil
}

// Submitter validates form input, registers the account and publishes the
// outcome.
type Submitter struct {
	pub    Publisher
	reg    Registrar
	logger *logging.Logger
}

// NewSubmitter creates a Submitter. A nil logger disables logging.
func NewSubmitter(pub Publisher, reg Registrar, logger *logging.Logger) *Submitter {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Submitter{pub: pub, reg: reg, logger: logger.WithComponent("signup")}
}

// Submit runs one submission. Every invalid field yields an error toast
// carrying the field message, and every failure ends with a summary error
// toast without description. Success yields a single success toast.
func (s *Submitter) Submit(ctx context.Context, f Fields) Result {
	var res Result

	res.FieldErrors = Validate(f)
	if len(res.FieldErrors) == 0 {
		res.Err = s.reg.Register(ctx, f)
	}

	if res.OK() {
		s.logger.Info("account registered")
		s.publish(&res, toast.Data{
			Category:    toast.CategorySuccess,
			Title:       SuccessTitle,
			Description: SuccessDescription,
		})
		return res
	}

	for _, fe := range res.FieldErrors {
		s.publish(&res, toast.Data{
			Category:    toast.CategoryError,
			Title:       FailureTitle,
			Description: fe.Message,
		})
	}
	if res.Err != nil {
		s.logger.Warn("registration failed", "error", res.Err.Error())
	} else {
		s.logger.Debug("sign-up rejected", "invalid_fields", len(res.FieldErrors))
	}
	s.publish(&res, toast.Data{Category: toast.CategoryError, Title: FailureTitle})
	return res
}

func (s *Submitter) publish(res *Result, data toast.Data) {
	id, err := s.pub.Publish(data)
	if err != nil {
		s.logger.Error("publishing toast", "error", err.Error())
		return
	}
	res.ToastIDs = append(res.ToastIDs, id)
}
