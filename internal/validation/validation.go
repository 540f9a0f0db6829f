package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/edubot-backend/internal/domain"
	pkgerrors "github.com/yungbote/edubot-backend/internal/pkg/errors"
)

// Defaultable requests fill in optional fields before validation.
type Defaultable interface {
	ApplyDefaults()
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterStructValidation(quizSourceRule, domain.QuizRequest{})
	})
	return validate
}

func quizSourceRule(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.QuizRequest)
	if strings.TrimSpace(req.Topic) == "" && strings.TrimSpace(req.Text) == "" {
		sl.ReportError(req.Text, "text", "Text", "topic_or_text", "")
	}
}

// Request applies defaults and validates req. Failures wrap ErrInvalidArgument.
func Request(req any) error {
	if d, ok := req.(Defaultable); ok {
		d.ApplyDefaults()
	}
	err := instance().Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", pkgerrors.ErrInvalidArgument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "topic_or_text":
		return "either topic or text must be provided"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
