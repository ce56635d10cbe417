package config

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/iconshelf/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sshGitPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(Duration); ok {
				return int64(d.Duration)
			}
			return nil
		}, Duration{})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			return isGitURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if _, _, err := net.SplitHostPort(cfg.Serve.Addr); err != nil {
		return apperrors.NewValidationError("serve.addr", fmt.Sprintf("invalid listen address %q", cfg.Serve.Addr), err)
	}

	if cfg.DarkMarker == cfg.Extension {
		return apperrors.NewValidationError("dark_marker", "dark_marker must differ from extension", nil)
	}

	return nil
}

func isGitURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}

	if parsed, err := url.Parse(raw); err == nil {
		switch strings.ToLower(parsed.Scheme) {
		case "http", "https", "ssh", "git":
			return parsed.Host != ""
		case "file":
			return parsed.Path != ""
		}
	}

	if sshGitPattern.MatchString(raw) {
		return true
	}

	if strings.Contains(raw, "\x00") {
		return false
	}

	return strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "./") || strings.HasPrefix(raw, "../")
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.serve.addr" into "serve.addr".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
