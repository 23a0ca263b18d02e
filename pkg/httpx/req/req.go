package req

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"launchdash/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Validate runs struct tag validation and maps failures to an invalid
// argument error.
func Validate(r *http.Request, dest any) error {
	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// QueryFloat parses an optional finite float query parameter. Absent
// parameters return nil.
func QueryFloat(query url.Values, name string) (*float64, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && (math.IsInf(v, 0) || math.IsNaN(v)) {
		err = fmt.Errorf("%q is not finite", raw)
	}

	if err != nil {
		return nil, failure.NewInvalidArgumentError(
			fmt.Errorf("strconv.ParseFloat(%s): %w", name, err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(fmt.Sprintf("query parameter %q must be a finite number", name)),
		)
	}

	return &v, nil
}
