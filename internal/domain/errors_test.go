package domain_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"launchdash/internal/domain"
	"launchdash/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	err := fmt.Errorf("load: %w", domain.WrapError(io.ErrUnexpectedEOF, errcodes.InvalidDataset, "row 3"))

	rq.EqualError(err, "load: row 3: unexpected EOF")
	rq.True(errors.Is(err, io.ErrUnexpectedEOF))

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.InvalidDataset, code)

	_, ok = domain.GetCode(io.EOF)
	rq.False(ok)

	rq.EqualError(domain.NewError(errcodes.DatasetUnavailable, "no rows"), "no rows")
}
