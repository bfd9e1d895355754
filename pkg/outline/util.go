package outline

import "github.com/pkg/errors"

func errWrap(err error, context string) error {
	return errors.Wrap(err, context)
}
