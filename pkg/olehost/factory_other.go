//go:build !windows

package olehost

import (
	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

type stubFactory struct{}

func newPlatformFactory() Factory {
	return stubFactory{}
}

func (stubFactory) Launch(doctype.DocType) (Host, error) {
	return nil, vbaerrors.ErrHostUnavailable
}
