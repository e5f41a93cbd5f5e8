package vbasession

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

// Session is a live automation host with one open document. It is not safe
// for concurrent use; the host object model is apartment-threaded.
type Session struct {
	host   olehost.Host
	doc    olehost.Document
	logger *slog.Logger
	closed bool
}

// Open launches the host for dt and opens the document at path. On any
// failure after launch, the host is quit before the error is returned.
func Open(f olehost.Factory, dt doctype.DocType, path string, mode olehost.OpenMode) (*Session, error) {
	logger := slog.With(
		slog.String("app", string(dt.App)),
		slog.String("path", path),
	)

	logger.Debug("launching automation host")

	host, err := f.Launch(dt)
	if err != nil {
		if errors.Is(err, vbaerrors.ErrHostLaunchFailed) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", vbaerrors.ErrHostLaunchFailed, err)
	}

	logger.Debug("opening document", slog.String("mode", mode.String()))

	doc, err := host.OpenDocument(path, mode)
	if err != nil {
		qerr := host.Quit()
		if qerr != nil {
			logger.Warn("failed to quit host after open failure", slog.Any("err", qerr))
		}

		// The pre-flight lock probe races against other processes; the host
		// can still find the file in use here.
		var he *olehost.HostError
		if errors.As(err, &he) && he.InUse() {
			return nil, fmt.Errorf("%w: %w (file is open in another process)", vbaerrors.ErrDocumentOpenFailed, err)
		}

		return nil, fmt.Errorf("%w: %w", vbaerrors.ErrDocumentOpenFailed, err)
	}

	logger.Debug("document opened", slog.String("host_version", host.Version()))

	return &Session{host: host, doc: doc, logger: logger}, nil
}

func (s *Session) Document() olehost.Document {
	return s.doc
}

// HostVersion reports the launched host's version, which keys the trust
// setting's store path.
func (s *Session) HostVersion() string {
	return s.host.Version()
}

// Save persists the open document in place.
func (s *Session) Save() error {
	err := s.doc.Save()
	if err != nil {
		return fmt.Errorf("%w: %w", vbaerrors.ErrSaveFailed, err)
	}

	return nil
}

// Close closes the document without saving and quits the host. Both steps
// are attempted even if the first fails. The returned error wraps
// [vbaerrors.ErrTeardown] and is advisory: by the time Close runs, the
// operation's outcome is already determined. Close is idempotent.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	var merr error

	err := s.doc.Close()
	if err != nil {
		s.logger.Warn("failed to close document", slog.Any("err", err))
		merr = multierror.Append(merr, fmt.Errorf("%w: close document: %w", vbaerrors.ErrTeardown, err))
	}

	err = s.host.Quit()
	if err != nil {
		s.logger.Warn("failed to quit host", slog.Any("err", err))
		merr = multierror.Append(merr, fmt.Errorf("%w: quit host: %w", vbaerrors.ErrTeardown, err))
	}

	return merr
}
