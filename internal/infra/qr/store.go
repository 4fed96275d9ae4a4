package qr

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"coworking-booking/internal/pkg/errs"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// FileStore writes one PNG per access code into a directory served under PublicBaseURL.
type FileStore struct {
	dir     string
	baseURL string
	size    int
}

func NewFileStore(dir, publicBaseURL string, size int) *FileStore {
	if size <= 0 {
		size = defaultSize
	}
	return &FileStore{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		size:    size,
	}
}

func (s *FileStore) DownloadURL(codeID string) string {
	return s.baseURL + "/" + fileName(codeID)
}

// Save encodes the code id itself; scanners resolve it server side.
func (s *FileStore) Save(ctx context.Context, codeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	png, err := qrcode.Encode(codeID, qrcode.Medium, s.size)
	if err != nil {
		return errs.Wrap(err, "encode qr code")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errs.Wrap(err, "create qr storage dir")
	}

	// write then rename so a half-written file is never served
	tmp, err := os.CreateTemp(s.dir, ".qr-*")
	if err != nil {
		return errs.Wrap(err, "create qr temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(png); err != nil {
		tmp.Close()
		return errs.Wrap(err, "write qr code")
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "close qr code")
	}
	if err := os.Rename(tmp.Name(), s.Path(codeID)); err != nil {
		return errs.Wrap(err, "store qr code")
	}
	return nil
}

func (s *FileStore) Remove(_ context.Context, codeID string) error {
	if err := os.Remove(s.Path(codeID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "remove qr code")
	}
	return nil
}

func (s *FileStore) Path(codeID string) string {
	return filepath.Join(s.dir, fileName(codeID))
}

func (s *FileStore) Dir() string { return s.dir }

func fileName(codeID string) string {
	return codeID + ".png"
}
