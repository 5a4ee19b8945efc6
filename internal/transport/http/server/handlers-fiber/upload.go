package handlers_fiber

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadResult describes a stored upload.
type UploadResult struct {
	Stored string `json:"stored"`
	Name   string `json:"name"`
	Size   int64  `json:"size"`
}

// FileUpload handles the multipart field "file" according to its content type.
func (h *Handler) FileUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh.Filename == "" {
		return c.Status(http.StatusBadRequest).SendString("No file uploaded.")
	}

	mediaType, _, err := mime.ParseMediaType(fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		mediaType = fiber.MIMEOctetStream
	}

	switch mediaType {
	case fiber.MIMETextPlain:
		content, err := readUpload(fh)
		if err != nil {
			return h.uploadFailed(c, err)
		}
		return c.SendString(string(content))
	case "text/csv":
		rows, err := readCSV(fh)
		if err != nil {
			return c.Status(http.StatusBadRequest).SendString(fmt.Sprintf("Invalid CSV: %v", err))
		}
		return c.JSON(rows)
	default:
		return h.storeUpload(c, fh)
	}
}

func (h *Handler) storeUpload(c *fiber.Ctx, fh *multipart.FileHeader) error {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return h.uploadFailed(c, err)
	}
	name := uuid.NewString() + filepath.Ext(filepath.Base(fh.Filename))
	if err := c.SaveFile(fh, filepath.Join(h.uploadDir, name)); err != nil {
		return h.uploadFailed(c, err)
	}
	h.log.Infow("upload stored", "name", name, "filename", fh.Filename, "size", fh.Size)
	return c.Status(http.StatusCreated).JSON(UploadResult{Stored: name, Name: fh.Filename, Size: fh.Size})
}

func (h *Handler) uploadFailed(c *fiber.Ctx, err error) error {
	h.log.Errorw("upload failed", "error", err)
	return c.Status(http.StatusInternalServerError).SendString("Upload failed.")
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// readCSV returns one object per data row keyed by the header row.
func readCSV(fh *multipart.FileHeader) ([]map[string]string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = rec[i]
		}
		rows = append(rows, row)
	}
}
