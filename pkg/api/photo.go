package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/errors"
	"github.com/unihub/cli/pkg/logger"
)

// MaxPhotoSize is enforced client-side before any request is sent
const MaxPhotoSize = 5 * 1024 * 1024

var allowedPhotoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// PhotoUploadResponse reports the new photo paths and daily quota state
type PhotoUploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		PhotoPath      string `json:"photo_path"`
		PhotoThumbPath string `json:"photo_thumb_path"`
		IsDefault      bool   `json:"is_default,omitempty"`
	} `json:"data"`
	UploadsToday     int `json:"uploads_today"`
	UploadsRemaining int `json:"uploads_remaining"`
}

// PhotoStatsResponse is the daily upload quota state
type PhotoStatsResponse struct {
	Success          bool `json:"success"`
	UploadsToday     int  `json:"uploads_today"`
	UploadsRemaining int  `json:"uploads_remaining"`
	LimitReached     bool `json:"limit_reached"`
	HasCustomPhoto   bool `json:"has_custom_photo"`
}

// ValidatePhotoFile checks extension, size, and sniffed MIME type without
// sending anything over the wire.
func ValidatePhotoFile(filePath string) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	if !allowedPhotoExtensions[ext] {
		return errors.PhotoFormatError(strings.TrimPrefix(ext, "."))
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.FileNotFoundError(filePath)
		}
		return err
	}

	if info.Size() > MaxPhotoSize {
		return errors.PhotoSizeError(float64(info.Size())/(1024*1024), MaxPhotoSize/(1024*1024))
	}

	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return err
	}

	mimeType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(mimeType, "image/") {
		return errors.PhotoFormatError(strings.TrimPrefix(ext, ".")).
			WithSuggestion(fmt.Sprintf("File content looks like %s, not an image.", mimeType))
	}

	return nil
}

// UploadPhoto uploads a new profile photo
func UploadPhoto(filePath string) (*PhotoUploadResponse, error) {
	logger.Debug("Uploading photo", "file_path", filePath)

	if err := ValidatePhotoFile(filePath); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("photo", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	var result PhotoUploadResponse
	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", writer.FormDataContentType()).
		SetBody(body.Bytes()).
		SetResult(&result).
		Post("/api/profile/photo")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	logger.Debug("Photo uploaded", "uploads_today", result.UploadsToday)
	return &result, nil
}

// DeletePhoto deletes the custom photo and reverts to the default
func DeletePhoto() (*PhotoUploadResponse, error) {
	logger.Debug("Deleting photo")

	var result PhotoUploadResponse
	resp, err := client.GetClient().
		R().
		SetResult(&result).
		Delete("/api/profile/photo")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetPhotoStats retrieves the daily upload quota state
func GetPhotoStats() (*PhotoStatsResponse, error) {
	logger.Debug("Fetching photo upload stats")

	var result PhotoStatsResponse
	resp, err := client.GetClient().
		R().
		SetResult(&result).
		Get("/api/profile/photo/stats")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &result, nil
}
