package filemgr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var (
	UploadDir = filepath.Join("static", "uploads")
	ThumbDir  = filepath.Join("static", "uploads", "thumb")

	allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	allowedMIMEs      = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")

	maxUploadSize = int64(10 << 20)
)

// SavedImage describes a photo written to the upload directory.
type SavedImage struct {
	Filename string
	MimeType string
	Size     int64
	Width    int
	Height   int
}

func isExtensionAllowed(ext string) bool {
	for _, a := range allowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string) bool {
	for _, a := range allowedMIMEs {
		if mimeType == a {
			return true
		}
	}
	return false
}

// SaveImage validates, re-encodes and stores an uploaded photo under a
// fresh uuid filename, and writes a 200px thumbnail alongside it.
// Re-encoding to JPEG drops any EXIF metadata the upload carried.
func SaveImage(file multipart.File, header *multipart.FileHeader) (SavedImage, error) {
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext) {
		return SavedImage{}, fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}

	buf, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return SavedImage{}, fmt.Errorf("read file: %w", err)
	}
	if int64(len(buf)) > maxUploadSize {
		return SavedImage{}, ErrFileTooLarge
	}

	mimeType := http.DetectContentType(buf)
	if !isMIMEAllowed(mimeType) {
		return SavedImage{}, fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return SavedImage{}, fmt.Errorf("decode image %q: %w", header.Filename, err)
	}

	encoded := new(bytes.Buffer)
	if err := jpeg.Encode(encoded, img, &jpeg.Options{Quality: 90}); err != nil {
		return SavedImage{}, fmt.Errorf("encode image: %w", err)
	}

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return SavedImage{}, fmt.Errorf("mkdir %s: %w", UploadDir, err)
	}

	filename := uuid.New().String() + ".jpg"
	fullPath := filepath.Join(UploadDir, filename)
	if err := os.WriteFile(fullPath, encoded.Bytes(), 0o644); err != nil {
		return SavedImage{}, fmt.Errorf("write %s: %w", fullPath, err)
	}

	if err := writeThumbnail(img, filename); err != nil {
		return SavedImage{}, err
	}

	bounds := img.Bounds()
	return SavedImage{
		Filename: filename,
		MimeType: "image/jpeg",
		Size:     int64(encoded.Len()),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

func writeThumbnail(img image.Image, filename string) error {
	resized := imaging.Resize(img, 200, 0, imaging.Lanczos)

	if err := os.MkdirAll(ThumbDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", ThumbDir, err)
	}

	path := filepath.Join(ThumbDir, filename)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}

// RemoveImage deletes a stored photo and its thumbnail. Missing files
// are not an error.
func RemoveImage(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid filename: %q", filename)
	}

	if err := os.Remove(filepath.Join(UploadDir, filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(filepath.Join(ThumbDir, filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ListUploads returns the filenames currently present in the upload
// directory, thumbnails excluded.
func ListUploads() ([]string, error) {
	entries, err := os.ReadDir(UploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
