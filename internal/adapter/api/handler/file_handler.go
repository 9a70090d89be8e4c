package handler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vroomza/internal/domain/entity"
	"vroomza/internal/domain/repository"
	"vroomza/internal/domain/service"
	"vroomza/pkg/errors"
	"vroomza/pkg/logger"
	"vroomza/pkg/response"
)

type FileHandler struct {
	fileService      service.FileUploadService
	fileMetadataRepo repository.FileMetadataRepository
	maxFileSize      int64
}

var fileHandler *FileHandler

func NewFileHandler(fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository) *FileHandler {
	return &FileHandler{
		fileService:      fileService,
		fileMetadataRepo: fileMetadataRepo,
		maxFileSize:      5 * 1024 * 1024,
	}
}

func SetupFileHandler(fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository) {
	fileHandler = NewFileHandler(fileService, fileMetadataRepo)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}

func (h *FileHandler) uploadImage(c echo.Context, folder, entityType string) error {
	file, err := c.FormFile("file")
	if err != nil {
		logger.Error("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		logger.Warn("Invalid file type: %s", fileType)
		return response.Error(c, errors.BadRequest("Only JPEG, PNG and WebP images are supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	result, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, folder, true)
	if err != nil {
		logger.Error("Error from storage client: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	userID := getUserIDFromContext(c)

	fileID := uuid.New().String()
	metadata := &entity.FileMetadata{
		ID:         fileID,
		URL:        result.URL,
		ObjectName: result.ObjectName,
		EntityType: entityType,
		EntityID:   c.FormValue("entityId"),
		UploadedBy: userID,
		Filename:   file.Filename,
		FileType:   fileType,
		FileSize:   result.Size,
		IsPublic:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.fileMetadataRepo.Create(c.Request().Context(), metadata); err != nil {
		// The file is already in storage; record the failure and move on.
		logger.Error("Failed to save file metadata: %v", err)
	}

	return response.Success(c, map[string]interface{}{
		"id":       fileID,
		"url":      result.URL,
		"filename": file.Filename,
		"size":     result.Size,
	})
}

func (h *FileHandler) UploadVehicleImage(c echo.Context) error {
	return h.uploadImage(c, "vehicle-images", "vehicle")
}

func (h *FileHandler) UploadProfilePhoto(c echo.Context) error {
	return h.uploadImage(c, "profile-photos", "user")
}

// UploadVehicleImages handles a multi-file form upload. Files that fail
// validation are reported individually without aborting the batch.
func (h *FileHandler) UploadVehicleImages(c echo.Context) error {
	if err := c.Request().ParseMultipartForm(h.maxFileSize * int64(entity.MaxListingImages)); err != nil {
		return response.Error(c, errors.BadRequest("Failed to parse form", err))
	}

	form := c.Request().MultipartForm
	files := form.File["files"]

	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("No files provided", nil))
	}

	if len(files) > entity.MaxListingImages {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("Too many files. Maximum %d allowed", entity.MaxListingImages), nil))
	}

	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var uploaded []map[string]interface{}
	var failed []string

	for _, fileHeader := range files {
		if fileHeader.Size > h.maxFileSize {
			failed = append(failed, fmt.Sprintf("%s: file too large", fileHeader.Filename))
			continue
		}

		fileType := fileHeader.Header.Get("Content-Type")
		if !isAllowedImageType(fileType) {
			failed = append(failed, fmt.Sprintf("%s: invalid file type", fileHeader.Filename))
			continue
		}

		src, err := fileHeader.Open()
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: failed to open", fileHeader.Filename))
			continue
		}

		result, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, "vehicle-images", true)
		src.Close()
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: upload failed", fileHeader.Filename))
			continue
		}

		fileID := uuid.New().String()
		metadata := &entity.FileMetadata{
			ID:         fileID,
			URL:        result.URL,
			ObjectName: result.ObjectName,
			EntityType: "vehicle",
			EntityID:   c.FormValue("entityId"),
			UploadedBy: userID,
			Filename:   fileHeader.Filename,
			FileType:   fileType,
			FileSize:   result.Size,
			IsPublic:   true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := h.fileMetadataRepo.Create(c.Request().Context(), metadata); err != nil {
			logger.Error("Failed to save metadata for %s: %v", fileHeader.Filename, err)
		}

		uploaded = append(uploaded, map[string]interface{}{
			"id":       fileID,
			"url":      result.URL,
			"filename": fileHeader.Filename,
			"size":     result.Size,
		})
	}

	if len(uploaded) == 0 {
		return response.Error(c, errors.BadRequest("No files could be uploaded", nil))
	}

	result := map[string]interface{}{
		"uploaded_count": len(uploaded),
		"images":         uploaded,
	}
	if len(failed) > 0 {
		result["errors"] = failed
	}

	return response.Success(c, result)
}

// ListVehicleImages returns the upload records linked to a listing,
// for clients that need object names or sizes rather than the bare
// URLs stored on the vehicle itself.
func (h *FileHandler) ListVehicleImages(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return response.Error(c, errors.BadRequest("Vehicle ID is required", nil))
	}

	files, err := h.fileMetadataRepo.GetByEntityID(c.Request().Context(), "vehicle", vehicleID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, files)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	var req struct {
		ID string `json:"id" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	metadata, err := h.fileMetadataRepo.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return response.Error(c, err)
	}

	if metadata.UploadedBy != userID {
		return response.Error(c, errors.Forbidden("You don't have permission to delete this file", nil))
	}

	if err := h.fileService.DeleteFile(c.Request().Context(), metadata.ObjectName); err != nil {
		logger.Error("Failed to delete file from storage: %v", err)
		return response.Error(c, errors.Internal("Failed to delete file", err))
	}

	if err := h.fileMetadataRepo.Delete(c.Request().Context(), req.ID); err != nil {
		logger.Error("Failed to delete file metadata: %v", err)
	}

	return response.Success(c, map[string]string{
		"message": "File deleted successfully",
	})
}
