package handler

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"jobboard/internal/models"
	"jobboard/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// allowedExtensions are the upload types accepted for resumes and logos.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

type FileHandler interface {
	Upload(c *gin.Context)
	Download(c *gin.Context)
}

type fileHandler struct {
	storage *storage.FileStorage
	log     *logrus.Logger
}

func NewFileHandler(storage *storage.FileStorage, log *logrus.Logger) FileHandler {
	return &fileHandler{storage: storage, log: log}
}

func (h *fileHandler) Upload(c *gin.Context) {
	folder := c.PostForm("folder")
	if folder == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Folder is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File extension " + ext + " is not allowed"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.log.Errorf("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}
	defer src.Close()

	storedName, err := h.storage.Store(src, fileHeader.Filename, folder)
	if err != nil {
		h.log.Errorf("Failed to store file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, models.FileUploadResponse{
		FileName:   storedName,
		UploadedAt: time.Now(),
	})
}

func (h *fileHandler) Download(c *gin.Context) {
	fileName := c.Query("fileName")
	folder := c.Query("folder")
	if fileName == "" || folder == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileName and folder are required"})
		return
	}

	length := h.storage.FileLength(fileName, folder)
	if length == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "File " + fileName + " not found"})
		return
	}

	file, err := h.storage.Open(fileName, folder)
	if err != nil {
		h.log.Errorf("Failed to open file %s/%s: %v", folder, fileName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download file"})
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.DataFromReader(http.StatusOK, length, "application/octet-stream", file, nil)
}
