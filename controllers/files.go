package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"PGRegistry/services"
	"PGRegistry/util"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 1 << 20 // 1 MiB

func Files(router *gin.Engine) {
	files := router.Group("/files")
	{
		files.POST("/preview", PreviewFile)
		files.POST("/upload", UploadFile)
		files.GET("/:prefix/:name", DownloadFile)
	}
}

// PreviewFile converts an uploaded image into an inline data-URL the
// form can render before final submission.
func PreviewFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	defer file.Close()
	if err := validateImageFile(header); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	preview, err := services.Preview(file, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(preview))
}

// UploadFile stores an image in the blob store and returns its public URL.
func UploadFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	defer file.Close()
	if err := validateImageFile(header); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	prefix := c.PostForm("prefix")
	if prefix == "" {
		prefix = "tenant-documents"
	}
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	url, err := services.Upload(c, data, header.Header.Get("Content-Type"), header.Filename, prefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(url))
}

// DownloadFile serves a stored blob by its minted public name.
func DownloadFile(c *gin.Context) {
	name := c.Param("prefix") + "/" + c.Param("name")
	data, contentType, err := services.Download(c, name)
	if err != nil {
		c.JSON(http.StatusNotFound, util.FailedResponse(errors.New(util.ERR_FILE_NOT_FOUND)))
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// validateImageFile enforces the constraints the upload service
// itself does not: image MIME type and the 1 MiB cap.
func validateImageFile(header *multipart.FileHeader) error {
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return errors.New(util.ERR_NOT_AN_IMAGE)
	}
	if header.Size > maxUploadBytes {
		return errors.New(util.ERR_FILE_TOO_LARGE)
	}
	return nil
}
