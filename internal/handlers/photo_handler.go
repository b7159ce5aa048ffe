package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/httpresp"
	ucHouse "github.com/BruksfildServices01/house-hunting/internal/usecase/house"
)

const multipartMemory = 32 << 20

type PhotoHandler struct {
	upload   *ucHouse.UploadPhotos
	maxBytes int64
}

// NewPhotoHandler reads at most maxBytes+1 bytes per file so oversized
// uploads are rejected without being buffered whole.
func NewPhotoHandler(upload *ucHouse.UploadPhotos, maxBytes int64) *PhotoHandler {
	return &PhotoHandler{upload: upload, maxBytes: maxBytes}
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			httperr.BadRequest(c, domain.MsgNoPhotos)
			return
		}
		httperr.BadRequest(c, msgInvalidBody)
		return
	}

	files := form.File["photos[]"]
	if len(files) == 0 {
		files = form.File["photos"]
	}
	captions := form.Value["captions[]"]
	if len(captions) == 0 {
		captions = form.Value["captions"]
	}

	uploads := make([]domain.PhotoUpload, 0, len(files))
	for i, fh := range files {
		data, err := h.read(fh)
		if err != nil {
			httperr.BadRequest(c, msgInvalidBody)
			return
		}
		up := domain.PhotoUpload{Filename: fh.Filename, Data: data}
		if i < len(captions) {
			up.Caption = captions[i]
		}
		uploads = append(uploads, up)
	}

	photos, err := h.upload.Execute(c.Request.Context(), id, c.Param("id"), uploads)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, photos, domain.MsgPhotosUploaded)
}

func (h *PhotoHandler) read(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxBytes > 0 {
		r = io.LimitReader(f, h.maxBytes+1)
	}
	return io.ReadAll(r)
}
