package http

import (
	"errors"
	"log"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/internal/itinerary"
)

var errInvalidBody = errors.New("invalid request body")

// ViewItinerary renders the tabbed itinerary fragment.
func (h *Handler) ViewItinerary(c echo.Context) error {
	it, err := bindItinerary(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	view, err := itinerary.RenderView(it)
	if err != nil {
		return renderError(c, err)
	}
	return c.HTML(http.StatusOK, string(view))
}

// PrintItinerary renders the standalone printable document.
func (h *Handler) PrintItinerary(c echo.Context) error {
	it, err := bindItinerary(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	doc, err := itinerary.RenderPrintable(it)
	if err != nil {
		return renderError(c, err)
	}
	return c.HTMLBlob(http.StatusOK, doc)
}

// DownloadItinerary returns the plain-text itinerary as an attachment.
func (h *Handler) DownloadItinerary(c echo.Context) error {
	it, err := bindItinerary(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": itinerary.DownloadFilename(it),
	})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, itinerary.TextContentType, []byte(itinerary.RenderDownloadText(it)))
}

// bindItinerary decodes and validates an itinerary request body.
func bindItinerary(c echo.Context) (*domain.Itinerary, error) {
	var it domain.Itinerary
	if err := c.Bind(&it); err != nil {
		return nil, errInvalidBody
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return &it, nil
}

func renderError(c echo.Context, err error) error {
	log.Printf("ERROR: failed to render itinerary: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to render itinerary"})
}
