package http

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/domain"
)

// SalesReportHandler expone el reporte de ventas por editorial.
type SalesReportHandler struct {
	uc      *usecase.SalesReportUseCase
	pdf     *usecase.SalesReportPDFUseCase
	timeout time.Duration
}

// NewSalesReportHandler construye el handler. timeout <= 0 no limita la consulta.
func NewSalesReportHandler(uc *usecase.SalesReportUseCase, pdf *usecase.SalesReportPDFUseCase, timeout time.Duration) *SalesReportHandler {
	return &SalesReportHandler{uc: uc, pdf: pdf, timeout: timeout}
}

// GetByPublisher godoc
// @Summary      Ventas por editorial
// @Description  El identificador se interpreta como id si es un entero; si no, como subcadena del nombre (sin distinguir mayúsculas).
// @Tags         reports
// @Produce      json
// @Param        identifier  path  string  true  "ID o fragmento del nombre de la editorial"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/publishers/{identifier}/sales [get]
func (h *SalesReportHandler) GetByPublisher(c *fiber.Ctx) error {
	return h.report(c, pathIdentifier(c))
}

// Search godoc
// @Summary      Ventas por editorial (query string)
// @Tags         reports
// @Produce      json
// @Param        publisher  query  string  true  "ID o fragmento del nombre de la editorial"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesReportHandler) Search(c *fiber.Ctx) error {
	return h.report(c, c.Query("publisher"))
}

func (h *SalesReportHandler) report(c *fiber.Ctx, identifier string) error {
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.uc.GetSalesReport(ctx, identifier)
	if err != nil {
		return writeReportError(c, err)
	}
	return c.JSON(out)
}

// GetPDFByPublisher godoc
// @Summary      Ventas por editorial en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        identifier  path  string  true  "ID o fragmento del nombre de la editorial"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/publishers/{identifier}/sales.pdf [get]
func (h *SalesReportHandler) GetPDFByPublisher(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.pdf.GetSalesReportPDF(ctx, pathIdentifier(c))
	if err != nil {
		return writeReportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="sales-report.pdf"`)
	return c.Send(out)
}

func (h *SalesReportHandler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// pathIdentifier devuelve el parámetro :identifier decodificado (nombres en cirílico llegan escapados).
func pathIdentifier(c *fiber.Ctx) string {
	raw := c.Params("identifier")
	id, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}

func writeReportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IDENTIFIER", Message: "identificador de editorial requerido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay ventas para la editorial"})
	case errors.Is(err, domain.ErrQueryFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "QUERY_FAILED", Message: domain.ErrQueryFailed.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
