package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/pkg/auth"
	mw "github.com/Astemirdum/bookstore-service/pkg/middleware"
	"github.com/Astemirdum/bookstore-service/pkg/validate"
	_ "github.com/Astemirdum/bookstore-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	borrowSvc BorrowService
	log       *zap.Logger
}

func New(borrowSvc BorrowService, log *zap.Logger) *Handler {
	return &Handler{
		borrowSvc: borrowSvc,
		log:       log.Named("handler"),
	}
}

// NewRouter wires the API behind authn, which puts the caller's profile into the request context.
func (h *Handler) NewRouter(authn echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		authn,
	)

	api.GET("/statuses", h.ListStatuses)

	api.POST("/borrows", h.SubmitBorrow)
	api.GET("/borrows/me", h.MyBorrows)
	api.GET("/borrows/:id", h.GetBorrow)
	api.PUT("/borrows/:id/lend", h.LendBorrow, mw.StaffOnly)
	api.PUT("/borrows/:id/deliver", h.DeliverBorrow, mw.StaffOnly)

	api.POST("/books/:id/sell", h.SellBook)
	api.GET("/payments/me", h.MyPayments)

	api.GET("/members/:id/borrows", h.MemberBorrows, mw.StaffOnly)

	reports := api.Group("/reports", mw.StaffOnly)
	reports.GET("/revenue", h.RevenueSummary)
	reports.GET("/penalties", h.PenaltySummary)
	reports.GET("/low-stock", h.LowStockBooks)

	return e
}

// @Summary Liveness probe
// @Tags manage
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// @Summary Submit a borrow request
// @Tags borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.BorrowRequest true "book and optional days"
// @Success 200 {object} model.BorrowResponse
// @Failure 400 {object} errs.RejectionResponse
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/borrows [post]
func (h *Handler) SubmitBorrow(c echo.Context) error {
	profile, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	borrow, err := h.borrowSvc.SubmitBorrow(c.Request().Context(), profile.MemberID, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.NewBorrowResponse(borrow))
}

// @Summary Hand a pending borrow over to the member
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Param id path int true "borrow id"
// @Success 200 {object} model.BorrowResponse
// @Failure 403 {object} echo.HTTPError
// @Failure 412 {object} echo.HTTPError
// @Router /api/v1/borrows/{id}/lend [put]
func (h *Handler) LendBorrow(c echo.Context) error {
	return h.staffTransition(c, h.borrowSvc.LendBorrow)
}

// @Summary Receive a returned book and settle the borrow
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Param id path int true "borrow id"
// @Success 200 {object} model.BorrowResponse
// @Failure 403 {object} echo.HTTPError
// @Failure 412 {object} echo.HTTPError
// @Router /api/v1/borrows/{id}/deliver [put]
func (h *Handler) DeliverBorrow(c echo.Context) error {
	return h.staffTransition(c, h.borrowSvc.DeliverBorrow)
}

type transitionFunc func(ctx context.Context, borrowID, staffID int64) (model.Borrow, error)

func (h *Handler) staffTransition(c echo.Context, fn transitionFunc) error {
	profile, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	borrow, err := fn(c.Request().Context(), id, profile.MemberID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.NewBorrowResponse(borrow))
}

// GetBorrow shows a borrow with its activity log. Members only see their own borrows.
// @Summary Borrow with its activity log
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Param id path int true "borrow id"
// @Success 200 {object} model.BorrowDetails
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/borrows/{id} [get]
func (h *Handler) GetBorrow(c echo.Context) error {
	profile, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	details, err := h.borrowSvc.GetBorrowDetails(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	if !profile.IsStaff() && details.Borrow.MemberID != profile.MemberID {
		return h.httpError(errs.ErrNotFound)
	}
	return c.JSON(http.StatusOK, details)
}

// @Summary Caller's borrows
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.BorrowResponse
// @Router /api/v1/borrows/me [get]
func (h *Handler) MyBorrows(c echo.Context) error {
	profile, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return h.listBorrows(c, profile.MemberID, model.MemberBorrowsQuery{})
}

// MemberBorrows accepts book_name, category_name, borrow_count and borrow_qty filters.
// @Summary Member's borrows
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "member id"
// @Param book_name query string false "book title contains"
// @Param category_name query string false "category title contains"
// @Param borrow_count query int false "times the member borrowed the book"
// @Param borrow_qty query int false "copies left for borrowing"
// @Success 200 {array} model.BorrowResponse
// @Failure 400 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /api/v1/members/{id}/borrows [get]
func (h *Handler) MemberBorrows(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	q := model.MemberBorrowsQuery{
		BookName:     c.QueryParam("book_name"),
		CategoryName: c.QueryParam("category_name"),
	}
	if q.BorrowCount, err = optionalCount(c, "borrow_count"); err != nil {
		return err
	}
	if q.BorrowQty, err = optionalCount(c, "borrow_qty"); err != nil {
		return err
	}
	return h.listBorrows(c, id, q)
}

func (h *Handler) listBorrows(c echo.Context, memberID int64, q model.MemberBorrowsQuery) error {
	borrows, err := h.borrowSvc.ListMemberBorrows(c.Request().Context(), memberID, q)
	if err != nil {
		return h.httpError(err)
	}
	resp := make([]model.BorrowResponse, 0, len(borrows))
	for _, b := range borrows {
		resp = append(resp, model.NewBorrowResponse(b))
	}
	return c.JSON(http.StatusOK, resp)
}

// @Summary Caller's payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Payment
// @Router /api/v1/payments/me [get]
func (h *Handler) MyPayments(c echo.Context) error {
	profile, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	payments, err := h.borrowSvc.ListMemberPayments(c.Request().Context(), profile.MemberID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, payments)
}

// @Summary Buy copies of a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "book id"
// @Param input body model.SellRequest true "copies"
// @Success 200 {object} model.SellResponse
// @Failure 400 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/books/{id}/sell [post]
func (h *Handler) SellBook(c echo.Context) error {
	profile, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.SellRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.borrowSvc.SellBook(c.Request().Context(), profile.MemberID, bookID, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// @Summary Borrow statuses
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.StatusInfo
// @Router /api/v1/statuses [get]
func (h *Handler) ListStatuses(c echo.Context) error {
	items, err := h.borrowSvc.ListStatuses(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary Revenue per category
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RevenueSummary
// @Failure 403 {object} echo.HTTPError
// @Router /api/v1/reports/revenue [get]
func (h *Handler) RevenueSummary(c echo.Context) error {
	items, err := h.borrowSvc.RevenueSummary(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary Penalty days per member
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param order query string false "asc or desc" Enums(asc, desc)
// @Success 200 {array} model.PenaltySummary
// @Failure 400 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /api/v1/reports/penalties [get]
func (h *Handler) PenaltySummary(c echo.Context) error {
	var desc bool
	switch order := c.QueryParam("order"); order {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "order must be asc or desc")
	}
	items, err := h.borrowSvc.PenaltySummary(c.Request().Context(), desc)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary Books running out of copies for sale
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Book
// @Failure 403 {object} echo.HTTPError
// @Router /api/v1/reports/low-stock [get]
func (h *Handler) LowStockBooks(c echo.Context) error {
	items, err := h.borrowSvc.LowStockBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func optionalCount(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &n, nil
}

func (h *Handler) httpError(err error) error {
	if rej, ok := errs.AsRejection(err); ok {
		return echo.NewHTTPError(http.StatusBadRequest, errs.RejectionResponse{
			Message: "borrow request rejected",
			Reasons: rej.Reasons,
		})
	}
	switch {
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrNotAvailableForSale):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrPreconditionFailed):
		return echo.NewHTTPError(http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, errs.ErrInsufficientBalance):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrStaffNotAllowed), errors.Is(err, errs.ErrNotStaff):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
