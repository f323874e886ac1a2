package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/OptiVisionCare/optic-booking/internal/httperr"
	"github.com/OptiVisionCare/optic-booking/internal/httpresp"
	ucBooking "github.com/OptiVisionCare/optic-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBooking
	cancelUC *ucBooking.CancelBooking
	slotsUC  *ucBooking.ListBookedSlots
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	cancelUC *ucBooking.CancelBooking,
	slotsUC *ucBooking.ListBookedSlots,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		slotsUC:  slotsUC,
	}
}

// ======================================================
// REQUEST
// ======================================================

// One intent endpoint for the whole wizard; Action selects the operation.
// Pointer fields keep "absent" distinguishable from "empty" for the
// partial-update contract.
type BookRequest struct {
	Action    string `json:"action" binding:"required"`
	BookingID string `json:"bookingId"`

	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Service   *string `json:"service"`
	Comments  *string `json:"comments"`
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ======================================================
// POST /api/book
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "بيانات الحجز غير مكتملة")
		return
	}

	switch req.Action {
	case "create":
		h.create(c, req)
	case "update":
		h.update(c, req)
	case "cancel":
		h.cancel(c, req)
	default:
		httperr.BadRequest(c, "إجراء غير معروف")
	}
}

func (h *BookingHandler) create(c *gin.Context, req BookRequest) {
	out, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		FirstName: strOrEmpty(req.FirstName),
		LastName:  strOrEmpty(req.LastName),
		Phone:     strOrEmpty(req.Phone),
		Date:      strOrEmpty(req.Date),
		Time:      strOrEmpty(req.Time),
		Service:   strOrEmpty(req.Service),
		Comments:  strOrEmpty(req.Comments),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if out.Duplicate {
		httpresp.Booking(c, "هذا الموعد محجوز مسبقاً لك!", out.BookingID)
		return
	}
	httpresp.Booking(c, "تم حفظ الحجز بنجاح!", out.BookingID)
}

func (h *BookingHandler) update(c *gin.Context, req BookRequest) {
	bookingID, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		BookingID: req.BookingID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Date:      req.Date,
		Time:      req.Time,
		Service:   req.Service,
		Comments:  req.Comments,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Booking(c, "تم تحديث الحجز بنجاح", bookingID)
}

func (h *BookingHandler) cancel(c *gin.Context, req BookRequest) {
	if err := h.cancelUC.Execute(c.Request.Context(), req.BookingID); err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Booking(c, "تم إلغاء الحجز بنجاح", "")
}

// ======================================================
// GET /api/book
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "Date parameter required")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.ListBookedSlotsInput{
		Date:             date,
		ExcludeBookingID: c.Query("excludeId"),
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "بيانات الحجز غير مكتملة")
			return
		}
		slog.Error("availability check failed", "error", err.Error())
		httperr.Internal(c, "خطأ في التحقق من الأوقات المتاحة")
		return
	}

	httpresp.Slots(c, slots)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *BookingHandler) writeError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"),
		httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "بيانات الحجز غير مكتملة")

	case httperr.IsBusiness(err, "missing_booking_id"):
		httperr.BadRequest(c, "رقم الحجز مفقود")

	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "الحجز غير موجود")

	default:
		// Store/transport failures: log the detail, never echo it.
		slog.Error("booking request failed", "error", err.Error())
		httperr.Internal(c, "حدث خطأ أثناء الحجز. الرجاء المحاولة لاحقاً.")
	}
}
