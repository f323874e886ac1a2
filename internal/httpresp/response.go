package httpresp

import "github.com/gin-gonic/gin"

type BookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId,omitempty"`
}

type SlotsResponse struct {
	Success     bool     `json:"success"`
	BookedSlots []string `json:"bookedSlots"`
}

func Booking(c *gin.Context, message, bookingID string) {
	c.JSON(200, BookingResponse{
		Success:   true,
		Message:   message,
		BookingID: bookingID,
	})
}

func Slots(c *gin.Context, slots []string) {
	if slots == nil {
		slots = []string{}
	}
	c.JSON(200, SlotsResponse{
		Success:     true,
		BookedSlots: slots,
	})
}
