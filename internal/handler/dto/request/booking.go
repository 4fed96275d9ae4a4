package request

type CreateMeetingRoomBookingRequest struct {
	ProductID     int64    `json:"product_id" binding:"required,gt=0"`
	Date          string   `json:"date" binding:"required,datetime=2006-01-02"`
	SelectedSlots []string `json:"selected_slots" binding:"required"`
	Customer      Customer `json:"customer" binding:"required"`
}

type MeetingRoomAvailabilityQuery struct {
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
	ProductID int64  `form:"product_id" binding:"required,gt=0"`
}
