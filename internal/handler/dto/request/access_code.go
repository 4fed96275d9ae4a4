package request

type CreateStandaloneAccessCodeRequest struct {
	StartDate string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	Customer  Customer `json:"customer" binding:"required"`
}

type CreateProductAccessCodeRequest struct {
	ProductID int64    `json:"product_id" binding:"required,gt=0"`
	StartDate string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	Customer  Customer `json:"customer" binding:"required"`
}
