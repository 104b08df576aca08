package review

type SubmitReviewRequest struct {
	PackageID int64  `json:"package_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	UserName  string `json:"user_name"`
}
