package models

import "time"

type Review struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	SubmissionID uint   `json:"submissionId" gorm:"not null;index"`
	ReviewerID   uint   `json:"reviewerId" gorm:"not null;index"`
	Body         string `json:"review" gorm:"not null;type:text"`
	Upvotes      int    `json:"upvotes" gorm:"default:0"`
	Downvotes    int    `json:"downvotes" gorm:"default:0"`
	IsFlagged    bool   `json:"isFlagged" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
