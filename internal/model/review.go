package model

import (
	"time"
)

// Review 项目评价
type Review struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ProjectId  string  `json:"projectId"`
	ReviewerId string  `json:"reviewerId"`
	RevieweeId string  `json:"revieweeId"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment,omitempty"`
}
