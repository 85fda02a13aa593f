package model

import (
	"time"
)

// UserProgress records one metric observation per completed session.
type UserProgress struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          string    `json:"user_id" gorm:"index;not null"`
	MetricName      string    `json:"metric_name" gorm:"not null"`
	MetricValue     float64   `json:"metric_value"`
	ImprovementRate float64   `json:"improvement_rate"`
	RecordedAt      time.Time `json:"recorded_at" gorm:"autoCreateTime"`
}

func (UserProgress) TableName() string { return "user_progress" }
