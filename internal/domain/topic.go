package domain

import "time"

// TopicRecord is written once per successful course generation and never mutated.
type TopicRecord struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Topic        string    `gorm:"column:topic;not null" json:"topic"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
	ProviderUsed string    `gorm:"column:provider_used;not null" json:"provider_used"`
	ModulesCount int       `gorm:"column:modules_count;not null" json:"modules_count"`
}

func (TopicRecord) TableName() string { return "topic_record" }

type TopicList struct {
	Topics []*TopicRecord `json:"topics"`
	Total  int            `json:"total"`
}
