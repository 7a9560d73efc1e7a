package entity

import (
	"time"

	"github.com/google/uuid"
)

type Competition string

const (
	CompetitionLow    Competition = "Low"
	CompetitionMedium Competition = "Medium"
	CompetitionHigh   Competition = "High"
)

// KeywordResult is a single suggested keyword with its estimated monthly
// search volume and competition label.
type KeywordResult struct {
	Keyword     string      `json:"keyword"`
	Volume      int         `json:"volume"`
	Competition Competition `json:"competition"`
}

// ResearchResults groups keyword suggestions per marketplace platform.
type ResearchResults struct {
	Amazon   []KeywordResult `json:"amazon"`
	Flipkart []KeywordResult `json:"flipkart"`
}

type KeywordResearch struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	SeedKeyword string
	Platforms   []string
	Results     ResearchResults
	CreatedAt   time.Time
}
