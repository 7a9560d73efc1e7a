package mapper

import (
	"encoding/json"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/model"

	"gorm.io/datatypes"
)

type ResearchMapper struct{}

func NewResearchMapper() *ResearchMapper {
	return &ResearchMapper{}
}

func (m *ResearchMapper) ToEntity(r *model.KeywordResearch) *entity.KeywordResearch {
	if r == nil {
		return nil
	}
	var platforms []string
	_ = json.Unmarshal(r.Platforms, &platforms)
	var results entity.ResearchResults
	_ = json.Unmarshal(r.Results, &results)

	return &entity.KeywordResearch{
		Id:          r.Id,
		UserId:      r.UserId,
		SeedKeyword: r.SeedKeyword,
		Platforms:   platforms,
		Results:     results,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *ResearchMapper) ToModel(r *entity.KeywordResearch) (*model.KeywordResearch, error) {
	if r == nil {
		return nil, nil
	}
	platforms, err := json.Marshal(r.Platforms)
	if err != nil {
		return nil, err
	}
	results, err := json.Marshal(r.Results)
	if err != nil {
		return nil, err
	}
	return &model.KeywordResearch{
		Id:          r.Id,
		UserId:      r.UserId,
		SeedKeyword: r.SeedKeyword,
		Platforms:   datatypes.JSON(platforms),
		Results:     datatypes.JSON(results),
		CreatedAt:   r.CreatedAt,
	}, nil
}
