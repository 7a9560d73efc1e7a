// FILE: internal/dto/usage_dto.go
package dto

type RecordUsageRequest struct {
	ToolId     string `json:"toolId" validate:"required,uuid"`
	ActionType string `json:"actionType" validate:"required,oneof=search export api_call"`
}

type UsageSummaryResponse struct {
	Searches int `json:"searches"`
	Exports  int `json:"exports"`
	ApiCalls int `json:"apiCalls"`
}
