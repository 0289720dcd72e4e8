package update_business_hours

import "github.com/m04kA/termine-direkt/internal/service/business/models"

// UpdateHoursRequest HTTP request model
type UpdateHoursRequest struct {
	HoursText    string  `json:"hoursText"`
	BreakText    *string `json:"breakText,omitempty"`
	SlotCapacity *string `json:"slotCapacity,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateHoursRequest) ToServiceRequest(businessID, actorBusinessID int64) *models.UpdateHoursRequest {
	return &models.UpdateHoursRequest{
		BusinessID:      businessID,
		ActorBusinessID: actorBusinessID,
		HoursText:       r.HoursText,
		BreakText:       r.BreakText,
		SlotCapacity:    r.SlotCapacity,
	}
}
