package dto

import (
	"github.com/presetapp/gigboard/internal/domain/model"
	profilesvc "github.com/presetapp/gigboard/internal/services/profiles"
)

type ProfileResponse struct {
	Profile    model.UserProfile     `json:"profile"`
	Completion profilesvc.Completion `json:"completion"`
}
