package dto

import (
	"floorplan/shared/constant"
	"floorplan/shared/model"
	"floorplan/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.CreatedBy = model.CreatedBy
}
