package dto

import (
	"nyumba/shared/constant"
	"nyumba/shared/model"
	"nyumba/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateTimeFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateTimeFormat)
}
