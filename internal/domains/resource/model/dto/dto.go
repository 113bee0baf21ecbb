package dto

import (
	"mime/multipart"

	"campusbook/internal/domains/resource/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Kind        string `json:"kind"        validate:"required,oneof=VEHICLE FACILITY EQUIPMENT"`
	Subcategory string `json:"subcategory" validate:"omitempty,max=100"`
	Type        string `json:"type"        validate:"omitempty,max=100"`
	Location    string `json:"location"    validate:"omitempty,max=200"`
	Quantity    int    `json:"quantity"    validate:"min=0"`
	Image       string `json:"image"       validate:"omitempty,url"`
	Status      string `json:"status"      validate:"omitempty,oneof=Available Maintenance Inactive"`
}

func (c *CreateResourceRequest) ToModel(user string) model.Resource {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Resource{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Kind:        c.Kind,
		Subcategory: c.Subcategory,
		Type:        c.Type,
		Location:    c.Location,
		Quantity:    c.Quantity,
		Image:       c.Image,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateResourceRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Subcategory string `db:"subcategory" json:"subcategory" validate:"omitempty,max=100"`
	Type        string `db:"type"        json:"type"        validate:"omitempty,max=100"`
	Location    string `db:"location"    json:"location"    validate:"omitempty,max=200"`
	Quantity    *int   `db:"quantity"    json:"quantity"    validate:"omitempty,min=0"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url"`
	Status      string `db:"status"      json:"status"      validate:"omitempty,oneof=Available Maintenance Inactive"`
}

type ResourceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Subcategory string `json:"subcategory,omitempty"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image,omitempty"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Name = model.Name
	r.Kind = model.Kind
	r.Subcategory = model.Subcategory
	r.Type = model.Type
	r.Location = model.Location
	r.Quantity = model.Quantity
	r.Image = model.Image
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, m := range models {
		r.Resources[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
