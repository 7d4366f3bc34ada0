package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kesamokki/booking-service/internal/domain"
)

// Request модели

// ImageInput изображение коттеджа в запросе
type ImageInput struct {
	URL     string `json:"url" validate:"required,url"`
	AltText string `json:"alt_text" validate:"max=200"`
	Order   int    `json:"order" validate:"gte=0"`
}

// CottageInput данные коттеджа для создания и обновления
// Пустой slug генерируется из имени
type CottageInput struct {
	Name        string          `json:"name" validate:"required,max=80"`
	Slug        string          `json:"slug" validate:"omitempty,max=100"`
	Description string          `json:"description"`
	Location    string          `json:"location" validate:"max=120"`
	Beds        int             `json:"beds" validate:"required,gte=1"`
	BasePrice   decimal.Decimal `json:"base_price"`
	CleaningFee decimal.Decimal `json:"cleaning_fee"`
	Active      *bool           `json:"active,omitempty"`
	Images      []ImageInput    `json:"images" validate:"dive"`
}

// Response модели

// ImageResponse изображение коттеджа
type ImageResponse struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
	Order   int    `json:"order"`
}

// CottageResponse коттедж каталога
type CottageResponse struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Beds        int             `json:"beds"`
	BasePrice   string          `json:"base_price"`
	CleaningFee string          `json:"cleaning_fee"`
	Active      bool            `json:"active"`
	Images      []ImageResponse `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CottageListResponse список коттеджей
type CottageListResponse struct {
	Cottages []CottageResponse `json:"cottages"`
}

// Методы конвертации

// ApplyTo переносит данные запроса в domain модель
func (in *CottageInput) ApplyTo(c *domain.Cottage) {
	c.Name = in.Name
	c.Description = in.Description
	c.Location = in.Location
	c.Beds = in.Beds
	c.BasePrice = in.BasePrice
	c.CleaningFee = in.CleaningFee
	if in.Active != nil {
		c.Active = *in.Active
	}

	c.Images = make([]domain.CottageImage, len(in.Images))
	for i, img := range in.Images {
		c.Images[i] = domain.CottageImage{
			CottageID: c.ID,
			URL:       img.URL,
			AltText:   img.AltText,
			Order:     img.Order,
		}
	}
}

// FromDomainCottage конвертирует domain модель в DTO
func FromDomainCottage(c *domain.Cottage) *CottageResponse {
	if c == nil {
		return nil
	}

	resp := &CottageResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		Beds:        c.Beds,
		BasePrice:   c.BasePrice.StringFixed(2),
		CleaningFee: c.CleaningFee.StringFixed(2),
		Active:      c.Active,
		Images:      make([]ImageResponse, len(c.Images)),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	for i, img := range c.Images {
		resp.Images[i] = ImageResponse{URL: img.URL, AltText: img.AltText, Order: img.Order}
	}

	return resp
}

// FromDomainCottageList конвертирует список domain моделей в DTO
func FromDomainCottageList(cottages []*domain.Cottage) *CottageListResponse {
	resp := &CottageListResponse{
		Cottages: make([]CottageResponse, 0, len(cottages)),
	}

	for _, c := range cottages {
		if cr := FromDomainCottage(c); cr != nil {
			resp.Cottages = append(resp.Cottages, *cr)
		}
	}

	return resp
}
