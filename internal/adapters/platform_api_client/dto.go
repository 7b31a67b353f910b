package platform_api_client

import (
	"time"

	"admin-console-service/internal/core/domain"
)

// pageResponse - единый конверт списочных ответов платформы.
type pageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

type addressDTO struct {
	Area    string `json:"area"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pinCode"`
}

type propertyResponse struct {
	PropertyID     int64      `json:"propertyId"`
	PostedByUserID int64      `json:"postedByUserId"`
	Category       string     `json:"category"`
	PropertyFor    string     `json:"propertyFor"`
	ApartmentType  string     `json:"apartmentType"`
	PropertyName   string     `json:"propertyName"`
	BHKType        string     `json:"bhkType"`
	Floor          int        `json:"floor"`
	TotalFloors    int        `json:"totalFloors"`
	BuiltUpArea    float64    `json:"totalBuildUpArea"`
	CarpetArea     float64    `json:"carpetArea"`
	Address        addressDTO `json:"address"`

	BuildingType string `json:"buildingType"`
	FloorType    string `json:"floorType"`
	PropertyAge  string `json:"propertyAge"`

	PlotArea     float64 `json:"plotArea"`
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	BoundaryWall string  `json:"boundaryWall"`

	ExpectedPrice      float64 `json:"expectedPrice"`
	Deposit            float64 `json:"deposit"`
	MonthlyMaintenance float64 `json:"monthlyMaintenance"`
	AvailableFrom      string  `json:"availableFrom"`
	PreferredTenants   string  `json:"preferred_tenants"`
	FurnishedType      string  `json:"furnishedType"`
	Description        string  `json:"description"`
	AmenityIDs         []int64 `json:"amenityIds"`

	OwnerName       string `json:"ownerName"`
	UserPhoneNumber string `json:"userPhoneNumber"`
	Role            string `json:"role"`

	Status          string   `json:"status"`
	CreatedAt       string   `json:"createdAt"`
	PropertyGallery []string `json:"propertyGallery"`
}

// propertySubmitRequest - тело JSON-части multipart-запроса добавления.
// Имена полей закреплены контрактом платформы, менять их нельзя.
type propertySubmitRequest struct {
	PostedByUserID int64      `json:"postedByUserId"`
	Category       string     `json:"category"`
	PropertyFor    string     `json:"propertyFor"`
	ApartmentType  string     `json:"apartmentType,omitempty"`
	PropertyName   string     `json:"propertyName"`
	BHKType        string     `json:"bhkType,omitempty"`
	Floor          int        `json:"floor"`
	TotalFloors    int        `json:"totalFloors"`
	BuiltUpArea    float64    `json:"totalBuildUpArea"`
	CarpetArea     float64    `json:"carpetArea"`
	Address        addressDTO `json:"address"`

	BuildingType string `json:"buildingType,omitempty"`
	FloorType    string `json:"floorType,omitempty"`
	PropertyAge  string `json:"propertyAge,omitempty"`

	PlotArea     float64 `json:"plotArea,omitempty"`
	Length       float64 `json:"length,omitempty"`
	Width        float64 `json:"width,omitempty"`
	BoundaryWall string  `json:"boundaryWall,omitempty"`

	ExpectedPrice      float64 `json:"expectedPrice"`
	Deposit            float64 `json:"deposit"`
	MonthlyMaintenance float64 `json:"monthlyMaintenance"`
	AvailableFrom      string  `json:"availableFrom,omitempty"`
	PreferredTenants   string  `json:"preferred_tenants,omitempty"`
	FurnishedType      string  `json:"furnishedType,omitempty"`
	Description        string  `json:"description,omitempty"`
	AmenityIDs         []int64 `json:"amenityIds"`

	UserPhoneNumber string `json:"userPhoneNumber"`
	Role            string `json:"role"`
	OwnerName       string `json:"ownerName"`
}

type propertyEnumsResponse struct {
	PropertyCategory []string `json:"propertyCategory"`
	FurnishedType    []string `json:"furnishedType"`
	BHKType          []string `json:"bhkType"`
	PropertyFor      []string `json:"propertyFor"`
	ApartmentType    []string `json:"apartmentType"`
}

type requirementResponse struct {
	RequirementID          int64    `json:"requirementId"`
	LookingFor             string   `json:"lookingFor"`
	PropertyType           string   `json:"propertyType"`
	BHKConfig              string   `json:"bhkConfig"`
	MinBudget              float64  `json:"minBudget"`
	MaxBudget              float64  `json:"maxBudget"`
	PreferredLocations     []string `json:"preferredLocations"`
	AdditionalRequirements string   `json:"additionalRequirements"`
	PhoneNumber            string   `json:"phoneNumber"`
	UserName               string   `json:"userName"`
	Status                 string   `json:"status"`
}

type requirementUpdateRequest struct {
	LookingFor             string   `json:"lookingFor"`
	PropertyType           string   `json:"propertyType"`
	BHKConfig              string   `json:"bhkConfig"`
	MinBudget              float64  `json:"minBudget"`
	MaxBudget              float64  `json:"maxBudget"`
	PreferredLocations     []string `json:"preferredLocations"`
	AdditionalRequirements string   `json:"additionalRequirements"`
	PhoneNumber            string   `json:"phoneNumber"`
	UserName               string   `json:"userName"`
}

type packageResponse struct {
	PackageID    int64   `json:"packageId"`
	PackageName  string  `json:"packageName"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	PostLimit    int     `json:"postLimit"`
	ContactLimit int     `json:"contactLimit"`
	Features     string  `json:"features"`
	UserRole     string  `json:"userRole"`
	Status       string  `json:"status"`
}

type packageRequest struct {
	PackageName  string  `json:"packageName"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	PostLimit    int     `json:"postLimit"`
	ContactLimit int     `json:"contactLimit"`
	Features     string  `json:"features"`
	UserRole     string  `json:"userRole"`
}

type subscriptionResponse struct {
	SubscriberID int64   `json:"subscriberId"`
	UserID       int64   `json:"userId"`
	PackageID    int64   `json:"packageId"`
	Price        float64 `json:"price"`
	PaymentType  string  `json:"paymentType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Role         string  `json:"role"`
	PostsUsed    int     `json:"postsUsed"`
	ContactsUsed int     `json:"contactsUsed"`
	Status       string  `json:"status"`
}

type subscriptionRequest struct {
	UserID       int64   `json:"userId"`
	PackageID    int64   `json:"packageId"`
	Price        float64 `json:"price"`
	PaymentType  string  `json:"paymentType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Role         string  `json:"role"`
	PostsUsed    int     `json:"postsUsed"`
	ContactsUsed int     `json:"contactsUsed"`
	Status       string  `json:"status"`
}

type amenityResponse struct {
	AmenityID int64  `json:"amenityId"`
	Name      string `json:"name"`
}

type userResponse struct {
	UserID      int64  `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	UserRole    string `json:"userRole"`
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// Маппинг DTO в доменные модели. Отдельные функции, чтобы методы
// клиента не повторяли одну и ту же переливку полей.

func toDomainProperty(dto propertyResponse) domain.Property {
	// Платформа отдает дату доступности то как дату, то как момент
	availableFrom, err := time.Parse(time.RFC3339, dto.AvailableFrom)
	if err != nil {
		availableFrom, _ = time.Parse("2006-01-02", dto.AvailableFrom)
	}
	postedAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	return domain.Property{
		ID:             dto.PropertyID,
		PostedByUserID: dto.PostedByUserID,
		Category:       domain.Category(dto.Category),
		PropertyFor:    domain.DealType(dto.PropertyFor),
		ApartmentType:  dto.ApartmentType,
		PropertyName:   dto.PropertyName,
		BHKType:        dto.BHKType,
		Floor:          dto.Floor,
		TotalFloors:    dto.TotalFloors,
		BuiltUpArea:    dto.BuiltUpArea,
		CarpetArea:     dto.CarpetArea,
		Address: domain.Address{
			Area:    dto.Address.Area,
			City:    dto.Address.City,
			State:   dto.Address.State,
			PinCode: dto.Address.PinCode,
		},
		BuildingType:       dto.BuildingType,
		FloorType:          dto.FloorType,
		PropertyAge:        dto.PropertyAge,
		PlotArea:           dto.PlotArea,
		Length:             dto.Length,
		Width:              dto.Width,
		BoundaryWall:       dto.BoundaryWall,
		ExpectedPrice:      dto.ExpectedPrice,
		Deposit:            dto.Deposit,
		MonthlyMaintenance: dto.MonthlyMaintenance,
		AvailableFrom:      availableFrom,
		PreferredTenants:   dto.PreferredTenants,
		FurnishedType:      dto.FurnishedType,
		Description:        dto.Description,
		AmenityIDs:         dto.AmenityIDs,
		OwnerName:          dto.OwnerName,
		UserPhoneNumber:    dto.UserPhoneNumber,
		PosterRole:         domain.PosterRole(dto.Role),
		Status:             domain.EntityStatus(dto.Status),
		PostedAt:           postedAt,
		Images:             dto.PropertyGallery,
	}
}

func toSubmitRequest(p domain.Property) propertySubmitRequest {
	availableFrom := ""
	if !p.AvailableFrom.IsZero() {
		availableFrom = p.AvailableFrom.Format(time.RFC3339)
	}
	amenityIDs := p.AmenityIDs
	if amenityIDs == nil {
		amenityIDs = []int64{}
	}
	return propertySubmitRequest{
		PostedByUserID: p.PostedByUserID,
		Category:       string(p.Category),
		PropertyFor:    string(p.PropertyFor),
		ApartmentType:  p.ApartmentType,
		PropertyName:   p.PropertyName,
		BHKType:        p.BHKType,
		Floor:          p.Floor,
		TotalFloors:    p.TotalFloors,
		BuiltUpArea:    p.BuiltUpArea,
		CarpetArea:     p.CarpetArea,
		Address: addressDTO{
			Area:    p.Address.Area,
			City:    p.Address.City,
			State:   p.Address.State,
			PinCode: p.Address.PinCode,
		},
		BuildingType:       p.BuildingType,
		FloorType:          p.FloorType,
		PropertyAge:        p.PropertyAge,
		PlotArea:           p.PlotArea,
		Length:             p.Length,
		Width:              p.Width,
		BoundaryWall:       p.BoundaryWall,
		ExpectedPrice:      p.ExpectedPrice,
		Deposit:            p.Deposit,
		MonthlyMaintenance: p.MonthlyMaintenance,
		AvailableFrom:      availableFrom,
		PreferredTenants:   p.PreferredTenants,
		FurnishedType:      p.FurnishedType,
		Description:        p.Description,
		AmenityIDs:         amenityIDs,
		UserPhoneNumber:    p.UserPhoneNumber,
		Role:               string(p.PosterRole),
		OwnerName:          p.OwnerName,
	}
}

func toDomainRequirement(dto requirementResponse) domain.Requirement {
	return domain.Requirement{
		ID:                     dto.RequirementID,
		LookingFor:             dto.LookingFor,
		PropertyType:           dto.PropertyType,
		BHKConfig:              dto.BHKConfig,
		MinBudget:              dto.MinBudget,
		MaxBudget:              dto.MaxBudget,
		PreferredLocations:     dto.PreferredLocations,
		AdditionalRequirements: dto.AdditionalRequirements,
		PhoneNumber:            dto.PhoneNumber,
		UserName:               dto.UserName,
		Status:                 domain.EntityStatus(dto.Status),
	}
}

func toDomainPackage(dto packageResponse) domain.Package {
	return domain.Package{
		ID:           dto.PackageID,
		PackageName:  dto.PackageName,
		Description:  dto.Description,
		Price:        dto.Price,
		DurationDays: dto.DurationDays,
		PostLimit:    dto.PostLimit,
		ContactLimit: dto.ContactLimit,
		Features:     dto.Features,
		UserRole:     dto.UserRole,
		Status:       domain.EntityStatus(dto.Status),
	}
}

func toDomainSubscription(dto subscriptionResponse) domain.Subscription {
	return domain.Subscription{
		ID:           dto.SubscriberID,
		UserID:       dto.UserID,
		PackageID:    dto.PackageID,
		Price:        dto.Price,
		PaymentType:  dto.PaymentType,
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
		Role:         dto.Role,
		PostsUsed:    dto.PostsUsed,
		ContactsUsed: dto.ContactsUsed,
		Status:       domain.EntityStatus(dto.Status),
	}
}

func toDomainUser(dto userResponse) domain.User {
	return domain.User{
		ID:          dto.UserID,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		UserRole:    dto.UserRole,
	}
}
