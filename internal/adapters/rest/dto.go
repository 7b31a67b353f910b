package rest

import (
	"time"

	"admin-console-service/internal/core/domain"
)

// listStateDTO - состояние списочного контроллера, отдаваемое UI.
type listStateDTO[T any] struct {
	Items         []T    `json:"items"`
	Page          int    `json:"page"`
	TotalPages    int    `json:"totalPages"`
	TotalElements int64  `json:"totalElements"`
	Error         string `json:"error,omitempty"`
}

type addressDTO struct {
	Area    string `json:"area"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pinCode"`
}

type propertyDTO struct {
	PropertyID     int64      `json:"propertyId"`
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

	ExpectedPrice      float64  `json:"expectedPrice"`
	Deposit            float64  `json:"deposit"`
	MonthlyMaintenance float64  `json:"monthlyMaintenance"`
	AvailableFrom      string   `json:"availableFrom,omitempty"`
	PreferredTenants   string   `json:"preferredTenants,omitempty"`
	FurnishedType      string   `json:"furnishedType,omitempty"`
	Description        string   `json:"description,omitempty"`
	AmenityIDs         []int64  `json:"amenityIds"`
	OwnerName          string   `json:"ownerName,omitempty"`
	UserPhoneNumber    string   `json:"userPhoneNumber,omitempty"`
	Role               string   `json:"role,omitempty"`
	Status             string   `json:"status"`
	Images             []string `json:"images,omitempty"`
}

func toPropertyDTO(p domain.Property) propertyDTO {
	availableFrom := ""
	if !p.AvailableFrom.IsZero() {
		availableFrom = p.AvailableFrom.Format(time.RFC3339)
	}
	return propertyDTO{
		PropertyID:     p.ID,
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
		AmenityIDs:         p.AmenityIDs,
		OwnerName:          p.OwnerName,
		UserPhoneNumber:    p.UserPhoneNumber,
		Role:               string(p.PosterRole),
		Status:             string(p.Status),
		Images:             p.Images,
	}
}

type requirementDTO struct {
	RequirementID          int64    `json:"requirementId"`
	LookingFor             string   `json:"lookingFor"`
	PropertyType           string   `json:"propertyType"`
	BHKConfig              string   `json:"bhkConfig"`
	MinBudget              float64  `json:"minBudget"`
	MaxBudget              float64  `json:"maxBudget"`
	PreferredLocations     []string `json:"preferredLocations"`
	AdditionalRequirements string   `json:"additionalRequirements,omitempty"`
	PhoneNumber            string   `json:"phoneNumber"`
	UserName               string   `json:"userName"`
	Status                 string   `json:"status"`
}

func toRequirementDTO(r domain.Requirement) requirementDTO {
	return requirementDTO{
		RequirementID:          r.ID,
		LookingFor:             r.LookingFor,
		PropertyType:           r.PropertyType,
		BHKConfig:              r.BHKConfig,
		MinBudget:              r.MinBudget,
		MaxBudget:              r.MaxBudget,
		PreferredLocations:     r.PreferredLocations,
		AdditionalRequirements: r.AdditionalRequirements,
		PhoneNumber:            r.PhoneNumber,
		UserName:               r.UserName,
		Status:                 string(r.Status),
	}
}

type packageDTO struct {
	PackageID    int64   `json:"packageId"`
	PackageName  string  `json:"packageName"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	PostLimit    int     `json:"postLimit"`
	ContactLimit int     `json:"contactLimit"`
	Features     string  `json:"features,omitempty"`
	UserRole     string  `json:"userRole"`
	Status       string  `json:"status,omitempty"`
}

func toPackageDTO(p domain.Package) packageDTO {
	return packageDTO{
		PackageID:    p.ID,
		PackageName:  p.PackageName,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		PostLimit:    p.PostLimit,
		ContactLimit: p.ContactLimit,
		Features:     p.Features,
		UserRole:     p.UserRole,
		Status:       string(p.Status),
	}
}

func toDomainPackage(p packageDTO) domain.Package {
	return domain.Package{
		ID:           p.PackageID,
		PackageName:  p.PackageName,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		PostLimit:    p.PostLimit,
		ContactLimit: p.ContactLimit,
		Features:     p.Features,
		UserRole:     p.UserRole,
		Status:       domain.EntityStatus(p.Status),
	}
}

type subscriptionDTO struct {
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

func toSubscriptionDTO(s domain.Subscription) subscriptionDTO {
	return subscriptionDTO{
		SubscriberID: s.ID,
		UserID:       s.UserID,
		PackageID:    s.PackageID,
		Price:        s.Price,
		PaymentType:  s.PaymentType,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Role:         s.Role,
		PostsUsed:    s.PostsUsed,
		ContactsUsed: s.ContactsUsed,
		Status:       string(s.Status),
	}
}

func toDomainSubscription(s subscriptionDTO) domain.Subscription {
	return domain.Subscription{
		ID:           s.SubscriberID,
		UserID:       s.UserID,
		PackageID:    s.PackageID,
		Price:        s.Price,
		PaymentType:  s.PaymentType,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Role:         s.Role,
		PostsUsed:    s.PostsUsed,
		ContactsUsed: s.ContactsUsed,
		Status:       domain.EntityStatus(s.Status),
	}
}

type amenityDTO struct {
	AmenityID int64  `json:"amenityId"`
	Name      string `json:"name"`
}

func toAmenityDTO(a domain.Amenity) amenityDTO {
	return amenityDTO{AmenityID: a.ID, Name: a.Name}
}

type userDTO struct {
	UserID      int64  `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	UserRole    string `json:"userRole"`
}

func toUserDTO(u domain.User) userDTO {
	return userDTO{
		UserID:      u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		UserRole:    u.UserRole,
	}
}

type adminUserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type dashboardDTO struct {
	PropertyCount    int64 `json:"propertyCount"`
	RequirementCount int64 `json:"requirementCount"`
	AmenityCount     int64 `json:"amenityCount"`
	PackageCount     int64 `json:"packageCount"`
	SubscriberCount  int64 `json:"subscriberCount"`
	CustomerCount    int64 `json:"customerCount"`
}

func toDashboardDTO(a domain.DashboardAggregate) dashboardDTO {
	return dashboardDTO{
		PropertyCount:    a.PropertyCount,
		RequirementCount: a.RequirementCount,
		AmenityCount:     a.AmenityCount,
		PackageCount:     a.PackageCount,
		SubscriberCount:  a.SubscriberCount,
		CustomerCount:    a.CustomerCount,
	}
}

type loginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type propertyEnumsDTO struct {
	PropertyCategory []string `json:"propertyCategory"`
	FurnishedType    []string `json:"furnishedType"`
	BHKType          []string `json:"bhkType"`
	PropertyFor      []string `json:"propertyFor"`
	ApartmentType    []string `json:"apartmentType"`
}

// propertyFormFieldsDTO - частичное обновление полей формы подачи.
// Указатели отличают "поле не прислано" от пустого значения.
type propertyFormFieldsDTO struct {
	PropertyName  *string `json:"propertyName,omitempty"`
	ApartmentType *string `json:"apartmentType,omitempty"`
	BHKType       *string `json:"bhkType,omitempty"`
	Floor         *int    `json:"floor,omitempty"`
	TotalFloors   *int    `json:"totalFloors,omitempty"`

	BuiltUpArea *float64 `json:"totalBuildUpArea,omitempty"`
	CarpetArea  *float64 `json:"carpetArea,omitempty"`

	Area    *string `json:"area,omitempty"`
	State   *string `json:"state,omitempty"`
	PinCode *string `json:"pinCode,omitempty"`

	BuildingType *string `json:"buildingType,omitempty"`
	FloorType    *string `json:"floorType,omitempty"`
	PropertyAge  *string `json:"propertyAge,omitempty"`

	PlotArea     *float64 `json:"plotArea,omitempty"`
	Length       *float64 `json:"length,omitempty"`
	Width        *float64 `json:"width,omitempty"`
	BoundaryWall *string  `json:"boundaryWall,omitempty"`

	ExpectedPrice      *float64 `json:"expectedPrice,omitempty"`
	Deposit            *float64 `json:"deposit,omitempty"`
	MonthlyMaintenance *float64 `json:"monthlyMaintenance,omitempty"`
	AvailableFrom      *string  `json:"availableFrom,omitempty"`
	PreferredTenants   *string  `json:"preferredTenants,omitempty"`
	FurnishedType      *string  `json:"furnishedType,omitempty"`
	Description        *string  `json:"description,omitempty"`

	OwnerName       *string `json:"ownerName,omitempty"`
	UserPhoneNumber *string `json:"userPhoneNumber,omitempty"`
	Role            *string `json:"role,omitempty"`
}

type requirementFormFieldsDTO struct {
	LookingFor             *string  `json:"lookingFor,omitempty"`
	PropertyType           *string  `json:"propertyType,omitempty"`
	BHKConfig              *string  `json:"bhkConfig,omitempty"`
	MinBudget              *float64 `json:"minBudget,omitempty"`
	MaxBudget              *float64 `json:"maxBudget,omitempty"`
	PreferredLocations     []string `json:"preferredLocations,omitempty"`
	AdditionalRequirements *string  `json:"additionalRequirements,omitempty"`
	PhoneNumber            *string  `json:"phoneNumber,omitempty"`
	UserName               *string  `json:"userName,omitempty"`
}

type stagedImageDTO struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Size  int    `json:"size"`
}
