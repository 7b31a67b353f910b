package domain

import "time"

// Статусы сущностей на платформе. Сервер хранит их как строки,
// консоль переключает только между ACTIVE и INACTIVE.
type EntityStatus string

const (
	StatusActive   EntityStatus = "ACTIVE"
	StatusInactive EntityStatus = "INACTIVE"
)

// Category - категория объекта недвижимости.
type Category string

const (
	CategoryResidential Category = "RESIDENTIAL"
	CategoryCommercial  Category = "COMMERCIAL"
	CategoryPlot        Category = "PLOT"
)

// DealType - тип сделки (на платформе поле называется propertyFor).
type DealType string

const (
	DealRent   DealType = "RENT"
	DealSell   DealType = "SELL"
	DealPG     DealType = "PG"
	DealHostel DealType = "HOSTEL"
	DealResell DealType = "RESELL"
)

// PosterRole - кто размещает объявление.
type PosterRole string

const (
	RoleOwner PosterRole = "OWNER"
	RoleAgent PosterRole = "AGENT"
)

// Address - адрес объекта. Город фиксирован на стороне консоли.
type Address struct {
	Area    string
	City    string
	State   string
	PinCode string
}

// Property - объект недвижимости, каким его отдает платформа.
type Property struct {
	ID             int64
	PostedByUserID int64
	Category       Category
	PropertyFor    DealType
	ApartmentType  string
	PropertyName   string
	BHKType        string
	Floor          int
	TotalFloors    int
	BuiltUpArea    float64
	CarpetArea     float64
	Address        Address

	// Коммерческая специфика
	BuildingType string
	FloorType    string
	PropertyAge  string

	// Участки
	PlotArea     float64
	Length       float64
	Width        float64
	BoundaryWall string

	ExpectedPrice      float64
	Deposit            float64
	MonthlyMaintenance float64
	AvailableFrom      time.Time
	PreferredTenants   string
	FurnishedType      string
	Description        string
	AmenityIDs         []int64

	OwnerName       string
	UserPhoneNumber string
	PosterRole      PosterRole

	Status   EntityStatus
	PostedAt time.Time
	Images   []string
}

// PropertyEnums - справочник допустимых значений, который платформа
// отдает одним вызовом. Консоль загружает его при инициализации формы.
type PropertyEnums struct {
	PropertyCategory []string
	FurnishedType    []string
	BHKType          []string
	PropertyFor      []string
	ApartmentType    []string
}

// Requirement - заявка "ищу жилье".
type Requirement struct {
	ID                     int64
	LookingFor             string
	PropertyType           string
	BHKConfig              string
	MinBudget              float64
	MaxBudget              float64
	PreferredLocations     []string
	AdditionalRequirements string
	PhoneNumber            string
	UserName               string
	Status                 EntityStatus
}

// Package - тарифный пакет для брокеров и владельцев.
type Package struct {
	ID           int64
	PackageName  string
	Description  string
	Price        float64
	DurationDays int
	PostLimit    int
	ContactLimit int
	Features     string
	UserRole     string
	Status       EntityStatus
}

// Subscription - подписка пользователя на пакет.
// Деактивация - отдельная серверная операция, а не правка поля.
type Subscription struct {
	ID           int64
	UserID       int64
	PackageID    int64
	Price        float64
	PaymentType  string
	StartDate    string
	EndDate      string
	Role         string
	PostsUsed    int
	ContactsUsed int
	Status       EntityStatus
}

// Amenity - удобство. С точки зрения консоли список только пополняется.
type Amenity struct {
	ID   int64
	Name string
}

// User - пользователь платформы.
type User struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	UserRole    string
}

// AdminUser - личность администратора, возвращаемая при логине.
type AdminUser struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// Page - страница списочного ответа платформы.
// Конверт всегда один: content + totalPages + totalElements.
type Page[T any] struct {
	Content       []T
	TotalPages    int
	TotalElements int64
}

// ImageFile - один файл изображения, подготовленный к отправке.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}
