package domain

// CounterKey - имя счетчика на дашборде.
type CounterKey string

const (
	CounterProperties    CounterKey = "propertyCount"
	CounterRequirements  CounterKey = "requirementCount"
	CounterAmenities     CounterKey = "amenityCount"
	CounterPackages      CounterKey = "packageCount"
	CounterSubscribers   CounterKey = "subscriberCount"
	CounterCustomers     CounterKey = "customerCount"
)

// CounterDelta - частичное обновление дашборда. Сливается по ключам,
// последний писатель по каждому ключу побеждает.
type CounterDelta map[CounterKey]int64

// DashboardAggregate - агрегат счетчиков. Не имеет собственной
// идентичности: целиком выводится из последних успешных выборок списков.
type DashboardAggregate struct {
	PropertyCount    int64
	RequirementCount int64
	AmenityCount     int64
	PackageCount     int64
	SubscriberCount  int64
	CustomerCount    int64
}

// Apply накладывает дельту на агрегат по ключам.
func (a *DashboardAggregate) Apply(delta CounterDelta) {
	for key, value := range delta {
		switch key {
		case CounterProperties:
			a.PropertyCount = value
		case CounterRequirements:
			a.RequirementCount = value
		case CounterAmenities:
			a.AmenityCount = value
		case CounterPackages:
			a.PackageCount = value
		case CounterSubscribers:
			a.SubscriberCount = value
		case CounterCustomers:
			a.CustomerCount = value
		}
	}
}
