package constants

// Параметры списков. Все шесть списков консоли работают со страницей
// фиксированного размера.
const (
	DefaultPageSize = 10

	// Сортировка списка объектов на платформе.
	PropertySortKey       = "propertyId"
	PropertySortDirection = "desc"
)

// Лимиты изображений формы подачи. Лимиты разные нарочно: исходная
// форма позволяла накопить до 8 файлов, но при отправке принимала не
// больше 4. Продуктового решения по единому лимиту нет, поэтому
// поведение сохранено как есть.
const (
	MaxStagedImages = 8
	MaxSubmitImages = 4
)

// Город, в котором работает платформа. Форма не дает его менять.
const FixedCity = "Pune"

// Значения по умолчанию для формы заявки: три слота локаций.
const RequirementLocationSlots = 3
