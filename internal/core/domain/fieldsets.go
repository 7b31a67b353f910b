package domain

// FormField - имя поля формы подачи объявления.
type FormField string

const (
	FieldPropertyName   FormField = "propertyName"
	FieldApartmentType  FormField = "apartmentType"
	FieldBHKType        FormField = "bhkType"
	FieldFloor          FormField = "floor"
	FieldTotalFloors    FormField = "totalFloors"
	FieldBuiltUpArea    FormField = "builtUpArea"
	FieldCarpetArea     FormField = "carpetArea"
	FieldPropertyAge    FormField = "propertyAge"

	// PG / Hostel
	FieldRoomType        FormField = "roomType"
	FieldPGGender        FormField = "pgGender"
	FieldPreferredGuests FormField = "preferredGuests"
	FieldGateClosingTime FormField = "gateClosingTime"

	// Коммерческая недвижимость
	FieldBuildingType FormField = "buildingType"
	FieldFloorType    FormField = "floorType"

	// Участки
	FieldPlotArea     FormField = "plotArea"
	FieldLength       FormField = "length"
	FieldWidth        FormField = "width"
	FieldBoundaryWall FormField = "boundaryWall"

	// Цена и условия
	FieldExpectedPrice      FormField = "expectedPrice"
	FieldDeposit            FormField = "deposit"
	FieldMonthlyMaintenance FormField = "monthlyMaintenance"
	FieldAvailableFrom      FormField = "availableFrom"
	FieldPreferredTenants   FormField = "preferredTenants"
	FieldFurnishing         FormField = "furnishing"
	FieldDescription        FormField = "description"
)

// FieldSetKey - пара (категория, тип сделки), по которой выбирается
// набор полей формы.
type FieldSetKey struct {
	Category Category
	DealType DealType
}

// FieldSet - описание набора полей: какие видимы и какие обязательны.
// Таблица заменяет каскад условий исходной формы, чтобы матрицу
// комбинаций можно было проверять перебором.
type FieldSet struct {
	Name     string
	Visible  []FormField
	Required []FormField
}

// allowedDealTypes - какие типы сделок доступны для категории.
// Порядок совпадает с порядком кнопок в форме.
var allowedDealTypes = map[Category][]DealType{
	CategoryResidential: {DealRent, DealSell, DealPG, DealHostel},
	CategoryCommercial:  {DealRent, DealSell},
	CategoryPlot:        {DealSell, DealResell},
}

var residentialCommon = []FormField{
	FieldPropertyName, FieldApartmentType, FieldBHKType,
	FieldTotalFloors, FieldFloor, FieldBuiltUpArea, FieldCarpetArea,
}

var pricingRent = []FormField{
	FieldExpectedPrice, FieldDeposit, FieldMonthlyMaintenance,
	FieldAvailableFrom, FieldPreferredTenants, FieldFurnishing, FieldDescription,
}

var pricingSell = []FormField{
	FieldExpectedPrice, FieldMonthlyMaintenance,
	FieldAvailableFrom, FieldFurnishing, FieldDescription,
}

var fieldSets = map[FieldSetKey]FieldSet{
	{CategoryResidential, DealRent}: {
		Name:     "residential_rent",
		Visible:  concat(residentialCommon, pricingRent),
		Required: []FormField{FieldPropertyName, FieldBHKType, FieldTotalFloors, FieldExpectedPrice},
	},
	{CategoryResidential, DealSell}: {
		Name:     "residential_sell",
		Visible:  concat(residentialCommon, pricingSell),
		Required: []FormField{FieldPropertyName, FieldBHKType, FieldTotalFloors, FieldExpectedPrice},
	},
	{CategoryResidential, DealPG}: {
		Name: "pg",
		Visible: concat(
			[]FormField{FieldPropertyName, FieldRoomType, FieldPGGender, FieldPreferredGuests, FieldGateClosingTime},
			[]FormField{FieldExpectedPrice, FieldDeposit, FieldAvailableFrom, FieldFurnishing, FieldDescription},
		),
		Required: []FormField{FieldPropertyName, FieldRoomType, FieldExpectedPrice},
	},
	{CategoryResidential, DealHostel}: {
		Name: "hostel",
		Visible: concat(
			[]FormField{FieldPropertyName, FieldRoomType, FieldPGGender, FieldPreferredGuests, FieldGateClosingTime},
			[]FormField{FieldExpectedPrice, FieldDeposit, FieldAvailableFrom, FieldFurnishing, FieldDescription},
		),
		Required: []FormField{FieldPropertyName, FieldRoomType, FieldExpectedPrice},
	},
	{CategoryCommercial, DealRent}: {
		Name: "commercial_rent",
		Visible: concat(
			[]FormField{FieldPropertyName, FieldBuildingType, FieldFloorType, FieldPropertyAge, FieldBuiltUpArea, FieldCarpetArea},
			[]FormField{FieldExpectedPrice, FieldDeposit, FieldMonthlyMaintenance, FieldAvailableFrom, FieldDescription},
		),
		Required: []FormField{FieldPropertyName, FieldBuildingType, FieldExpectedPrice},
	},
	{CategoryCommercial, DealSell}: {
		Name: "commercial_sell",
		Visible: concat(
			[]FormField{FieldPropertyName, FieldBuildingType, FieldFloorType, FieldPropertyAge, FieldBuiltUpArea, FieldCarpetArea},
			[]FormField{FieldExpectedPrice, FieldAvailableFrom, FieldDescription},
		),
		Required: []FormField{FieldPropertyName, FieldBuildingType, FieldExpectedPrice},
	},
	{CategoryPlot, DealSell}: {
		Name: "plot_sell",
		Visible: []FormField{
			FieldPropertyName, FieldPlotArea, FieldLength, FieldWidth, FieldBoundaryWall,
			FieldExpectedPrice, FieldDescription,
		},
		Required: []FormField{FieldPropertyName, FieldPlotArea, FieldExpectedPrice},
	},
	{CategoryPlot, DealResell}: {
		Name: "plot_resell",
		Visible: []FormField{
			FieldPropertyName, FieldPlotArea, FieldLength, FieldWidth, FieldBoundaryWall,
			FieldExpectedPrice, FieldDescription,
		},
		Required: []FormField{FieldPropertyName, FieldPlotArea, FieldExpectedPrice},
	},
}

// AllowedDealTypes возвращает допустимые типы сделок для категории.
func AllowedDealTypes(c Category) []DealType {
	types := allowedDealTypes[c]
	out := make([]DealType, len(types))
	copy(out, types)
	return out
}

// DealTypeAllowed проверяет, доступен ли тип сделки для категории.
func DealTypeAllowed(c Category, d DealType) bool {
	for _, allowed := range allowedDealTypes[c] {
		if allowed == d {
			return true
		}
	}
	return false
}

// FieldSetFor возвращает набор полей для пары (категория, тип сделки).
func FieldSetFor(c Category, d DealType) (FieldSet, bool) {
	fs, ok := fieldSets[FieldSetKey{Category: c, DealType: d}]
	return fs, ok
}

// FieldVisible сообщает, входит ли поле в набор.
func (fs FieldSet) FieldVisible(f FormField) bool {
	for _, v := range fs.Visible {
		if v == f {
			return true
		}
	}
	return false
}

// FieldRequired сообщает, обязательно ли поле в наборе.
func (fs FieldSet) FieldRequired(f FormField) bool {
	for _, v := range fs.Required {
		if v == f {
			return true
		}
	}
	return false
}

func concat(groups ...[]FormField) []FormField {
	var out []FormField
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
