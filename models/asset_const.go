package models

type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "AVAILABLE"
	AssetStatusInUse       AssetStatus = "IN_USE"
	AssetStatusMaintenance AssetStatus = "MAINTENANCE"
	AssetStatusRetired     AssetStatus = "RETIRED"
)

func (s AssetStatus) ToHuman() string {
	switch s {
	case AssetStatusAvailable:
		return "Свободно"
	case AssetStatusInUse:
		return "Выдано"
	case AssetStatusMaintenance:
		return "В ремонте"
	case AssetStatusRetired:
		return "Списано"
	}
	return string(s)
}
