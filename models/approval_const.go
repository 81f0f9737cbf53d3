package models

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// IsTerminal сообщает, является ли статус конечным.
// Конечный статус больше не меняется, повторное решение - ошибка.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

func (s ApprovalStatus) ToHuman() string {
	switch s {
	case ApprovalStatusPending:
		return "На согласовании"
	case ApprovalStatusApproved:
		return "Согласовано"
	case ApprovalStatusRejected:
		return "Отклонено"
	}
	return string(s)
}

type ApprovalReferenceType string

const (
	ApprovalRefTicket            ApprovalReferenceType = "TICKET"
	ApprovalRefAssetAllocation   ApprovalReferenceType = "ASSET_ALLOCATION"
	ApprovalRefLicenseAllocation ApprovalReferenceType = "LICENSE_ALLOCATION"
	ApprovalRefPurchaseOrder     ApprovalReferenceType = "PURCHASE_ORDER"
)

func (t ApprovalReferenceType) IsValid() bool {
	switch t {
	case ApprovalRefTicket, ApprovalRefAssetAllocation, ApprovalRefLicenseAllocation, ApprovalRefPurchaseOrder:
		return true
	}
	return false
}

func (t ApprovalReferenceType) ToHuman() string {
	switch t {
	case ApprovalRefTicket:
		return "Заявка в поддержку"
	case ApprovalRefAssetAllocation:
		return "Выдача оборудования"
	case ApprovalRefLicenseAllocation:
		return "Выдача лицензии"
	case ApprovalRefPurchaseOrder:
		return "Заказ на закупку"
	}
	return string(t)
}
